package core

import "strconv"

// ElementID identifies an element within one document.
// Negative ids denote "no element".
type ElementID int64

// InvalidElementID is the id hosts use for an empty reference.
const InvalidElementID ElementID = -1

// Valid reports whether id can denote an element.
func (id ElementID) Valid() bool { return id >= 0 }

func (id ElementID) String() string { return strconv.FormatInt(int64(id), 10) }

// Element is any entity stored in a document.
type Element interface {
	ID() ElementID
	UniqueID() string
	Name() string
	Category() string
	LookupParameter(name string) (Parameter, bool)
}

// BasicElement is a plain element with a parameter table.
// Revision and Sheet embed it.
type BasicElement struct {
	ElementID    ElementID
	Unique       string
	ElementName  string
	CategoryName string
	Parameters   []Parameter
}

func (e *BasicElement) ID() ElementID    { return e.ElementID }
func (e *BasicElement) UniqueID() string { return e.Unique }
func (e *BasicElement) Name() string     { return e.ElementName }
func (e *BasicElement) Category() string { return e.CategoryName }

// LookupParameter returns the first parameter with the given name.
func (e *BasicElement) LookupParameter(name string) (Parameter, bool) {
	for _, p := range e.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}
