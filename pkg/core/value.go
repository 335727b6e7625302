package core

import "strconv"

// StorageKind is the underlying representation of a parameter value.
type StorageKind int

const (
	Unexposed StorageKind = iota
	Number
	Reference
	Integer
	Text
)

func (k StorageKind) String() string {
	switch k {
	case Number:
		return "number"
	case Reference:
		return "reference"
	case Integer:
		return "integer"
	case Text:
		return "text"
	default:
		return "unexposed"
	}
}

// SemanticType tags integer values with a meaning beyond their number.
type SemanticType int

const (
	SemanticNone SemanticType = iota
	SemanticYesNo
)

// Value is the sealed set of parameter values: NumberValue, ReferenceValue,
// IntegerValue, TextValue and UnexposedValue.
type Value interface {
	Kind() StorageKind
	isValue()
}

// NumberValue is a floating point measurement.
// Display holds the text the host already formatted with units.
type NumberValue struct {
	Raw     float64
	Display string
}

// DisplayString returns the pre-formatted text, or the shortest decimal
// rendering of Raw when none was recorded.
func (v NumberValue) DisplayString() string {
	if v.Display != "" {
		return v.Display
	}
	return strconv.FormatFloat(v.Raw, 'f', -1, 64)
}

func (NumberValue) Kind() StorageKind { return Number }
func (NumberValue) isValue()          {}

// ReferenceValue points at another element of the same document.
type ReferenceValue struct {
	ID ElementID
}

func (ReferenceValue) Kind() StorageKind { return Reference }
func (ReferenceValue) isValue()          {}

// IntegerValue is the only variant that carries a SemanticType.
type IntegerValue struct {
	Value    int64
	Semantic SemanticType
}

func (IntegerValue) Kind() StorageKind { return Integer }
func (IntegerValue) isValue()          {}

type TextValue struct {
	Value string
}

func (TextValue) Kind() StorageKind { return Text }
func (TextValue) isValue()          {}

// UnexposedValue stands for any storage the host does not expose.
type UnexposedValue struct{}

func (UnexposedValue) Kind() StorageKind { return Unexposed }
func (UnexposedValue) isValue()          {}

// Parameter is a named value attached to an element.
type Parameter struct {
	Name  string
	Value Value
}
