package core

import (
	"fmt"
	"strings"
)

// NumberingScheme controls how a revision is numbered on sheets.
type NumberingScheme int

const (
	NumberingNone NumberingScheme = iota
	NumberingNumeric
	NumberingAlphanumeric
)

var numberingNames = []string{"None", "Numeric", "Alphanumeric"}

func (n NumberingScheme) String() string {
	if n < 0 || int(n) >= len(numberingNames) {
		return fmt.Sprintf("NumberingScheme(%d)", int(n))
	}
	return numberingNames[n]
}

func (n NumberingScheme) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *NumberingScheme) UnmarshalText(b []byte) error {
	i, err := parseEnum("numbering scheme", string(b), numberingNames)
	if err != nil {
		return err
	}
	*n = NumberingScheme(i)
	return nil
}

// Visibility controls whether revision clouds and tags show in views.
type Visibility int

const (
	VisibilityHidden Visibility = iota
	VisibilityTagVisible
	VisibilityCloudAndTagVisible
)

var visibilityNames = []string{"Hidden", "TagVisible", "CloudAndTagVisible"}

func (v Visibility) String() string {
	if v < 0 || int(v) >= len(visibilityNames) {
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
	return visibilityNames[v]
}

func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Visibility) UnmarshalText(b []byte) error {
	i, err := parseEnum("visibility", string(b), visibilityNames)
	if err != nil {
		return err
	}
	*v = Visibility(i)
	return nil
}

// parseEnum matches s against names ignoring case, spaces, dashes and underscores.
func parseEnum(what, s string, names []string) (int, error) {
	key := normalizeEnum(s)
	for i, name := range names {
		if normalizeEnum(name) == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
}

// Revision is a dated, numbered entry describing a documented change.
type Revision struct {
	BasicElement

	SequenceNumber int
	RevisionNumber string
	NumberType     NumberingScheme
	RevisionDate   string
	Description    string
	Issued         bool
	IssuedTo       string
	IssuedBy       string
	Visibility     Visibility
}

// RevisionRecord is the flattened snapshot of a revision shown in the
// revisions table. It holds no reference back to the document.
type RevisionRecord struct {
	Sequence    int             `json:"sequence"`
	Numbering   NumberingScheme `json:"numbering"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Issued      bool            `json:"issued"`
	IssuedTo    string          `json:"issued_to"`
	IssuedBy    string          `json:"issued_by"`
	Show        Visibility      `json:"show"`
}

// NewRevisionRecord copies the native fields of r.
func NewRevisionRecord(r *Revision) RevisionRecord {
	return RevisionRecord{
		Sequence:    r.SequenceNumber,
		Numbering:   r.NumberType,
		Date:        r.RevisionDate,
		Description: r.Description,
		Issued:      r.Issued,
		IssuedTo:    r.IssuedTo,
		IssuedBy:    r.IssuedBy,
		Show:        r.Visibility,
	}
}

// SheetRevision extends a RevisionRecord with the fields the per-sheet
// summary prints.
type SheetRevision struct {
	RevisionRecord
	Category string `json:"category"`
	Number   string `json:"number"`
}
