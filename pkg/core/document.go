package core

import (
	"context"
	"strings"
)

// ViewKind is the presentation type of a view.
type ViewKind string

const (
	ViewSheet     ViewKind = "sheet"
	ViewFloorPlan ViewKind = "floorplan"
	ViewSection   ViewKind = "section"
	ViewElevation ViewKind = "elevation"
	ViewSchedule  ViewKind = "schedule"
	ViewThreeD    ViewKind = "3d"
	ViewOther     ViewKind = "other"
)

// ParseViewKind maps free text onto a ViewKind. Unknown kinds are ViewOther.
func ParseViewKind(s string) ViewKind {
	switch k := ViewKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ViewSheet, ViewFloorPlan, ViewSection, ViewElevation, ViewSchedule, ViewThreeD:
		return k
	case "plan", "floor_plan", "floor-plan":
		return ViewFloorPlan
	case "threed", "3-d":
		return ViewThreeD
	default:
		return ViewOther
	}
}

// View is a presentation of the model. Sheets are views too.
type View struct {
	ID   ElementID `json:"id"`
	Name string    `json:"name"`
	Kind ViewKind  `json:"kind"`
}

// Sheet is a presentation surface that references zero or more revisions.
type Sheet struct {
	BasicElement

	Number      string
	RevisionIDs []ElementID
	Hidden      map[ElementID]bool
}

// IsHidden reports whether the element is hidden on this sheet.
func (s *Sheet) IsHidden(id ElementID) bool {
	return s.Hidden[id]
}

// View returns the sheet as a view.
func (s *Sheet) View() View {
	return View{ID: s.ElementID, Name: s.ElementName, Kind: ViewSheet}
}

// DocumentLookup resolves ids to elements.
type DocumentLookup interface {
	// ResolveName returns the display name of the referenced element.
	ResolveName(id ElementID) (string, bool)
	// ResolveElement returns the element with the given id, if any.
	ResolveElement(id ElementID) (Element, bool)
}

// RevisionSource enumerates revision ids.
type RevisionSource interface {
	// AllRevisionIDs returns the ids of every revision in the document, in document order.
	AllRevisionIDs(ctx context.Context) ([]ElementID, error)
	// SheetRevisionIDs returns the ids of the revisions referenced from sheet.
	SheetRevisionIDs(ctx context.Context, sheet *Sheet) ([]ElementID, error)
}

// Document is the read-only host model the collector works against.
type Document interface {
	DocumentLookup
	RevisionSource

	Title() string
	IsFamilyDocument() bool
	ActiveView() (View, bool)
	Sheets() []*Sheet
}

// RequireSheetView checks that doc is a project document whose active view
// is a sheet, and returns that sheet.
func RequireSheetView(doc Document) (*Sheet, error) {
	if doc.IsFamilyDocument() {
		return nil, ErrFamilyDocument
	}
	view, ok := doc.ActiveView()
	if !ok || view.Kind != ViewSheet {
		return nil, ErrNotSheetView
	}
	el, ok := doc.ResolveElement(view.ID)
	if !ok {
		return nil, ErrNotSheetView
	}
	sheet, ok := el.(*Sheet)
	if !ok {
		return nil, ErrNotSheetView
	}
	return sheet, nil
}
