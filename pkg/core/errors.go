package core

import "errors"

// Common errors.
var (
	ErrFamilyDocument    = errors.New("this command requires a project document, not a family or template")
	ErrNotSheetView      = errors.New("this command requires an active sheet view")
	ErrUnresolvedElement = errors.New("element id does not resolve")
	ErrNotRevision       = errors.New("element is not a revision")
	ErrReportWrite       = errors.New("failed to write report")
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
)
