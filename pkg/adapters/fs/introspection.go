package fs

import (
	"github.com/aretw0/introspection"
)

// ModelState exposes the loaded snapshot for observability.
type ModelState struct {
	Path          string `json:"path"`
	Format        string `json:"format"`
	Title         string `json:"title"`
	Family        bool   `json:"family"`
	Strict        bool   `json:"strict"`
	ElementCount  int    `json:"element_count"`
	RevisionCount int    `json:"revision_count"`
	SheetCount    int    `json:"sheet_count"`
	ActiveView    string `json:"active_view,omitempty"`
	ActiveKind    string `json:"active_view_kind,omitempty"`
}

// State implements introspection.Introspectable.
func (m *Model) State() any {
	state := ModelState{
		Path:          m.Path,
		Format:        m.format,
		Title:         m.title,
		Family:        m.family,
		Strict:        m.config.Strict,
		ElementCount:  len(m.elements),
		RevisionCount: len(m.revs),
		SheetCount:    len(m.sheets),
	}
	if m.active != nil {
		state.ActiveView = m.active.Name
		state.ActiveKind = string(m.active.Kind)
	}
	return state
}

// ComponentType implements introspection.Component.
func (m *Model) ComponentType() string {
	return "model"
}

var _ introspection.Introspectable = (*Model)(nil)
var _ introspection.Component = (*Model)(nil)
