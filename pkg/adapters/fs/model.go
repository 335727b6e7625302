package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/revdata/pkg/core"
)

// Config holds the configuration for loading a snapshot.
type Config struct {
	Path        string
	Strict      bool
	Logger      *slog.Logger
	Serializers map[string]Serializer // keyed by extension, e.g. ".yaml"
	ActiveView  string                // id, sheet number or view name; overrides the snapshot
}

// Model is a read-only project document loaded from a snapshot file.
// It implements core.Document.
type Model struct {
	Path   string
	format string
	config Config

	title    string
	family   bool
	notes    string
	active   *core.View
	views    map[core.ElementID]core.View
	elements map[core.ElementID]core.Element
	order    []core.ElementID
	revs     []core.ElementID
	sheets   []*core.Sheet
}

var _ core.Document = (*Model)(nil)

// Load reads the snapshot at config.Path and builds a Model from it.
//
// Workflow:
//  1. Pick the serializer by file extension.
//  2. Open the file and parse it; the handle is closed before returning.
//  3. Decode elements, views and the active view.
func Load(config Config) (*Model, error) {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Serializers == nil {
		config.Serializers = DefaultSerializers(config.Strict)
	}

	ext := strings.ToLower(filepath.Ext(config.Path))
	s, ok := config.Serializers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, ext)
	}

	snap, err := parseFile(config.Path, s)
	if err != nil {
		return nil, err
	}

	m, err := newModel(snap, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.Path, err)
	}
	m.format = ext

	config.Logger.Debug("snapshot loaded",
		"path", config.Path,
		"elements", len(m.elements),
		"revisions", len(m.revs),
		"sheets", len(m.sheets),
	)
	return m, nil
}

func parseFile(path string, s Serializer) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snap, err := s.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return snap, nil
}

// newModel indexes a parsed snapshot.
func newModel(snap *Snapshot, config Config) (*Model, error) {
	m := &Model{
		Path:     config.Path,
		config:   config,
		title:    snap.Title,
		family:   snap.Family,
		notes:    snap.Notes,
		views:    make(map[core.ElementID]core.View),
		elements: make(map[core.ElementID]core.Element, len(snap.Elements)),
	}

	for _, v := range snap.Views {
		id := core.ElementID(v.ID)
		m.views[id] = core.View{ID: id, Name: v.Name, Kind: core.ParseViewKind(v.Kind)}
	}

	for _, spec := range snap.Elements {
		el, err := m.decodeElement(spec)
		if err != nil {
			return nil, err
		}
		if _, dup := m.elements[el.ID()]; dup {
			return nil, fmt.Errorf("duplicate element id %d", spec.ID)
		}
		m.elements[el.ID()] = el
		m.order = append(m.order, el.ID())

		switch e := el.(type) {
		case *core.Revision:
			if snap.Revisions == nil {
				m.revs = append(m.revs, e.ID())
			}
		case *core.Sheet:
			m.sheets = append(m.sheets, e)
			m.views[e.ID()] = e.View()
		}
	}

	// An explicit list wins over element order, including ids that are not revisions.
	for _, id := range snap.Revisions {
		m.revs = append(m.revs, core.ElementID(id))
	}

	ref := config.ActiveView
	if ref == "" && snap.ActiveView != nil {
		ref = fmt.Sprint(snap.ActiveView)
	}
	if ref != "" {
		v, ok := m.findView(ref)
		if !ok {
			return nil, fmt.Errorf("active view %q not found", ref)
		}
		m.active = &v
	}

	return m, nil
}

func (m *Model) decodeElement(spec ElementSpec) (core.Element, error) {
	id := core.ElementID(spec.ID)
	if !id.Valid() {
		return nil, fmt.Errorf("element %q has invalid id %d", spec.Name, spec.ID)
	}

	unique, err := resolveUniqueID(m.Path, spec)
	if err != nil {
		return nil, err
	}

	base := core.BasicElement{
		ElementID:    id,
		Unique:       unique,
		ElementName:  spec.Name,
		CategoryName: spec.Category,
	}
	for _, p := range spec.Parameters {
		v, err := p.toValue(m.config.Strict)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", spec.ID, err)
		}
		base.Parameters = append(base.Parameters, core.Parameter{Name: p.Name, Value: v})
	}

	switch {
	case spec.Revision != nil && spec.Sheet != nil:
		return nil, fmt.Errorf("element %d cannot be both a revision and a sheet", spec.ID)
	case spec.Revision != nil:
		r := spec.Revision
		if base.CategoryName == "" {
			base.CategoryName = "Revisions"
		}
		return &core.Revision{
			BasicElement:   base,
			SequenceNumber: r.Sequence,
			RevisionNumber: r.Number,
			NumberType:     r.Numbering,
			RevisionDate:   r.Date,
			Description:    r.Description,
			Issued:         r.Issued,
			IssuedTo:       r.IssuedTo,
			IssuedBy:       r.IssuedBy,
			Visibility:     r.Visibility,
		}, nil
	case spec.Sheet != nil:
		if base.CategoryName == "" {
			base.CategoryName = "Sheets"
		}
		sheet := &core.Sheet{
			BasicElement: base,
			Number:       spec.Sheet.Number,
			Hidden:       make(map[core.ElementID]bool, len(spec.Sheet.Hidden)),
		}
		for _, rid := range spec.Sheet.Revisions {
			sheet.RevisionIDs = append(sheet.RevisionIDs, core.ElementID(rid))
		}
		for _, hid := range spec.Sheet.Hidden {
			sheet.Hidden[core.ElementID(hid)] = true
		}
		return sheet, nil
	default:
		return &base, nil
	}
}

// findView resolves a view reference: an element id, a sheet number or a view name.
func (m *Model) findView(ref string) (core.View, bool) {
	if n, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if v, ok := m.views[core.ElementID(n)]; ok {
			return v, true
		}
	}
	for _, s := range m.sheets {
		if s.Number == ref {
			return s.View(), true
		}
	}
	for _, id := range m.sortedViewIDs() {
		if v := m.views[id]; v.Name == ref {
			return v, true
		}
	}
	return core.View{}, false
}

func (m *Model) sortedViewIDs() []core.ElementID {
	ids := make([]core.ElementID, 0, len(m.views))
	for id := range m.views {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// --- core.Document ---

func (m *Model) Title() string          { return m.title }
func (m *Model) IsFamilyDocument() bool { return m.family }

// Notes returns the Markdown body of the snapshot, if any.
func (m *Model) Notes() string { return m.notes }

func (m *Model) ActiveView() (core.View, bool) {
	if m.active == nil {
		return core.View{}, false
	}
	return *m.active, true
}

func (m *Model) Sheets() []*core.Sheet {
	return slices.Clone(m.sheets)
}

// Elements returns every element in snapshot order.
func (m *Model) Elements() []core.Element {
	out := make([]core.Element, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.elements[id])
	}
	return out
}

func (m *Model) ResolveName(id core.ElementID) (string, bool) {
	el, ok := m.ResolveElement(id)
	if !ok {
		return "", false
	}
	return el.Name(), true
}

func (m *Model) ResolveElement(id core.ElementID) (core.Element, bool) {
	if !id.Valid() {
		return nil, false
	}
	el, ok := m.elements[id]
	return el, ok
}

func (m *Model) AllRevisionIDs(ctx context.Context) ([]core.ElementID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(m.revs), nil
}

func (m *Model) SheetRevisionIDs(ctx context.Context, sheet *core.Sheet) ([]core.ElementID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, fmt.Errorf("no sheet given")
	}
	return slices.Clone(sheet.RevisionIDs), nil
}
