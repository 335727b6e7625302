package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Collector turns revision entities into flattened records.
// It holds no document state; every call works on the document it is given.
type Collector struct {
	logger *slog.Logger
}

// NewCollector creates a Collector. A nil logger discards output.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Collector{logger: logger}
}

// CollectForDisplay returns one record per revision of the whole document,
// in document order. Ids that do not denote a revision are skipped.
// A document without revisions yields an empty slice.
func (c *Collector) CollectForDisplay(ctx context.Context, doc Document) ([]RevisionRecord, error) {
	ids, err := doc.AllRevisionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}

	records := make([]RevisionRecord, 0, len(ids))
	for _, id := range ids {
		el, ok := doc.ResolveElement(id)
		if !ok {
			c.logger.Debug("skipping unresolved revision id", "id", id)
			continue
		}
		rev, ok := el.(*Revision)
		if !ok {
			c.logger.Debug("skipping non-revision element", "id", id, "category", el.Category())
			continue
		}
		records = append(records, NewRevisionRecord(rev))
	}

	c.logger.Debug("collected revisions", "count", len(records), "ids", len(ids))
	return records, nil
}

// CollectForReport returns one report line per element referenced from
// sheet. Parameters an element lacks are reported as "null".
//
// The result is all or nothing: if any id fails to resolve, no lines are
// returned.
func (c *Collector) CollectForReport(ctx context.Context, doc Document, sheet *Sheet) ([]ReportLine, error) {
	if sheet == nil {
		return nil, fmt.Errorf("no sheet given: %w", ErrNotSheetView)
	}
	ids, err := doc.SheetRevisionIDs(ctx, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions of sheet %s: %w", sheet.Number, err)
	}

	lines := make([]ReportLine, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		el, ok := doc.ResolveElement(id)
		if !ok {
			return nil, fmt.Errorf("sheet %s references %s: %w", sheet.Number, id, ErrUnresolvedElement)
		}
		lines = append(lines, c.reportLine(doc, sheet, el))
	}
	return lines, nil
}

func (c *Collector) reportLine(lookup DocumentLookup, sheet *Sheet, el Element) ReportLine {
	line := ReportLine{
		Hidden: sheet.IsHidden(el.ID()),
		Name:   el.Name(),
		Fields: make([]ReportField, 0, len(ReportParameters)),
	}
	for _, rp := range ReportParameters {
		value := NullText
		if p, ok := el.LookupParameter(string(rp.Name)); ok {
			value = Format(p.Value, lookup)
		}
		line.Fields = append(line.Fields, ReportField{Parameter: rp.Name, Label: rp.Label, Value: value})
	}
	return line
}

// CollectSheetSummary reads the native revision fields of every revision
// referenced from sheet. Every id must denote a revision.
func (c *Collector) CollectSheetSummary(ctx context.Context, doc Document, sheet *Sheet) ([]SheetRevision, error) {
	if sheet == nil {
		return nil, fmt.Errorf("no sheet given: %w", ErrNotSheetView)
	}
	ids, err := doc.SheetRevisionIDs(ctx, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions of sheet %s: %w", sheet.Number, err)
	}

	out := make([]SheetRevision, 0, len(ids))
	for _, id := range ids {
		el, ok := doc.ResolveElement(id)
		if !ok {
			return nil, fmt.Errorf("sheet %s references %s: %w", sheet.Number, id, ErrUnresolvedElement)
		}
		rev, ok := el.(*Revision)
		if !ok {
			return nil, fmt.Errorf("sheet %s references %s: %w", sheet.Number, id, ErrNotRevision)
		}
		out = append(out, SheetRevision{
			RevisionRecord: NewRevisionRecord(rev),
			Category:       rev.Category(),
			Number:         rev.RevisionNumber,
		})
	}
	return out, nil
}
