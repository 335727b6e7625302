package revdata

import (
	"context"
	"log/slog"

	"github.com/aretw0/revdata/internal/platform"
	"github.com/aretw0/revdata/pkg/adapters/fs"
	"github.com/aretw0/revdata/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring revdata.
type Option = platform.Option

// WithLogger sets the logger for the model and collector.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStrict rejects unknown snapshot fields and storage kinds.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithActiveView overrides the active view recorded in the snapshot.
func WithActiveView(ref string) Option {
	return platform.WithActiveView(ref)
}

// WithSerializer registers a snapshot serializer for a file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// --- Factory ---

// Open loads a snapshot file as a read-only document.
func Open(path string, opts ...Option) (*fs.Model, error) {
	return platform.Open(path, opts...)
}

// NewCollector creates a revision collector.
func NewCollector(opts ...Option) *core.Collector {
	return platform.NewCollector(opts...)
}

// FindSnapshot looks upwards from startDir for a revisions.{yaml,yml,json,md} file.
func FindSnapshot(startDir string) (string, error) {
	return platform.FindSnapshot(startDir)
}

// SelectSheets returns the sheets whose number matches a glob pattern.
func SelectSheets(doc core.Document, pattern string) ([]*core.Sheet, error) {
	return platform.SelectSheets(doc, pattern)
}

// --- Operations ---

// Revisions opens path and collects every revision of the document for display.
// The active view must be a sheet of a project document.
func Revisions(ctx context.Context, path string, opts ...Option) ([]core.RevisionRecord, error) {
	doc, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := core.RequireSheetView(doc); err != nil {
		return nil, err
	}
	return NewCollector(opts...).CollectForDisplay(ctx, doc)
}
