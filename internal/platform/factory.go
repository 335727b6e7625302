package platform

import (
	"io"
	"log/slog"
	"maps"

	"github.com/aretw0/revdata/pkg/adapters/fs"
	"github.com/aretw0/revdata/pkg/core"
)

func resolve(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Open loads the snapshot at path as a read-only document.
//
//	doc, err := platform.Open("./revisions.yaml", platform.WithStrict(true))
func Open(path string, opts ...Option) (*fs.Model, error) {
	o := resolve(opts)

	serializers := fs.DefaultSerializers(o.strict)
	maps.Copy(serializers, o.serializers)

	return fs.Load(fs.Config{
		Path:        path,
		Strict:      o.strict,
		Logger:      o.logger.With("component", "model"),
		Serializers: serializers,
		ActiveView:  o.activeView,
	})
}

// NewCollector creates a collector wired to the configured logger.
func NewCollector(opts ...Option) *core.Collector {
	o := resolve(opts)
	return core.NewCollector(o.logger.With("component", "collector"))
}
