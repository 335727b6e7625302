package platform

import (
	"log/slog"

	"github.com/aretw0/revdata/pkg/adapters/fs"
)

// options holds the internal configuration for opening a document.
type options struct {
	logger      *slog.Logger
	strict      bool
	activeView  string
	serializers map[string]fs.Serializer
}

// Option defines a functional option for configuring revdata.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:      nil,
		strict:      false,
		serializers: make(map[string]fs.Serializer),
	}
}

// WithLogger sets the logger for the model and collector.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStrict rejects unknown snapshot fields and unknown parameter storage
// kinds instead of treating them as unexposed.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithActiveView overrides the active view recorded in the snapshot.
// ref is an element id, a sheet number or a view name.
func WithActiveView(ref string) Option {
	return func(o *options) {
		o.activeView = ref
	}
}

// WithSerializer registers a serializer for a file extension (e.g. ".toml"),
// replacing the default one if present.
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}
