package distmap

import (
	"log/slog"
	"time"

	"github.com/hupe1980/distmap/vertex"
)

// DefaultDelimiter separates fields in the source matrix unless configured
// otherwise.
const DefaultDelimiter = " "

type options struct {
	delimiter        string
	maskFile         string
	maskLoader       vertex.MaskLoader
	logger           *Logger
	progressInterval time.Duration
}

// Option configures Create behavior.
type Option func(*options)

// WithDelimiter sets the field delimiter of the source matrix.
// The default is a single space.
func WithDelimiter(delim string) Option {
	return func(o *options) {
		if delim != "" {
			o.delimiter = delim
		}
	}
}

// WithMaskFile excludes vertices using the mask at path. Mask values are
// cast to boolean: every nonzero element excludes its vertex. The mask is
// also persisted to mask.txt in the output directory for provenance.
func WithMaskFile(path string) Option {
	return func(o *options) {
		o.maskFile = path
	}
}

// WithMaskLoader replaces the default plain-text mask loader, e.g. with one
// that understands neuroimaging container formats.
func WithMaskLoader(loader vertex.MaskLoader) Option {
	return func(o *options) {
		if loader != nil {
			o.maskLoader = loader
		}
	}
}

// WithLogger configures structured logging for the run.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithProgressInterval sets how often streaming progress is logged.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.progressInterval = d
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		delimiter:        DefaultDelimiter,
		maskLoader:       vertex.TextMaskLoader{},
		logger:           NoopLogger(),
		progressInterval: 5 * time.Second,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
