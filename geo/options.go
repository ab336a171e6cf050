package geo

// DefaultDelimiter separates matrix fields unless configured otherwise.
const DefaultDelimiter = " "

// DefaultUnassignedLabel is the label value marking vertices that belong to
// no parcel; it matches the Connectome Workbench convention.
const DefaultUnassignedLabel = 0

type options struct {
	delimiter  string
	unassigned int
}

// Option configures geo operations.
type Option func(*options)

// WithDelimiter sets the field delimiter for read and written matrices.
func WithDelimiter(delim string) Option {
	return func(o *options) {
		if delim != "" {
			o.delimiter = delim
		}
	}
}

// WithUnassignedLabel sets the label value excluded from parcellation.
func WithUnassignedLabel(v int) Option {
	return func(o *options) {
		o.unassigned = v
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		delimiter:  DefaultDelimiter,
		unassigned: DefaultUnassignedLabel,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
