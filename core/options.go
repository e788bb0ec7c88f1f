package core

// Mode selects how decoders treat unrecognized input.
type Mode int

const (
	// ModeLenient maps unknown enum spellings to Unknown variants and ignores unknown fields.
	ModeLenient Mode = iota
	// ModeStrict fails on unknown enum spellings and unknown fields.
	ModeStrict
)

// Warning is a non-fatal anomaly found while decoding.
type Warning struct {
	Entity  string
	Field   string
	Message string
	Value   string
}

type WarningSink interface {
	Warn(w Warning)
}

// Options is the decoder configuration, fixed at construction time.
type Options struct {
	Mode     Mode
	Warnings WarningSink
}

type Option func(*Options)

func WithStrict() Option {
	return func(o *Options) {
		o.Mode = ModeStrict
	}
}

func WithMode(mode Mode) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

func WithWarningSink(sink WarningSink) Option {
	return func(o *Options) {
		o.Warnings = sink
	}
}

// NewOptions applies opts over the lenient default.
func NewOptions(opts ...Option) Options {
	o := Options{Mode: ModeLenient}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) Strict() bool {
	return o.Mode == ModeStrict
}

// Warn reports w if a sink is configured.
func (o Options) Warn(w Warning) {
	if o.Warnings != nil {
		o.Warnings.Warn(w)
	}
}
