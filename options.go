package mathclean

import "github.com/riverfjs/mathclean-go/internal/render"

// Options holds options for Process.
type Options struct {
	Config   Config
	Strategy Strategy
	Renderer render.Renderer
	Plain    bool
}

// Option is a function that configures Options.
type Option func(*Options)

// WithConfig sets a custom Config. Options applied earlier that touch
// the config are overwritten.
func WithConfig(config *Config) Option {
	return func(opts *Options) {
		if config != nil {
			opts.Config = *config
		}
	}
}

// WithStrategy selects the strategy explicitly. It takes precedence over
// WithPlainMode and WithRenderer.
func WithStrategy(s Strategy) Option {
	return func(opts *Options) {
		opts.Strategy = s
	}
}

// WithRenderer sets the typesetting engine used by the rich strategy.
func WithRenderer(r render.Renderer) Option {
	return func(opts *Options) {
		opts.Renderer = r
	}
}

// WithBracketDelimiters enables \[...\] and \(...\) delimiters.
func WithBracketDelimiters(enable bool) Option {
	return func(opts *Options) {
		opts.Config.Brackets = enable
	}
}

// WithPlainMode selects the plain-text strategy.
func WithPlainMode(enable bool) Option {
	return func(opts *Options) {
		opts.Plain = enable
	}
}

// defaultOptions returns the default processing options.
func defaultOptions() *Options {
	return &Options{
		Config: *DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// strategy 返回本次调用使用的策略
func (o *Options) strategy() Strategy {
	if o.Strategy != nil {
		return o.Strategy
	}
	cfg := o.Config
	if o.Plain {
		return NewPlainStrategy(&cfg)
	}
	r := o.Renderer
	if r == nil {
		r = render.NewTreeBlood(nil)
	}
	return NewRichStrategy(r, &cfg)
}
