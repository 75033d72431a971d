package session

import (
	"log/slog"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/cookie"
)

// Option is a functional option for configuring the Manager and Wrap.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	metrics       *Metrics
	cookieOptions []cookie.Option
	source        func() (Config, error)
}

func newOptions(opts []Option) *options {
	o := &options{source: LoadConfig}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithLogger sets the logger used for cookie diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records cookie outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithCookieOptions overrides attributes derived from Config.
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(o *options) {
		o.cookieOptions = append(o.cookieOptions, opts...)
	}
}

// WithConfig makes Wrap use cfg instead of reading the environment.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.source = func() (Config, error) { return cfg, nil }
	}
}

// WithConfigSource makes Wrap call fn on every invocation to obtain its
// configuration.
func WithConfigSource(fn func() (Config, error)) Option {
	return func(o *options) {
		if fn != nil {
			o.source = fn
		}
	}
}
