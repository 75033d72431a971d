package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the Server.
type Option func(*options)

type options struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	onListen        []func(addr string)
}

// WithAddr sets the listen address. Use port 0 to pick a free port.
func WithAddr(addr string) Option {
	return func(o *options) {
		if addr != "" {
			o.addr = addr
		}
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { o.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { o.writeTimeout = d }
}

// WithShutdownTimeout bounds how long in-flight requests may take once Run's
// context is done.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// OnListen registers fn to run with the bound address once the listener is open.
func OnListen(fn func(addr string)) Option {
	return func(o *options) {
		if fn != nil {
			o.onListen = append(o.onListen, fn)
		}
	}
}
