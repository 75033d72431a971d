package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/logger"
)

// Server serves a handler until its context is done, then drains in-flight
// requests within the shutdown timeout.
type Server struct {
	opts    *options
	handler http.Handler
	served  atomic.Bool
}

// New returns a Server for handler. A nil handler replies 404 to everything.
func New(handler http.Handler, opts ...Option) *Server {
	o := &options{
		addr:            "127.0.0.1:8888",
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	return &Server{opts: o, handler: handler}
}

// Run listens and serves until ctx is done. A Server can be run once.
func (s *Server) Run(ctx context.Context) error {
	if !s.served.CompareAndSwap(false, true) {
		return ErrAlreadyServed
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.opts.addr)
	if err != nil {
		return errors.Join(ErrListen, err)
	}

	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.opts.readTimeout,
		WriteTimeout: s.opts.writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	addr := ln.Addr().String()
	log := s.opts.logger.With(logger.Component("httpserver"))
	log.InfoContext(ctx, "listening", slog.String("addr", addr))
	for _, fn := range s.opts.onListen {
		fn(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Join(ErrListen, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.shutdownTimeout)
	defer cancel()

	log.InfoContext(ctx, "shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(ErrShutdown, err)
	}
	<-errCh
	return nil
}
