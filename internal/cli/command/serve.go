package command

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/config"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/function"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/httpserver"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/logger"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/requestid"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/session"
)

// ServeCommand runs the development server.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run a local server with demo session-wrapped handlers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address, overrides DEV_SERVER_ADDR",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	log := newLogger(c)

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}
	if addr := c.String("addr"); addr != "" {
		srvCfg.Addr = addr
	}

	cfg, err := session.LoadConfig()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m, err := session.NewManager(cfg,
		session.WithLogger(log),
		session.WithMetrics(session.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}

	router, err := NewRouter(m, reg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := append(srvCfg.Options(), httpserver.WithLogger(log))
	return httpserver.New(router, opts...).Run(ctx)
}

// NewRouter mounts the demo handlers, health check and metrics endpoint.
func NewRouter(m *session.Manager, gatherer prometheus.Gatherer, log *slog.Logger) (http.Handler, error) {
	fn, err := m.Wrap(function.HandlerFunc(counterFunction))
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(log))

	r.Handle("/.netlify/functions/counter", function.HTTPHandler(fn, log))
	r.Handle("/counter", m.Middleware(http.HandlerFunc(counterHandler)))
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r, nil
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.DebugContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Size(ww.BytesWritten()),
			)
		})
	}
}
