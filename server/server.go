// Package server exposes the ledger over a local HTTP JSON API.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/etnz/vendas"
	"github.com/etnz/vendas/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Server is the vendas HTTP API.
type Server struct {
	ledger  *vendas.Ledger
	prefs   *vendas.Preferences
	cur     vendas.Currency
	log     logging.Logger
	timeout time.Duration

	registry *prometheus.Registry // nil when metrics are disabled
	metrics  *Metrics
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics enables the /metrics endpoint backed by reg.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
		s.metrics = NewMetrics(reg)
	}
}

// WithRequestTimeout bounds the duration of a request.
func WithRequestTimeout(d time.Duration) Option { return func(s *Server) { s.timeout = d } }

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option { return func(s *Server) { s.log = l } }

// New returns a server over ledger and prefs.
func New(ledger *vendas.Ledger, prefs *vendas.Preferences, cur vendas.Currency, opts ...Option) *Server {
	s := &Server{
		ledger:  ledger,
		prefs:   prefs,
		cur:     cur,
		log:     logging.L,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/days", s.handleDays)
		r.Route("/days/{day}", func(r chi.Router) {
			r.Get("/sales", s.handleEntries)
			r.Post("/sales", s.handleAppend)
			r.Delete("/sales", s.handleReset)
			r.Get("/summary", s.handleSummary)
			r.Get("/charts", s.handleCharts)
			r.Get("/report", s.handleReport)
		})
		r.Get("/preferences", s.handlePreferences)
		r.Post("/preferences/theme/toggle", s.handleToggleTheme)
	})

	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully within shutdownTimeout.
// Today is recorded as a known day before the first request.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	if err := s.ledger.EnsureDay(s.ledger.Today()); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.WithField("addr", addr).Info("http server listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("http server stopped")
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string, details ...string) {
	body := map[string]any{"message": msg}
	if len(details) > 0 {
		body["details"] = details
	}
	writeJSON(w, status, map[string]any{"error": body})
}
