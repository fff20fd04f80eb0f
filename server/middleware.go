package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/etnz/vendas/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// logRequests gives each request a correlation id and logs its outcome.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, id := logging.WithCorrelationID(r.Context())
		r = r.WithContext(ctx)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Correlation-ID", id)
		start := time.Now()

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log := s.log.WithContext(ctx).WithFields(logging.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": status,
			"duration_ms": elapsed.Milliseconds(),
		})
		switch {
		case status >= 500:
			log.Error("request failed")
		case status >= 400:
			log.Warn("request rejected")
		default:
			log.Info("request served")
		}

		if s.metrics != nil {
			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			s.metrics.RequestDuration.
				WithLabelValues(route, r.Method, strconv.Itoa(status)).
				Observe(elapsed.Seconds())
		}
	})
}
