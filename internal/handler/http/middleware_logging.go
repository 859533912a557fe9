package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// routeUnmatched is logged when no route pattern matched the request.
const routeUnmatched = "unmatched"

// withLogging writes one access log entry per request through the
// request-scoped logger.
//
// The entry names the matched route pattern, not the request URI, so
// identifiers in /auth/check/{identifier} never reach the log. Responses
// with a 5xx status are logged at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		level := zerolog.InfoLevel
		if lw.status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		log.Logger.WithLevel(level).
			Str("route", routePattern(r)).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// routePattern returns the chi pattern of the route that served r. It is
// complete only after the router has handled the request.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return routeUnmatched
}
