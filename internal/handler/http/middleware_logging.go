package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
)

// withLogging emits one structured log line per request with the method,
// URI, resulting status, response size and handling duration.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
