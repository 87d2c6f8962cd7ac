package middleware

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/logging"
)

// Logging writes one record per request.
func Logging(l logging.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			reqLogger := l
			if rid := RequestIDFrom(r.Context()); rid != "" {
				reqLogger = reqLogger.With("request_id", rid)
			}
			reqLogger.Info(r.Context(), "http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.code(),
				"dur", time.Since(start),
				"bytes", sw.count,
			)
		})
	}
}
