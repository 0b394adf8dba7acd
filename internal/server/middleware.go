package server

import (
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/rs/cors"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("Started request", "method", r.Method, "path", r.URL.Path)

		m := httpsnoop.CaptureMetrics(next, w, r)

		slog.Info("Completed request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"duration", m.Duration,
		)
	})
}

// corsMiddleware allows the configured origins ("*" allows any) and answers
// preflight requests with 204.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler
}
