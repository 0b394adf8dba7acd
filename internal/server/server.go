// Package server wires the sales handlers, health and metrics endpoints into one
// net/http handler.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/sebuszqo/SalesTracker/internal/metrics"
	"github.com/sebuszqo/SalesTracker/internal/sales/interfaces"
)

const (
	infoMessage        = "API de vendas com Prometheus & PostgreSQL"
	healthCheckTimeout = 2 * time.Second
)

// HealthChecker reports database status; DBService implements it.
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

type Server struct {
	router          *http.ServeMux
	categoryHandler *interfaces.CategoryHandler
	saleHandler     *interfaces.SaleHandler
	metrics         *metrics.Metrics
	health          HealthChecker
	allowedOrigins  []string
}

func NewServer(
	categoryHandler *interfaces.CategoryHandler,
	saleHandler *interfaces.SaleHandler,
	m *metrics.Metrics,
	health HealthChecker,
	allowedOrigins []string,
) *Server {
	return &Server{
		router:          http.NewServeMux(),
		categoryHandler: categoryHandler,
		saleHandler:     saleHandler,
		metrics:         m,
		health:          health,
		allowedOrigins:  allowedOrigins,
	}
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": infoMessage,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	stats := s.health.Health(ctx)
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	RespondJSON(w, status, stats)
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	router.Handle("GET /{$}", http.HandlerFunc(s.handleInfo))
	router.Handle("GET /health", http.HandlerFunc(s.handleHealth))
	router.Handle("GET /metrics", s.metrics.Handler())

	router.Handle("GET /categories", http.HandlerFunc(s.categoryHandler.GetCategories))
	router.Handle("POST /categories", http.HandlerFunc(s.categoryHandler.CreateCategory))

	router.Handle("GET /sales", http.HandlerFunc(s.saleHandler.GetSales))
	router.Handle("POST /sales", http.HandlerFunc(s.saleHandler.CreateSale))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

// Handler returns the router wrapped in metrics, CORS and request logging, outermost first.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	h = loggingMiddleware(h)
	h = corsMiddleware(s.allowedOrigins)(h)
	return s.metrics.Middleware(h)
}

// ListenAndServe serves on addr until ctx is cancelled, then drains in-flight requests
// for at most shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
