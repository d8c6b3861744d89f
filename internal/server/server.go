package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/shift-assign/internal/config"
	"github.com/hongminglow/shift-assign/internal/http/handlers"
	"github.com/hongminglow/shift-assign/internal/middleware"
	"github.com/hongminglow/shift-assign/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.MemberRepository) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Handler(cfg, store),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Handler builds the routed handler with its middleware chain.
func Handler(cfg config.Config, store storage.MemberRepository) http.Handler {
	mux := http.NewServeMux()
	health := handlers.NewHealthHandler(time.Now())
	health.Register(mux)
	members := handlers.NewMembersHandler(store)
	members.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.CORS(cfg.CORSOrigins, middleware.Logging(middleware.Metrics(mux)))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
