package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/postkeeper/internal/server/cache"
	"github.com/iudanet/postkeeper/internal/server/metrics"
	"github.com/iudanet/postkeeper/internal/server/middleware"
	"github.com/iudanet/postkeeper/internal/server/storage"
)

// RouterConfig содержит зависимости HTTP API
type RouterConfig struct {
	Logger      *slog.Logger
	Storage     storage.Storage
	Cache       cache.Cache
	RateLimiter *middleware.RateLimiter
	Version     string
	CacheTTL    time.Duration
}

// NewRouter собирает chi роутер со всеми маршрутами и middleware
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger

	posts := NewPostsHandler(logger, cfg.Storage, cfg.Cache, cfg.CacheTTL)
	users := NewUsersHandler(logger, cfg.Storage)
	health := NewHealthHandler(logger, cfg.Storage, cfg.Version)

	r := chi.NewRouter()

	// Порядок важен: request id нужен логам и recovery
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(metrics.HTTPMiddleware)
	r.Use(middleware.LoggingWithSkip(logger, []string{"/api/health", "/metrics"}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, logger, "Resource not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, logger, "Method not allowed", http.StatusMethodNotAllowed)
	})

	r.Get("/metrics", metrics.Handler().ServeHTTP)
	r.Get("/api/health", health.Health)

	r.Group(func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Middleware)
		}

		r.Route("/api/posts", func(r chi.Router) {
			r.Get("/", posts.List)
			r.Post("/", posts.Create)
			r.Get("/{id}", posts.Get)
			r.Patch("/{id}", posts.Update)
			r.Delete("/{id}", posts.Delete)
		})

		r.Get("/api/users", users.List)
	})

	return r
}
