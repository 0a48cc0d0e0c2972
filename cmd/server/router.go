package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/brayannhc07/webapiautores/internal/api"
	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/brayannhc07/webapiautores/internal/config"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// routerDeps are the resolved components the router is built from.
type routerDeps struct {
	config   *config.Config
	logger   *slog.Logger
	handlers *api.Handlers
	health   *api.HealthHandler
	auth     *middleware.AuthMiddleware
	cache    *middleware.ResponseCache    // nil disables response caching
	limiter  *middleware.KeyedRateLimiter // nil disables rate limiting
}

// newRouter builds the application router. Global middleware runs in a fixed
// order: request id, real ip (trusted proxies only), trace, response logger,
// exception filter, CORS, rate limit. Version, auth and cache are applied per
// route group.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if d.config.Server.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.NewTraceMiddleware(d.logger))
	// The logger wraps the filter so recovered 500 bodies are logged too.
	r.Use(middleware.ResponseLogger)
	r.Use(middleware.ExceptionFilter)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.config.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pagination.TotalCountHeader, "Location"},
		MaxAge:         300,
	}))
	if d.limiter != nil {
		r.Use(middleware.RateLimit(d.limiter))
	}

	var cacheMW func(http.Handler) http.Handler
	if d.cache != nil {
		cacheMW = d.cache.Handler
	}
	d.handlers.Mount(r, d.auth, cacheMW)

	r.Get("/health", d.health.Health)

	if d.config.Server.IsDevelopment() {
		for _, version := range api.APIVersions {
			r.Get(fmt.Sprintf("/swagger/v%d/swagger.json", version), api.OpenAPIHandler(api.NewOpenAPI(version)))
		}
	}

	return r
}
