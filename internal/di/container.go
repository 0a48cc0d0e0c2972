// Package di provides dependency injection configuration for the API server.
package di

import (
	"log/slog"

	"github.com/brayannhc07/webapiautores/internal/api"
	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/brayannhc07/webapiautores/internal/config"
	"github.com/brayannhc07/webapiautores/internal/di/providers"
	"github.com/samber/do/v2"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()
	Register(injector)
	return injector
}

// Register adds every provider to injector.
func Register(injector do.Injector) {
	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideDB)
	do.Provide(injector, providers.ProvideTransactor)
	do.Provide(injector, providers.ProvideAuthorStore)
	do.Provide(injector, providers.ProvideBookStore)
	do.Provide(injector, providers.ProvideCommentStore)
	do.Provide(injector, providers.ProvideUserStore)
	do.Provide(injector, providers.ProvideCache)
	do.Provide(injector, providers.ProvideRateLimiter)

	// Auth layer
	do.Provide(injector, providers.ProvideJWTService)
	do.Provide(injector, providers.ProvidePasswordHasher)
	do.Provide(injector, providers.ProvideAdminChecker)
	do.Provide(injector, providers.ProvideAuthMiddleware)

	// Business services
	do.Provide(injector, providers.ProvideAuthorService)
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideCommentService)
	do.Provide(injector, providers.ProvideAccountService)

	// HTTP layer
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideLinker)
	do.Provide(injector, providers.ProvideHandlers)
	do.Provide(injector, providers.ProvideHealthHandler)
}

// Bootstrap resolves the singletons the HTTP server depends on so that
// configuration and connection errors surface before the server starts.
func Bootstrap(injector do.Injector) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*slog.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.DBHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.CacheHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.RateLimiterHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*middleware.AuthMiddleware](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*api.Handlers](injector); err != nil {
		return err
	}
	_, err := do.Invoke[*api.HealthHandler](injector)
	return err
}
