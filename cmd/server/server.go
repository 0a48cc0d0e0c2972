package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/brayannhc07/webapiautores/internal/api"
	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/brayannhc07/webapiautores/internal/config"
	"github.com/brayannhc07/webapiautores/internal/di/providers"
	"github.com/samber/do/v2"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// Run serves until ctx is canceled or the listener fails. The caller is
// responsible for calling Shutdown afterwards.
func (h *HTTPServerHandle) Run(ctx context.Context, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", "addr", h.Addr)
		if err := h.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	}
}

// provideHTTPServer provides the HTTP server with the full middleware pipeline.
func provideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	cacheHandle := do.MustInvoke[*providers.CacheHandle](i)

	router := newRouter(routerDeps{
		config:   cfg,
		logger:   do.MustInvoke[*slog.Logger](i),
		handlers: do.MustInvoke[*api.Handlers](i),
		health:   do.MustInvoke[*api.HealthHandler](i),
		auth:     do.MustInvoke[*middleware.AuthMiddleware](i),
		cache:    cacheHandle.Cache,
		limiter:  do.MustInvoke[*providers.RateLimiterHandle](i).Limiter,
	})

	return &HTTPServerHandle{Server: &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}}, nil
}
