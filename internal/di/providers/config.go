// Package providers contains the dependency injection providers of the API server.
package providers

import (
	"log/slog"
	"time"

	"github.com/brayannhc07/webapiautores/internal/config"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/samber/do/v2"
)

// shutdownTimeout bounds every Shutdown hook.
const shutdownTimeout = 10 * time.Second

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.Load()
}

// ProvideLogger provides the structured logger and installs it as the default.
func ProvideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, err
	}

	log.Info("Starting WebApiAutores",
		"environment", cfg.Server.Environment,
		"log_level", cfg.Server.LogLevel,
		"port", cfg.Server.Port)
	if cfg.Database.URL != "" {
		log.Debug("Database configuration", "url_present", true)
	}
	return log, nil
}
