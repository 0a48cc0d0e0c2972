// Package main is the entry point of the WebApiAutores server. It wires the
// dependency container, optionally runs database migrations and serves the
// HTTP API until SIGINT or SIGTERM.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/brayannhc07/webapiautores/internal/di"
	"github.com/brayannhc07/webapiautores/internal/di/providers"
	"github.com/brayannhc07/webapiautores/internal/platform/postgres"
	"github.com/samber/do/v2"
)

func main() {
	migrateCmd := flag.String("migrate", "", fmt.Sprintf("run a migration command %v and exit", postgres.MigrationCommands))
	flag.Parse()

	injector := di.NewContainer()
	do.Provide(injector, provideHTTPServer)

	if *migrateCmd != "" {
		if err := runMigrations(injector, *migrateCmd); err != nil {
			fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap server: %v\n", err)
		os.Exit(1)
	}

	log := do.MustInvoke[*slog.Logger](injector)
	srv := do.MustInvoke[*HTTPServerHandle](injector)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, log); err != nil {
		log.Error("Server failed", "error", err)
	}

	log.Info("Shutting down server gracefully...")
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}
	log.Info("Server shutdown completed")
}

// runMigrations executes a goose command against the configured database.
func runMigrations(injector do.Injector, command string) error {
	log, err := do.Invoke[*slog.Logger](injector)
	if err != nil {
		return err
	}
	db, err := do.Invoke[*providers.DBHandle](injector)
	if err != nil {
		return err
	}
	defer func() { _ = db.Shutdown() }()

	return postgres.Migrate(context.Background(), db.DB.DB, command, log)
}
