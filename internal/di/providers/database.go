package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brayannhc07/webapiautores/internal/config"
	"github.com/brayannhc07/webapiautores/internal/platform/postgres"
	"github.com/brayannhc07/webapiautores/internal/store"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/jmoiron/sqlx"
	"github.com/samber/do/v2"
)

const pingTimeout = 5 * time.Second

// DBHandle wraps the connection pool with shutdown capability.
type DBHandle struct {
	*sqlx.DB
}

// Shutdown implements do.Shutdownable.
func (h *DBHandle) Shutdown() error {
	return h.Close()
}

// OpenDB opens and pings a PostgreSQL pool sized from cfg.
func OpenDB(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// ProvideDB provides the database pool.
func ProvideDB(i do.Injector) (*DBHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	db, err := OpenDB(context.Background(), cfg.Database)
	if err != nil {
		return nil, err
	}

	log.Info("Database connection established",
		"max_open_conns", cfg.Database.MaxOpenConns)
	return &DBHandle{DB: db}, nil
}

// ProvideTransactor provides the transaction runner used by the services.
func ProvideTransactor(i do.Injector) (store.Transactor, error) {
	db := do.MustInvoke[*DBHandle](i)
	return store.NewSQLXTransactor(db.DB), nil
}

// ProvideAuthorStore provides the author store.
func ProvideAuthorStore(i do.Injector) (store.AuthorStore, error) {
	db := do.MustInvoke[*DBHandle](i)
	return postgres.NewPostgresAuthorStore(db.DB, do.MustInvoke[*slog.Logger](i)), nil
}

// ProvideBookStore provides the book store.
func ProvideBookStore(i do.Injector) (store.BookStore, error) {
	db := do.MustInvoke[*DBHandle](i)
	return postgres.NewPostgresBookStore(db.DB, do.MustInvoke[*slog.Logger](i)), nil
}

// ProvideCommentStore provides the comment store.
func ProvideCommentStore(i do.Injector) (store.CommentStore, error) {
	db := do.MustInvoke[*DBHandle](i)
	return postgres.NewPostgresCommentStore(db.DB, do.MustInvoke[*slog.Logger](i)), nil
}

// ProvideUserStore provides the user store.
func ProvideUserStore(i do.Injector) (store.UserStore, error) {
	db := do.MustInvoke[*DBHandle](i)
	return postgres.NewPostgresUserStore(db.DB, do.MustInvoke[*slog.Logger](i)), nil
}
