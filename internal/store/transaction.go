package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/jmoiron/sqlx"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *sqlx.Tx) error

// ReadOnlySnapshot is the isolation used for count-plus-page reads, so the
// total header and the page come from the same snapshot.
var ReadOnlySnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// RunInTransaction executes the given function within a read-write transaction.
// If the function returns an error, the transaction is rolled back.
// Otherwise, the transaction is committed.
func RunInTransaction(ctx context.Context, db *sqlx.DB, fn TxFn) error {
	return RunInTransactionWithOptions(ctx, db, nil, fn)
}

// RunInTransactionWithOptions is RunInTransaction with explicit transaction options.
// Rollback happens on error and on panic; panics are re-raised.
func RunInTransactionWithOptions(ctx context.Context, db *sqlx.DB, opts *sql.TxOptions, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		log.Error("failed to begin transaction", slog.Any("error", err))
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback(); txErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.Any("error", txErr),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic", slog.Any("panic", p))
			}
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error("failed to roll back transaction",
				slog.Any("error", rollbackErr),
				slog.String("original_error", err.Error()))
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rollbackErr, err)
		}
		log.Debug("rolled back transaction due to error", slog.Any("error", err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.Any("error", err))
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}

	log.Debug("transaction committed successfully")
	return nil
}

// Transactor runs a function inside a transaction. Services depend on it
// instead of *sqlx.DB so they can be exercised without a database.
type Transactor interface {
	InTx(ctx context.Context, opts *sql.TxOptions, fn TxFn) error
}

// SQLXTransactor is the Transactor backed by a real connection pool.
type SQLXTransactor struct {
	DB *sqlx.DB
}

// NewSQLXTransactor creates a Transactor over db.
func NewSQLXTransactor(db *sqlx.DB) *SQLXTransactor {
	return &SQLXTransactor{DB: db}
}

// InTx implements Transactor.
func (t *SQLXTransactor) InTx(ctx context.Context, opts *sql.TxOptions, fn TxFn) error {
	return RunInTransactionWithOptions(ctx, t.DB, opts, fn)
}
