package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

// Entity names carried by StoreError.
const (
	entityAuthor  = "author"
	entityBook    = "book"
	entityComment = "comment"
	entityUser    = "user"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// MapError maps a database error to an appropriate store error. Errors with
// no store equivalent are wrapped in a StoreError naming the entity and
// operation so the log shows where they came from.
func MapError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: foreign key violation (%s): %v",
				store.ErrInvalidReference, pgErr.ConstraintName, err)
		case checkViolationCode:
			return fmt.Errorf("%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case notNullViolationCode:
			return fmt.Errorf("%w: not null violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ColumnName, err)
		}
	}

	return store.NewStoreError(entity, operation, "unexpected database error", err)
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// CheckRowsAffected examines the number of rows affected by an UPDATE or DELETE.
// If no rows were affected, it returns notFound. A result that cannot report
// its row count is wrapped in failed (store.ErrUpdateFailed or
// store.ErrDeleteFailed).
func CheckRowsAffected(result sql.Result, notFound, failed error) error {
	if result == nil {
		return fmt.Errorf("%w: nil result", failed)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %w", failed, err)
	}

	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
