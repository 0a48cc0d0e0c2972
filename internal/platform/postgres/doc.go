// Package postgres provides PostgreSQL implementations of the store interfaces
// defined in internal/store, built on sqlx over the pgx stdlib driver.
// It also embeds the goose SQL migrations that define the schema.
package postgres
