// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the service layer. The PostgreSQL implementations live in
// internal/platform/postgres.
package store
