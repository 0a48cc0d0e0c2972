// Package service contains the application use cases of the authors API.
// Services orchestrate domain validation and the store interfaces defined in
// internal/store, own transaction boundaries through store.Transactor, and
// translate store errors into the service sentinels that the API layer maps
// onto HTTP status codes.
//
// Services depend on store interfaces only, never on a concrete driver, so
// they run unchanged against the in-memory fakes in internal/mocks.
package service
