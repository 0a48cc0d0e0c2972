package service

import (
	"errors"
	"fmt"

	"github.com/brayannhc07/webapiautores/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrNotFound is the parent of every "entity does not exist" error.
	// API layer should map this to HTTP 404 Not Found.
	ErrNotFound = errors.New("not found")

	ErrAuthorNotFound  = fmt.Errorf("%w: author", ErrNotFound)
	ErrBookNotFound    = fmt.Errorf("%w: book", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)

	// ErrBadRequest is the parent of every business-rule rejection.
	// API layer should map this to HTTP 400 Bad Request.
	ErrBadRequest = errors.New("bad request")

	ErrDuplicateAuthorName = fmt.Errorf("%w: duplicate author name", ErrBadRequest)
	ErrNoAuthors           = fmt.Errorf("%w: book without authors", ErrBadRequest)
	ErrUnknownAuthors      = fmt.Errorf("%w: unknown author ids", ErrBadRequest)
	ErrInvalidCredentials  = fmt.Errorf("%w: invalid credentials", ErrBadRequest)
	ErrEmailTaken          = fmt.Errorf("%w: email already registered", ErrBadRequest)
)

// RejectionError carries the client-facing message of a business-rule
// rejection alongside the sentinel it wraps.
type RejectionError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

// Unwrap returns the sentinel to support errors.Is.
func (e *RejectionError) Unwrap() error {
	return e.Err
}

func reject(sentinel error, message string) error {
	return &RejectionError{Message: message, Err: sentinel}
}

// ServiceError wraps unexpected errors from a service with context.
type ServiceError struct {
	// Service is the service that failed (e.g., "author", "book")
	Service string
	// Operation is the operation that failed (e.g., "create", "update")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// storeSentinels maps store-level not-found errors onto service sentinels.
var storeSentinels = []struct {
	from error
	to   error
}{
	{store.ErrAuthorNotFound, ErrAuthorNotFound},
	{store.ErrBookNotFound, ErrBookNotFound},
	{store.ErrCommentNotFound, ErrCommentNotFound},
	{store.ErrUserNotFound, ErrUserNotFound},
}

// NewServiceError creates a new ServiceError.
// It returns service sentinels and rejections directly without wrapping, and
// translates store not-found errors into their service equivalents.
func NewServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrBadRequest) {
		return err
	}

	for _, s := range storeSentinels {
		if errors.Is(err, s.from) {
			return s.to
		}
	}
	if store.IsNotFoundError(err) {
		return ErrNotFound
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
