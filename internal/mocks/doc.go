// Package mocks provides centralized mock implementations for testing.
//
// The store mocks are in-memory fakes: they keep real state in maps so
// service and handler tests can exercise whole flows, and every method can be
// overridden with a function field when a test needs a specific failure:
//
//	authors := mocks.NewMockAuthorStore()
//	authors.CountFn = func(ctx context.Context) (int, error) {
//	    return 0, errors.New("connection reset")
//	}
//
// WithTx on every store mock ignores the transaction and returns the same
// store, so MockTransactor can run transactional service code without a database.
package mocks
