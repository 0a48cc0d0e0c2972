package mocks

import (
	"context"
	"database/sql"

	"github.com/brayannhc07/webapiautores/internal/store"
)

// MockTransactor implements store.Transactor by calling fn with a nil transaction.
type MockTransactor struct {
	// BeginErr is returned instead of running fn when set.
	BeginErr error
	// Calls counts InTx invocations.
	Calls int
	// LastOpts records the options of the most recent call.
	LastOpts *sql.TxOptions
}

var _ store.Transactor = (*MockTransactor)(nil)

// InTx implements store.Transactor.
func (m *MockTransactor) InTx(ctx context.Context, opts *sql.TxOptions, fn store.TxFn) error {
	m.Calls++
	m.LastOpts = opts
	if m.BeginErr != nil {
		return m.BeginErr
	}
	return fn(ctx, nil)
}
