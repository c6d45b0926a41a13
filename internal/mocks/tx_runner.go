package mocks

import (
	"context"

	"github.com/presently/presently-api/internal/store"
)

// MockTxRunner implements store.TxRunner by calling fn with a nil transaction.
// Mock stores ignore the transaction, so fn runs against them directly.
type MockTxRunner struct {
	// Err, when set, is returned without calling fn (e.g. a failed BEGIN).
	Err   error
	Calls int
}

var _ store.TxRunner = (*MockTxRunner)(nil)

// RunInTransaction implements store.TxRunner.
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, nil)
}
