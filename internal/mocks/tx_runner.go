package mocks

import (
	"context"

	"github.com/taskmaster/api/internal/store"
)

// MockTxRunner implements store.TxRunner for testing. It invokes the
// callback with a nil transaction, which makes the stores run against
// their base (mock) implementations.
type MockTxRunner struct {
	// RunErr, when set, is returned without invoking the callback
	RunErr error

	// Calls counts RunInTransaction invocations
	Calls int
}

// RunInTransaction implements the store.TxRunner interface.
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.RunErr != nil {
		return m.RunErr
	}
	return fn(ctx, nil)
}
