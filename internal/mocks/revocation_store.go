package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/taskmaster/api/internal/store"
)

// MockRevocationStore implements store.RevocationStore for testing.
type MockRevocationStore struct {
	// Function fields for customizable behavior
	RevokeFn    func(ctx context.Context, jti uuid.UUID, revokedAt time.Time) error
	IsRevokedFn func(ctx context.Context, jti uuid.UUID) (bool, error)

	// Data for the default implementation
	Revoked map[uuid.UUID]time.Time
}

// NewMockRevocationStore creates a new mock store with initialized
// defaults.
func NewMockRevocationStore() *MockRevocationStore {
	return &MockRevocationStore{
		Revoked: make(map[uuid.UUID]time.Time),
	}
}

// Revoke implements the RevocationStore interface. Like the real store
// it is idempotent: revoking an already-revoked jti keeps the original
// timestamp.
func (m *MockRevocationStore) Revoke(ctx context.Context, jti uuid.UUID, revokedAt time.Time) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, jti, revokedAt)
	}

	if _, exists := m.Revoked[jti]; !exists {
		m.Revoked[jti] = revokedAt
	}
	return nil
}

// IsRevoked implements the RevocationStore interface.
func (m *MockRevocationStore) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	if m.IsRevokedFn != nil {
		return m.IsRevokedFn(ctx, jti)
	}

	_, revoked := m.Revoked[jti]
	return revoked, nil
}

// WithTx implements the RevocationStore interface.
func (m *MockRevocationStore) WithTx(tx *sql.Tx) store.RevocationStore {
	return m
}
