package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// RevocationStore tracks invalidated tokens by their unique identifier
// (jti claim). It is consulted on every authenticated request, so
// implementations should keep IsRevoked to a single indexed lookup.
type RevocationStore interface {
	// Revoke records a token identifier as invalidated. Revoking an
	// already-revoked identifier is a no-op: the operation is idempotent.
	Revoke(ctx context.Context, jti uuid.UUID, revokedAt time.Time) error

	// IsRevoked reports whether the given token identifier has been
	// revoked.
	IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error)

	// WithTx returns a RevocationStore that runs its operations on the
	// given transaction.
	WithTx(tx *sql.Tx) RevocationStore
}
