package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskmaster/api/internal/platform/logger"
	"github.com/taskmaster/api/internal/store"
)

// RevocationStore implements store.RevocationStore backed by PostgreSQL.
type RevocationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRevocationStore creates a PostgreSQL implementation of
// store.RevocationStore.
func NewRevocationStore(db store.DBTX, log *slog.Logger) *RevocationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &RevocationStore{
		db:     db,
		logger: log.With(slog.String("component", "revocation_store")),
	}
}

var _ store.RevocationStore = (*RevocationStore)(nil)

// Revoke implements store.RevocationStore.Revoke. ON CONFLICT DO NOTHING
// makes repeated revocation of the same jti a no-op.
func (s *RevocationStore) Revoke(ctx context.Context, jti uuid.UUID, revokedAt time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO revoked_tokens (jti, revoked_at)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, jti, revokedAt); err != nil {
		log.Error("failed to revoke token",
			slog.String("error", err.Error()),
			slog.String("jti", jti.String()))
		return MapError(err)
	}

	log.Info("token revoked",
		slog.String("jti", jti.String()))
	return nil
}

// IsRevoked implements store.RevocationStore.IsRevoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var revoked bool
	query := `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`
	if err := s.db.QueryRowContext(ctx, query, jti).Scan(&revoked); err != nil {
		log.Error("failed to check token revocation",
			slog.String("error", err.Error()),
			slog.String("jti", jti.String()))
		return false, MapError(err)
	}

	return revoked, nil
}

// WithTx implements store.RevocationStore.WithTx.
func (s *RevocationStore) WithTx(tx *sql.Tx) store.RevocationStore {
	return &RevocationStore{
		db:     tx,
		logger: s.logger,
	}
}
