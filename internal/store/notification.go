package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskmaster/api/internal/domain"
)

// NotificationStore defines the interface for notification persistence.
// Notifications are append-only: created on assignment, read by listing.
type NotificationStore interface {
	// Create saves a new notification. Returns ErrUserNotFound if the
	// recipient does not exist.
	Create(ctx context.Context, notification *domain.Notification) error

	// ListByUser returns all notifications for a recipient, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)

	// WithTx returns a NotificationStore that runs its operations on the
	// given transaction.
	WithTx(tx *sql.Tx) NotificationStore
}
