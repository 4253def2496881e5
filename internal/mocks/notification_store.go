package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/taskmaster/api/internal/domain"
	"github.com/taskmaster/api/internal/store"
)

// MockNotificationStore implements store.NotificationStore for testing.
type MockNotificationStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, notification *domain.Notification) error
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)

	// Data for the default implementation
	Notifications []*domain.Notification
	CreateError   error
}

// NewMockNotificationStore creates a new mock store with initialized
// defaults.
func NewMockNotificationStore() *MockNotificationStore {
	return &MockNotificationStore{}
}

// Create implements the NotificationStore interface.
func (m *MockNotificationStore) Create(ctx context.Context, notification *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, notification)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	m.Notifications = append(m.Notifications, notification)
	return nil
}

// ListByUser implements the NotificationStore interface. The default
// implementation returns the recipient's notifications newest first.
func (m *MockNotificationStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	notifications := make([]*domain.Notification, 0)
	for _, notification := range m.Notifications {
		if notification.UserID == userID {
			notifications = append(notifications, notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

// WithTx implements the NotificationStore interface.
func (m *MockNotificationStore) WithTx(tx *sql.Tx) store.NotificationStore {
	return m
}
