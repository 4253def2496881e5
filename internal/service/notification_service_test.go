package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/api/internal/mocks"
	"github.com/taskmaster/api/internal/service"
)

func TestAssignmentMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"You have been assigned a new task: Write report",
		service.AssignmentMessage("Write report"))
}

func TestRecordAssignment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	notifications := mocks.NewMockNotificationStore()
	sender := &mocks.MockMailSender{}
	svc, err := service.NewNotificationService(notifications, sender, nil)
	require.NoError(t, err)

	recipient := uuid.New()
	notification, err := svc.RecordAssignment(ctx, nil, recipient, "Write report")
	require.NoError(t, err)

	assert.Equal(t, recipient, notification.UserID)
	assert.Equal(t, "You have been assigned a new task: Write report", notification.Message)
	require.Len(t, notifications.Notifications, 1)

	// Recording does not send mail; delivery is a separate step.
	assert.Empty(t, sender.Sent)
}

func TestSendAssignmentEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("delivers one message", func(t *testing.T) {
		t.Parallel()
		sender := &mocks.MockMailSender{}
		svc, err := service.NewNotificationService(mocks.NewMockNotificationStore(), sender, nil)
		require.NoError(t, err)

		svc.SendAssignmentEmail(ctx, "bob@example.com", "Write report")

		require.Len(t, sender.Sent, 1)
		assert.Equal(t, "bob@example.com", sender.Sent[0].To)
		assert.Equal(t, "New Task Assigned", sender.Sent[0].Subject)
		assert.Equal(t, "You have been assigned a new task: Write report", sender.Sent[0].Body)
	})

	t.Run("transport failure is swallowed", func(t *testing.T) {
		t.Parallel()
		sender := &mocks.MockMailSender{SendErr: assert.AnError}
		svc, err := service.NewNotificationService(mocks.NewMockNotificationStore(), sender, nil)
		require.NoError(t, err)

		// Must not panic or surface the error.
		svc.SendAssignmentEmail(ctx, "bob@example.com", "Write report")
		assert.Empty(t, sender.Sent)
	})
}

func TestListForUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	notifications := mocks.NewMockNotificationStore()
	svc, err := service.NewNotificationService(notifications, &mocks.MockMailSender{}, nil)
	require.NoError(t, err)

	alice := uuid.New()
	bob := uuid.New()

	_, err = svc.RecordAssignment(ctx, nil, alice, "first")
	require.NoError(t, err)
	_, err = svc.RecordAssignment(ctx, nil, bob, "second")
	require.NoError(t, err)
	_, err = svc.RecordAssignment(ctx, nil, alice, "third")
	require.NoError(t, err)

	listed, err := svc.ListForUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, notification := range listed {
		assert.Equal(t, alice, notification.UserID)
	}
}
