package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/api/internal/domain"
	"github.com/taskmaster/api/internal/mocks"
	"github.com/taskmaster/api/internal/service"
	"github.com/taskmaster/api/internal/store"
)

type taskServiceFixture struct {
	users         *mocks.MockUserStore
	tasks         *mocks.MockTaskStore
	notifications *mocks.MockNotificationStore
	sender        *mocks.MockMailSender
	svc           *service.TaskService
}

func newTaskServiceFixture(t *testing.T) *taskServiceFixture {
	t.Helper()

	f := &taskServiceFixture{
		users:         mocks.NewMockUserStore(),
		tasks:         mocks.NewMockTaskStore(),
		notifications: mocks.NewMockNotificationStore(),
		sender:        &mocks.MockMailSender{},
	}

	notifier, err := service.NewNotificationService(f.notifications, f.sender, nil)
	require.NoError(t, err)

	f.svc, err = service.NewTaskService(&mocks.MockTxRunner{}, f.tasks, f.users, notifier, nil)
	require.NoError(t, err)
	return f
}

func (f *taskServiceFixture) addUser(t *testing.T, username, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, email, "password123")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func TestTaskServiceCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("self-assigned by default, no notification", func(t *testing.T) {
		t.Parallel()
		f := newTaskServiceFixture(t)
		creator := f.addUser(t, "alice", "alice@example.com")

		task, err := f.svc.Create(ctx, service.CreateTaskInput{Title: "Write report"}, creator.ID)
		require.NoError(t, err)

		require.NotNil(t, task.AssignedTo)
		assert.Equal(t, creator.ID, *task.AssignedTo)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.Equal(t, "To Do", task.Status)

		assert.Empty(t, f.notifications.Notifications)
		assert.Empty(t, f.sender.Sent)
	})

	t.Run("assignment to another user notifies them once", func(t *testing.T) {
		t.Parallel()
		f := newTaskServiceFixture(t)
		creator := f.addUser(t, "alice", "alice@example.com")
		assignee := f.addUser(t, "bob", "bob@example.com")

		task, err := f.svc.Create(ctx, service.CreateTaskInput{
			Title:           "Write report",
			AssignedToEmail: "bob@example.com",
		}, creator.ID)
		require.NoError(t, err)

		require.NotNil(t, task.AssignedTo)
		assert.Equal(t, assignee.ID, *task.AssignedTo)

		require.Len(t, f.notifications.Notifications, 1)
		notification := f.notifications.Notifications[0]
		assert.Equal(t, assignee.ID, notification.UserID)
		assert.Equal(t, "You have been assigned a new task: Write report", notification.Message)

		require.Len(t, f.sender.Sent, 1)
		assert.Equal(t, "bob@example.com", f.sender.Sent[0].To)
	})

	t.Run("self-assignment by email does not notify", func(t *testing.T) {
		t.Parallel()
		f := newTaskServiceFixture(t)
		creator := f.addUser(t, "alice", "alice@example.com")

		_, err := f.svc.Create(ctx, service.CreateTaskInput{
			Title:           "Write report",
			AssignedToEmail: "alice@example.com",
		}, creator.ID)
		require.NoError(t, err)

		assert.Empty(t, f.notifications.Notifications)
		assert.Empty(t, f.sender.Sent)
	})

	t.Run("unknown assignee email fails, nothing persisted", func(t *testing.T) {
		t.Parallel()
		f := newTaskServiceFixture(t)
		creator := f.addUser(t, "alice", "alice@example.com")

		_, err := f.svc.Create(ctx, service.CreateTaskInput{
			Title:           "Write report",
			AssignedToEmail: "ghost@example.com",
		}, creator.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Empty(t, f.tasks.Tasks)
		assert.Empty(t, f.sender.Sent)
	})

	t.Run("email failure does not fail the request", func(t *testing.T) {
		t.Parallel()
		f := newTaskServiceFixture(t)
		f.sender.SendErr = assert.AnError
		creator := f.addUser(t, "alice", "alice@example.com")
		f.addUser(t, "bob", "bob@example.com")

		task, err := f.svc.Create(ctx, service.CreateTaskInput{
			Title:           "Write report",
			AssignedToEmail: "bob@example.com",
		}, creator.ID)
		require.NoError(t, err)

		// The notification row survives even though delivery failed.
		assert.Contains(t, f.tasks.Tasks, task.ID)
		assert.Len(t, f.notifications.Notifications, 1)
	})

	t.Run("invalid input rejected", func(t *testing.T) {
		t.Parallel()
		f := newTaskServiceFixture(t)
		creator := f.addUser(t, "alice", "alice@example.com")

		_, err := f.svc.Create(ctx, service.CreateTaskInput{Title: "ab"}, creator.ID)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, f.tasks.Tasks)
	})
}

func TestTaskServiceUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("partial update keeps unpatched fields", func(t *testing.T) {
		t.Parallel()
		f := newTaskServiceFixture(t)
		creator := f.addUser(t, "alice", "alice@example.com")

		task, err := f.svc.Create(ctx, service.CreateTaskInput{
			Title:       "Write report",
			Description: "quarterly numbers",
		}, creator.ID)
		require.NoError(t, err)

		status := "Done"
		completion := 100
		updated, err := f.svc.Update(ctx, task.ID, domain.TaskPatch{
			Status:               &status,
			CompletionPercentage: &completion,
		})
		require.NoError(t, err)

		assert.Equal(t, "Done", updated.Status)
		assert.Equal(t, 100, updated.CompletionPercentage)
		assert.Equal(t, "Write report", updated.Title)
		assert.Equal(t, "quarterly numbers", updated.Description)
	})

	t.Run("missing task", func(t *testing.T) {
		t.Parallel()
		f := newTaskServiceFixture(t)

		status := "Done"
		_, err := f.svc.Update(ctx, uuid.New(), domain.TaskPatch{Status: &status})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskServiceDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newTaskServiceFixture(t)
	creator := f.addUser(t, "alice", "alice@example.com")

	task, err := f.svc.Create(ctx, service.CreateTaskInput{Title: "Write report"}, creator.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, task.ID))
	assert.NotContains(t, f.tasks.Tasks, task.ID)

	assert.ErrorIs(t, f.svc.Delete(ctx, task.ID), store.ErrTaskNotFound)
}

func TestTaskServiceList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newTaskServiceFixture(t)
	creator := f.addUser(t, "alice", "alice@example.com")

	for i := 0; i < 5; i++ {
		_, err := f.svc.Create(ctx, service.CreateTaskInput{Title: "Write report"}, creator.ID)
		require.NoError(t, err)
		time.Sleep(time.Millisecond) // distinct creation times for stable ordering
	}

	page, err := f.svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Tasks, 2)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 1, page.CurrentPage)

	// Last page is a partial page; pages past the end are empty.
	page, err = f.svc.List(ctx, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page.Tasks, 1)

	page, err = f.svc.List(ctx, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Tasks)
	assert.Equal(t, 5, page.Total)
}
