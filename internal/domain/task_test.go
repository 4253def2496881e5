package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/api/internal/domain"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	assignee := uuid.New()

	t.Run("defaults applied", func(t *testing.T) {
		t.Parallel()
		task, err := domain.NewTask("Write report", "", nil, "", 0, "", &assignee)
		require.NoError(t, err)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.Equal(t, "To Do", task.Status)
		assert.Equal(t, 0, task.CompletionPercentage)
		assert.Nil(t, task.DueDate)
		require.NotNil(t, task.AssignedTo)
		assert.Equal(t, assignee, *task.AssignedTo)
	})

	t.Run("explicit fields kept", func(t *testing.T) {
		t.Parallel()
		due := time.Now().UTC().Add(48 * time.Hour)
		task, err := domain.NewTask("Write report", "quarterly numbers", &due,
			domain.PriorityHigh, 25, "In Progress", &assignee)
		require.NoError(t, err)
		assert.Equal(t, domain.PriorityHigh, task.Priority)
		assert.Equal(t, "In Progress", task.Status)
		assert.Equal(t, 25, task.CompletionPercentage)
		require.NotNil(t, task.DueDate)
		assert.True(t, task.DueDate.Equal(due))
	})

	t.Run("title too short", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask("ab", "", nil, "", 0, "", &assignee)
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")
	})

	t.Run("description too long", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask("Write report", strings.Repeat("x", 501), nil, "", 0, "", &assignee)
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "description")
	})

	t.Run("unknown priority", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask("Write report", "", nil, "urgent", 0, "", &assignee)
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "priority")
	})

	t.Run("completion percentage out of range", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask("Write report", "", nil, "", 101, "", &assignee)
		require.Error(t, err)

		_, err = domain.NewTask("Write report", "", nil, "", -1, "", &assignee)
		require.Error(t, err)
	})

	t.Run("past due date rejected", func(t *testing.T) {
		t.Parallel()
		past := time.Now().UTC().Add(-time.Hour)
		_, err := domain.NewTask("Write report", "", &past, "", 0, "", &assignee)
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "due_date")
	})
}

func TestPriorityValid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.PriorityLow.Valid())
	assert.True(t, domain.PriorityMedium.Valid())
	assert.True(t, domain.PriorityHigh.Valid())
	assert.False(t, domain.Priority("").Valid())
	assert.False(t, domain.Priority("urgent").Valid())
}

func TestTaskApply(t *testing.T) {
	t.Parallel()

	newTask := func(t *testing.T) *domain.Task {
		t.Helper()
		assignee := uuid.New()
		task, err := domain.NewTask("Write report", "quarterly numbers", nil,
			domain.PriorityLow, 10, "In Progress", &assignee)
		require.NoError(t, err)
		return task
	}

	t.Run("patched fields change, others do not", func(t *testing.T) {
		t.Parallel()
		task := newTask(t)
		originalAssignee := *task.AssignedTo

		title := "Write final report"
		completion := 80
		err := task.Apply(domain.TaskPatch{
			Title:                &title,
			CompletionPercentage: &completion,
		})
		require.NoError(t, err)

		assert.Equal(t, "Write final report", task.Title)
		assert.Equal(t, 80, task.CompletionPercentage)
		assert.Equal(t, "quarterly numbers", task.Description)
		assert.Equal(t, domain.PriorityLow, task.Priority)
		assert.Equal(t, "In Progress", task.Status)
		assert.Equal(t, originalAssignee, *task.AssignedTo)
	})

	t.Run("empty patch is a no-op apart from the timestamp", func(t *testing.T) {
		t.Parallel()
		task := newTask(t)
		before := *task

		require.NoError(t, task.Apply(domain.TaskPatch{}))

		assert.Equal(t, before.Title, task.Title)
		assert.Equal(t, before.Description, task.Description)
		assert.Equal(t, before.Priority, task.Priority)
		assert.Equal(t, before.CompletionPercentage, task.CompletionPercentage)
		assert.Equal(t, before.Status, task.Status)
	})

	t.Run("invalid patch leaves the task untouched", func(t *testing.T) {
		t.Parallel()
		task := newTask(t)

		badTitle := "ab"
		completion := 50
		err := task.Apply(domain.TaskPatch{
			Title:                &badTitle,
			CompletionPercentage: &completion,
		})
		require.Error(t, err)

		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, 10, task.CompletionPercentage)
	})

	t.Run("due date can move into the past", func(t *testing.T) {
		t.Parallel()
		task := newTask(t)

		past := time.Now().UTC().Add(-time.Hour)
		require.NoError(t, task.Apply(domain.TaskPatch{DueDate: &past}))
		require.NotNil(t, task.DueDate)
		assert.True(t, task.DueDate.Equal(past))
	})
}
