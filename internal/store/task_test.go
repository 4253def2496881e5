package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskmaster/api/internal/domain"
	"github.com/taskmaster/api/internal/store"
)

func TestNewTaskPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		page      int
		perPage   int
		wantPages int
	}{
		{name: "even split", total: 10, page: 1, perPage: 5, wantPages: 2},
		{name: "partial last page", total: 5, page: 2, perPage: 2, wantPages: 3},
		{name: "single page", total: 3, page: 1, perPage: 100, wantPages: 1},
		{name: "no tasks", total: 0, page: 1, perPage: 10, wantPages: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page := store.NewTaskPage([]*domain.Task{}, tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, page.Pages)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.page, page.CurrentPage)
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsNotFoundError(store.ErrUserNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrTaskNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrCommentNotFound))
	assert.False(t, store.IsNotFoundError(store.ErrEmailExists))

	assert.True(t, store.IsDuplicateError(store.ErrEmailExists))
	assert.False(t, store.IsDuplicateError(store.ErrTaskNotFound))
}
