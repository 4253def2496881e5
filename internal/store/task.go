package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskmaster/api/internal/domain"
)

// TaskPage is one page of a task listing along with the pagination
// bookkeeping clients need to walk the full set.
type TaskPage struct {
	Tasks       []*domain.Task
	Total       int
	Pages       int
	CurrentPage int
}

// NewTaskPage assembles a TaskPage, deriving the page count from the
// total and page size.
func NewTaskPage(tasks []*domain.Task, total, page, perPage int) *TaskPage {
	pages := 0
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}
	return &TaskPage{
		Tasks:       tasks,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	}
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task. Returns ErrUserNotFound if the assignee
	// does not reference an existing user.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns one page of tasks using offset pagination. Ordering is
	// by creation time then ID ascending, which keeps pages stable.
	// page and perPage must both be >= 1.
	List(ctx context.Context, page, perPage int) (*TaskPage, error)

	// Update persists the full current state of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID. Comments attached to the task are
	// removed with it. Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a TaskStore that runs its operations on the given
	// transaction.
	WithTx(tx *sql.Tx) TaskStore
}
