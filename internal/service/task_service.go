package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskmaster/api/internal/domain"
	"github.com/taskmaster/api/internal/platform/logger"
	"github.com/taskmaster/api/internal/store"
)

// CreateTaskInput carries the parsed fields of a task creation request.
// Zero values for Priority, Status and CompletionPercentage fall back to
// the domain defaults.
type CreateTaskInput struct {
	Title                string
	Description          string
	DueDate              *time.Time
	Priority             domain.Priority
	CompletionPercentage int
	Status               string
	AssignedToEmail      string
}

// TaskService implements the task lifecycle: creation with assignee
// resolution and notification dispatch, partial updates, deletion and
// listing. Mutations that touch more than one row run inside a single
// transaction.
type TaskService struct {
	runner   store.TxRunner
	tasks    store.TaskStore
	users    store.UserStore
	notifier *NotificationService
	logger   *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(
	runner store.TxRunner,
	tasks store.TaskStore,
	users store.UserStore,
	notifier *NotificationService,
	log *slog.Logger,
) (*TaskService, error) {
	if runner == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if tasks == nil || users == nil {
		return nil, fmt.Errorf("task and user stores are required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notification service is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TaskService{
		runner:   runner,
		tasks:    tasks,
		users:    users,
		notifier: notifier,
		logger:   log.With(slog.String("component", "task_service")),
	}, nil
}

// Create creates a task on behalf of creatorID. When AssignedToEmail is
// given it must resolve to an existing user (store.ErrUserNotFound
// otherwise); when absent the creator becomes the assignee. Assignment
// to a user other than the creator persists a notification in the same
// transaction as the task and sends one email copy after commit.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput, creatorID uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var created *domain.Task
	var notifyEmail string

	err := s.runner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		users := s.users
		tasks := s.tasks
		if tx != nil {
			users = users.WithTx(tx)
			tasks = tasks.WithTx(tx)
		}

		assigneeID := creatorID
		if input.AssignedToEmail != "" {
			assignee, err := users.GetByEmail(ctx, input.AssignedToEmail)
			if err != nil {
				return err
			}
			assigneeID = assignee.ID
			if assigneeID != creatorID {
				notifyEmail = assignee.Email
			}
		}

		task, err := domain.NewTask(
			input.Title,
			input.Description,
			input.DueDate,
			input.Priority,
			input.CompletionPercentage,
			input.Status,
			&assigneeID,
		)
		if err != nil {
			return err
		}

		if err := tasks.Create(ctx, task); err != nil {
			return err
		}

		if notifyEmail != "" {
			if _, err := s.notifier.RecordAssignment(ctx, tx, assigneeID, task.Title); err != nil {
				return err
			}
		}

		created = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("task created",
		slog.String("task_id", created.ID.String()),
		slog.String("creator_id", creatorID.String()),
		slog.String("assignee_id", created.AssignedTo.String()))

	// Email delivery happens after commit and is best-effort; a transport
	// failure must not undo the task.
	if notifyEmail != "" {
		s.notifier.SendAssignmentEmail(ctx, notifyEmail, created.Title)
	}

	return created, nil
}

// Get returns a task by ID.
func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// List returns one page of tasks.
func (s *TaskService) List(ctx context.Context, page, perPage int) (*store.TaskPage, error) {
	return s.tasks.List(ctx, page, perPage)
}

// Update applies a partial update: only the patch's non-nil fields
// change. The read-modify-write runs in a transaction so concurrent
// patches don't clobber each other's fields.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Task
	err := s.runner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		tasks := s.tasks
		if tx != nil {
			tasks = tasks.WithTx(tx)
		}

		task, err := tasks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := task.Apply(patch); err != nil {
			return err
		}
		if err := tasks.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("task updated",
		slog.String("task_id", id.String()))
	return updated, nil
}

// Delete removes a task and, through the cascading foreign key, its
// comments.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tasks.Delete(ctx, id)
}
