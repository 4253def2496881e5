package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskmaster/api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment. Returns ErrTaskNotFound if the comment
	// references a task that does not exist, and ErrUserNotFound if the
	// author does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by its unique ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// ListByTask returns all comments on a task in creation order.
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)

	// Update persists a comment's content change.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment by ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CommentStore that runs its operations on the given
	// transaction.
	WithTx(tx *sql.Tx) CommentStore
}
