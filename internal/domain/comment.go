package domain

import (
	"time"

	"github.com/google/uuid"
)

const maxCommentLen = 500

// Comment represents a remark left on a task by a user.
// CreatedAt is set at creation and never changes; only the content is
// mutable afterwards.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment creates a new Comment attached to the given task, authored
// by the given user. Returns a ValidationError if validation fails.
func NewComment(taskID, userID uuid.UUID, content string) (*Comment, error) {
	comment := &Comment{
		ID:        uuid.New(),
		TaskID:    taskID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks the Comment's fields.
func (c *Comment) Validate() error {
	verr := &ValidationError{Err: ErrValidation}

	if c.ID == uuid.Nil {
		verr.Add("id", "cannot be empty")
	}
	if c.TaskID == uuid.Nil {
		verr.Add("task_id", "cannot be empty")
	}
	if c.UserID == uuid.Nil {
		verr.Add("user_id", "cannot be empty")
	}
	if n := len(c.Content); n < 1 || n > maxCommentLen {
		verr.Add("content", "must be between 1 and 500 characters")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
