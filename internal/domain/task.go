package domain

import (
	"time"

	"github.com/google/uuid"
)

// Priority classifies how urgent a task is.
type Priority string

// Valid task priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is used when a task is created without an explicit
// priority. It sits inside the validated enum; the historical default
// ("normal") did not and made defaulted tasks fail later updates.
const DefaultPriority = PriorityMedium

// DefaultStatus is the initial status of a newly created task. Status is
// an open string: clients may move tasks through arbitrary states.
const DefaultStatus = "To Do"

// Title and description limits enforced at creation and update.
const (
	minTitleLen       = 3
	maxTitleLen       = 120
	maxDescriptionLen = 500
)

// Valid reports whether p is one of the recognized priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Task represents a unit of work assigned to a user.
type Task struct {
	ID                   uuid.UUID  `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	DueDate              *time.Time `json:"due_date,omitempty"`
	Priority             Priority   `json:"priority"`
	CompletionPercentage int        `json:"completion_percentage"`
	Status               string     `json:"status"`
	AssignedTo           *uuid.UUID `json:"assigned_to,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// NewTask creates a new Task. Zero-valued optional fields receive their
// defaults: priority "medium", status "To Do", completion 0.
// A due date in the past is rejected at creation time only; existing
// tasks may legitimately carry overdue due dates.
// Returns a ValidationError listing every failing field if validation fails.
func NewTask(
	title, description string,
	dueDate *time.Time,
	priority Priority,
	completionPercentage int,
	status string,
	assignedTo *uuid.UUID,
) (*Task, error) {
	if priority == "" {
		priority = DefaultPriority
	}
	if status == "" {
		status = DefaultStatus
	}

	task := &Task{
		ID:                   uuid.New(),
		Title:                title,
		Description:          description,
		DueDate:              dueDate,
		Priority:             priority,
		CompletionPercentage: completionPercentage,
		Status:               status,
		AssignedTo:           assignedTo,
		CreatedAt:            time.Now().UTC(),
		UpdatedAt:            time.Now().UTC(),
	}

	verr := &ValidationError{Err: ErrValidation}
	if dueDate != nil && dueDate.Before(time.Now().UTC()) {
		verr.Add("due_date", "cannot be in the past")
	}
	if err := task.validateFields(verr); err != nil {
		return nil, err
	}
	return task, nil
}

// Validate checks the Task's fields. Due dates are not re-checked against
// the clock here; see NewTask.
func (t *Task) Validate() error {
	return t.validateFields(&ValidationError{Err: ErrValidation})
}

func (t *Task) validateFields(verr *ValidationError) error {
	if t.ID == uuid.Nil {
		verr.Add("id", "cannot be empty")
	}
	if n := len(t.Title); n < minTitleLen || n > maxTitleLen {
		verr.Add("title", "must be between 3 and 120 characters")
	}
	if len(t.Description) > maxDescriptionLen {
		verr.Add("description", "must be at most 500 characters")
	}
	if !t.Priority.Valid() {
		verr.Add("priority", "must be one of low, medium, high")
	}
	if t.CompletionPercentage < 0 || t.CompletionPercentage > 100 {
		verr.Add("completion_percentage", "must be between 0 and 100")
	}
	if t.Status == "" {
		verr.Add("status", "cannot be empty")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// TaskPatch describes a partial update to a task. Nil fields are left
// unchanged; non-nil fields replace the current value.
type TaskPatch struct {
	Title                *string
	Description          *string
	DueDate              *time.Time
	Priority             *Priority
	CompletionPercentage *int
	Status               *string
}

// Apply copies the patch's non-nil fields onto the task, bumps the
// update timestamp and re-validates the result. The task is modified
// in place only when the patched result is valid.
func (t *Task) Apply(patch TaskPatch) error {
	patched := *t
	if patch.Title != nil {
		patched.Title = *patch.Title
	}
	if patch.Description != nil {
		patched.Description = *patch.Description
	}
	if patch.DueDate != nil {
		patched.DueDate = patch.DueDate
	}
	if patch.Priority != nil {
		patched.Priority = *patch.Priority
	}
	if patch.CompletionPercentage != nil {
		patched.CompletionPercentage = *patch.CompletionPercentage
	}
	if patch.Status != nil {
		patched.Status = *patch.Status
	}
	patched.UpdatedAt = time.Now().UTC()

	if err := patched.Validate(); err != nil {
		return err
	}

	*t = patched
	return nil
}
