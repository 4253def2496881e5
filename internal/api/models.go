package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskmaster/api/internal/domain"
)

// Request payloads.

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateTaskRequest defines the payload for task creation. DueDate is an
// ISO-8601 string parsed by the handler; Priority defaults to "medium"
// and Status to "To Do" when omitted.
type CreateTaskRequest struct {
	Title                string `json:"title"                 validate:"required,min=3,max=120"`
	Description          string `json:"description"           validate:"omitempty,max=500"`
	DueDate              string `json:"due_date"              validate:"omitempty"`
	Priority             string `json:"priority"              validate:"omitempty,oneof=low medium high"`
	CompletionPercentage *int   `json:"completion_percentage" validate:"omitempty,gte=0,lte=100"`
	Status               string `json:"status"                validate:"omitempty"`
	AssignedToEmail      string `json:"assigned_to_email"     validate:"omitempty,email"`
}

// UpdateTaskRequest defines the payload for partial task updates. Only
// fields present in the JSON change the task.
type UpdateTaskRequest struct {
	Title                *string `json:"title"                 validate:"omitempty,min=3,max=120"`
	Description          *string `json:"description"           validate:"omitempty,max=500"`
	DueDate              *string `json:"due_date"              validate:"omitempty"`
	Priority             *string `json:"priority"              validate:"omitempty,oneof=low medium high"`
	CompletionPercentage *int    `json:"completion_percentage" validate:"omitempty,gte=0,lte=100"`
	Status               *string `json:"status"                validate:"omitempty"`
}

// CommentRequest defines the payload for creating or updating a comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// Response payloads.

// MessageResponse is a plain acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the successful login body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// TaskResponse is the API representation of a task.
type TaskResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	DueDate              *string    `json:"due_date"`
	Priority             string     `json:"priority"`
	CompletionPercentage int        `json:"completion_percentage"`
	Status               string     `json:"status"`
	AssignedTo           *uuid.UUID `json:"assigned_to,omitempty"`
	AssignedToEmail      *string    `json:"assigned_to_email,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// TaskListResponse is one page of tasks plus pagination bookkeeping.
type TaskListResponse struct {
	Tasks       []TaskResponse `json:"tasks"`
	Total       int            `json:"total"`
	Pages       int            `json:"pages"`
	CurrentPage int            `json:"current_page"`
}

// TaskDetailResponse is a task together with its comment thread.
type TaskDetailResponse struct {
	Task     TaskResponse      `json:"task"`
	Comments []CommentResponse `json:"comments"`
}

// CreateTaskResponse acknowledges a task creation.
type CreateTaskResponse struct {
	Message string    `json:"message"`
	TaskID  uuid.UUID `json:"task_id"`
}

// CommentResponse is the API representation of a comment.
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentResponse acknowledges a comment creation.
type CreateCommentResponse struct {
	Message string          `json:"message"`
	Comment CommentResponse `json:"comment"`
}

// NotificationResponse is the API representation of a notification.
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// taskToResponse converts a domain.Task to its API shape.
func taskToResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		Priority:             string(task.Priority),
		CompletionPercentage: task.CompletionPercentage,
		Status:               task.Status,
		AssignedTo:           task.AssignedTo,
		CreatedAt:            task.CreatedAt,
		UpdatedAt:            task.UpdatedAt,
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(time.RFC3339)
		resp.DueDate = &due
	}
	return resp
}

// commentToResponse converts a domain.Comment to its API shape.
func commentToResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// notificationToResponse converts a domain.Notification to its API shape.
func notificationToResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		Message:   notification.Message,
		CreatedAt: notification.CreatedAt,
	}
}
