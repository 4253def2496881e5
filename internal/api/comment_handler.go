package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskmaster/api/internal/api/shared"
	"github.com/taskmaster/api/internal/domain"
	"github.com/taskmaster/api/internal/store"
)

// CommentHandler handles comment-related API requests.
type CommentHandler struct {
	comments  store.CommentStore
	validator *validator.Validate
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments store.CommentStore) *CommentHandler {
	return &CommentHandler{
		comments:  comments,
		validator: validator.New(),
	}
}

// Create handles POST /routes/tasks/{task_id}/comments. The comment is
// attributed to the authenticated user.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := getPathUUID(r, "task_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationFields(err))
		return
	}

	comment, err := domain.NewComment(taskID, userID, req.Content)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.comments.Create(r.Context(), comment); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateCommentResponse{
		Message: "Comment added",
		Comment: commentToResponse(comment),
	})
}

// List handles GET /routes/tasks/{task_id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	taskID, err := getPathUUID(r, "task_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.comments.ListByTask(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp = append(resp, commentToResponse(comment))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Update handles PUT /routes/comments/{comment_id}. Only the content
// changes.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, err := getPathUUID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationFields(err))
		return
	}

	comment, err := h.comments.GetByID(r.Context(), commentID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comment.Content = req.Content
	if err := comment.Validate(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.comments.Update(r.Context(), comment); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentToResponse(comment))
}

// Delete handles DELETE /routes/comments/{comment_id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, err := getPathUUID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), commentID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
