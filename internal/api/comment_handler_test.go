package api_test

import (
	"context"
	"strings"
	"testing"

	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/api/internal/api"
	"github.com/taskmaster/api/internal/domain"
	"github.com/taskmaster/api/internal/mocks"
	"github.com/taskmaster/api/internal/store"
)

type commentFixture struct {
	comments *mocks.MockCommentStore
	router   chi.Router
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()

	f := &commentFixture{
		comments: mocks.NewMockCommentStore(),
	}

	handler := api.NewCommentHandler(f.comments)

	f.router = chi.NewRouter()
	f.router.Get("/routes/tasks/{task_id}/comments", handler.List)
	f.router.Post("/routes/tasks/{task_id}/comments", handler.Create)
	f.router.Put("/routes/comments/{comment_id}", handler.Update)
	f.router.Delete("/routes/comments/{comment_id}", handler.Delete)
	return f
}

func (f *commentFixture) addComment(t *testing.T, taskID, userID uuid.UUID, content string) *domain.Comment {
	t.Helper()
	comment, err := domain.NewComment(taskID, userID, content)
	require.NoError(t, err)
	require.NoError(t, f.comments.Create(context.Background(), comment))
	return comment
}

func TestCreateComment(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	taskID := uuid.New()

	t.Run("creates comment", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		rec := doJSON(t, f.router, http.MethodPost,
			"/routes/tasks/"+taskID.String()+"/comments",
			map[string]string{"content": "looks good"}, &userID)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Message string `json:"message"`
			Comment struct {
				TaskID  uuid.UUID `json:"task_id"`
				UserID  uuid.UUID `json:"user_id"`
				Content string    `json:"content"`
			} `json:"comment"`
		}
		decodeBody(t, rec, &body)
		assert.Equal(t, "Comment added", body.Message)
		assert.Equal(t, taskID, body.Comment.TaskID)
		assert.Equal(t, userID, body.Comment.UserID)
		assert.Equal(t, "looks good", body.Comment.Content)
	})

	t.Run("missing task", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)
		f.comments.CreateError = store.ErrTaskNotFound

		rec := doJSON(t, f.router, http.MethodPost,
			"/routes/tasks/"+taskID.String()+"/comments",
			map[string]string{"content": "looks good"}, &userID)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		rec := doJSON(t, f.router, http.MethodPost,
			"/routes/tasks/"+taskID.String()+"/comments",
			map[string]string{"content": ""}, &userID)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorBody
		decodeBody(t, rec, &body)
		assert.Contains(t, body.Errors, "content")
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		rec := doJSON(t, f.router, http.MethodPost,
			"/routes/tasks/"+taskID.String()+"/comments",
			map[string]string{"content": strings.Repeat("x", 501)}, &userID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		rec := doJSON(t, f.router, http.MethodPost,
			"/routes/tasks/"+taskID.String()+"/comments",
			map[string]string{"content": "looks good"}, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListComments(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	userID := uuid.New()
	taskID := uuid.New()

	f.addComment(t, taskID, userID, "first")
	f.addComment(t, taskID, userID, "second")
	f.addComment(t, uuid.New(), userID, "other task")

	rec := doJSON(t, f.router, http.MethodGet,
		"/routes/tasks/"+taskID.String()+"/comments", nil, &userID)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []struct {
		Content string `json:"content"`
	}
	decodeBody(t, rec, &body)
	assert.Len(t, body, 2)
}

func TestUpdateComment(t *testing.T) {
	t.Parallel()

	t.Run("updates content", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)
		userID := uuid.New()
		comment := f.addComment(t, uuid.New(), userID, "first")

		rec := doJSON(t, f.router, http.MethodPut,
			"/routes/comments/"+comment.ID.String(),
			map[string]string{"content": "revised"}, &userID)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Content string `json:"content"`
		}
		decodeBody(t, rec, &body)
		assert.Equal(t, "revised", body.Content)
		assert.Equal(t, "revised", f.comments.Comments[comment.ID].Content)
	})

	t.Run("missing comment", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)
		userID := uuid.New()

		rec := doJSON(t, f.router, http.MethodPut,
			"/routes/comments/"+uuid.NewString(),
			map[string]string{"content": "revised"}, &userID)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	userID := uuid.New()
	comment := f.addComment(t, uuid.New(), userID, "first")

	rec := doJSON(t, f.router, http.MethodDelete,
		"/routes/comments/"+comment.ID.String(), nil, &userID)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotContains(t, f.comments.Comments, comment.ID)

	rec = doJSON(t, f.router, http.MethodDelete,
		"/routes/comments/"+comment.ID.String(), nil, &userID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
