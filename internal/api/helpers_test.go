package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/api/internal/api/shared"
	"github.com/taskmaster/api/internal/domain"
	"github.com/taskmaster/api/internal/mocks"
)

// doJSON performs a request against the router with an optional JSON
// body and an optional authenticated user injected into the context the
// way the auth middleware would.
func doJSON(
	t *testing.T,
	router chi.Router,
	method, path string,
	body interface{},
	userID *uuid.UUID,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, *userID)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes the recorded JSON response body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// errorBody is the error response shape used across the API.
type errorBody struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

// addUser stores a user with a known hashed password marker.
func addUser(t *testing.T, users *mocks.MockUserStore, username, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, email, "password123")
	require.NoError(t, err)
	user.HashedPassword = "hashed:" + user.Password
	user.Password = ""
	require.NoError(t, users.Create(context.Background(), user))
	return user
}
