package shared_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/api/internal/api/shared"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes a single object", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"alice"}`))

		var dst payload
		require.NoError(t, shared.DecodeJSON(req, &dst))
		assert.Equal(t, "alice", dst.Name)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"alice","extra":1}`))

		var dst payload
		assert.Error(t, shared.DecodeJSON(req, &dst))
	})

	t.Run("rejects trailing values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))

		var dst payload
		assert.Error(t, shared.DecodeJSON(req, &dst))
	})

	t.Run("rejects empty body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var dst payload
		assert.Error(t, shared.DecodeJSON(req, &dst))
	})
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	ctx := shared.SetTraceID(req.Context())

	traceID := shared.GetTraceID(ctx)
	assert.Len(t, traceID, 32)

	// A fresh context has no trace ID.
	assert.Empty(t, shared.GetTraceID(req.Context()))

	// Each request gets its own ID.
	other := shared.GetTraceID(shared.SetTraceID(req.Context()))
	assert.NotEqual(t, traceID, other)
}
