package errs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, err *HTTPError) string {
	t.Helper()

	data, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)

	return string(data)
}

func TestConstructors(t *testing.T) {
	t.Run("bad request", func(t *testing.T) {
		err := NewBadRequestError("Request body cannot be empty")

		assert.Equal(t, http.StatusBadRequest, err.Status)
		assert.Equal(t, `{"error":"Request body cannot be empty"}`, marshal(t, err))
	})

	t.Run("not found", func(t *testing.T) {
		err := NewNotFoundError("abc-123")

		assert.Equal(t, http.StatusNotFound, err.Status)
		assert.Equal(t, "Resource with id 'abc-123' not found", err.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		err := NewStoreError("capacity exceeded")

		assert.Equal(t, http.StatusInternalServerError, err.Status)
		assert.Equal(t, `{"error":"Failed to update resource","details":"capacity exceeded"}`, marshal(t, err))
	})

	t.Run("internal", func(t *testing.T) {
		err := NewInternalServerError("nil pointer dereference")

		assert.Equal(t, http.StatusInternalServerError, err.Status)
		assert.Equal(t, "Internal server error", err.Message)
		assert.Equal(t, "nil pointer dereference", err.Details)
	})
}

func TestDetailsOmittedWhenEmpty(t *testing.T) {
	err := NewBadRequestError("Invalid JSON in request body")

	// The details key must not appear at all when unset.
	assert.NotContains(t, marshal(t, err), "details")
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "Missing resourceId in path",
		NewBadRequestError("Missing resourceId in path").Error())
}

func TestWithDetailsCopies(t *testing.T) {
	base := NewStoreError("")

	derived := base.WithDetails("table not reachable")

	assert.Equal(t, "table not reachable", derived.Details)
	assert.Empty(t, base.Details)
	assert.Equal(t, base.Status, derived.Status)
	assert.Equal(t, base.Message, derived.Message)
}
