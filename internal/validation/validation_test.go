package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/resource-api/internal/errs"
)

// testPayload binds a JSON body and rejects empty names.
type testPayload struct {
	Name string `json:"name"`
}

func (p *testPayload) Validate() error {
	if p.Name == "" {
		return errs.NewBadRequestError("name is required")
	}
	return nil
}

func newBindContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := &testPayload{}

		err := BindAndValidate(newBindContext(`{"name":"x"}`), payload)

		require.NoError(t, err)
		assert.Equal(t, "x", payload.Name)
	})

	t.Run("malformed body becomes the fixed 400", func(t *testing.T) {
		err := BindAndValidate(newBindContext(`{"name":`), &testPayload{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "Invalid JSON in request body", httpErr.Message)
	})

	t.Run("validation failure surfaces as-is", func(t *testing.T) {
		err := BindAndValidate(newBindContext(`{}`), &testPayload{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "name is required", httpErr.Message)
	})
}
