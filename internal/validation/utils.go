package validation

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/resource-api/internal/errs"
)

// invalidBodyMessage is what clients see for any body Echo could not bind:
// malformed JSON, a non-object body, or a recognized field of the wrong
// type. The binder's own messages leak encoder internals, so they are
// replaced wholesale.
const invalidBodyMessage = "Invalid JSON in request body"

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with `param:"..."` / `json:"..."` tags.
//   - Implement Validate() error returning *errs.HTTPError on bad input.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from path parameters
//     and the request body.
//  2. payload.Validate() applies the payload's own rules.
//
// Both failure modes come back as *errs.HTTPError (400), so the global
// error handler can serialize them directly.
//
// NOTE: c.Bind expects a pointer to a struct; payload must be a pointer
// type or binding will not populate anything.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(invalidBodyMessage)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	return nil
}
