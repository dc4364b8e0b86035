package storeerr

import (
	"errors"

	"github.com/aws/smithy-go"

	"github.com/deppfellow/resource-api/internal/errs"
)

// HandleError is the conversion funnel from "something below the handler
// failed" to the API's error taxonomy.
//
// Classification:
//   - *errs.HTTPError passes through untouched (already classified).
//   - A smithy API error is a store-side failure: clients get the fixed
//     "Failed to update resource" 500 with the store's message as detail.
//   - Anything else was not anticipated: clients get the generic
//     "Internal server error" 500 with the message as detail, best-effort.
//
// It never returns nil for a non-nil input; every failure maps to exactly
// one response shape.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return errs.NewStoreError(apiErr.ErrorMessage())
	}

	return errs.NewInternalServerError(err.Error())
}
