package errs

import (
	"fmt"
	"net/http"
)

// Messages for the two 500 shapes. The 400/404 messages vary per failure,
// these two are fixed regardless of what went wrong underneath.
const (
	storeFailureMessage = "Failed to update resource"
	internalMessage     = "Internal server error"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Used for the "you sent garbage" cases: missing path parameter,
// malformed JSON body, empty body. The message is sent to the client
// as-is, so keep it actionable.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError for a resource id.
//
// The message format is part of the API contract:
//
//	Resource with id 'r2' not found
func NewNotFoundError(resourceID string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("Resource with id '%s' not found", resourceID),
	}
}

// NewStoreError creates a 500 HTTPError for a failed store operation.
//
// The client-facing message is fixed; whatever the store reported goes
// into Details so callers can still see the underlying cause.
func NewStoreError(details string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: storeFailureMessage,
		Details: details,
	}
}

// NewInternalServerError creates a 500 HTTPError for unanticipated failures.
//
// This is the outermost safety net: panics and programming defects end up
// here, with the detail message included best-effort.
func NewInternalServerError(details string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: internalMessage,
		Details: details,
	}
}
