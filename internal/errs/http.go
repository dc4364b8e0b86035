package errs

// HTTPError is the single error type API responses are built from.
//
// It implements the `error` interface via Error() and is designed to be
// serialized directly to JSON. The wire shape is intentionally small:
//
//	{"error": "<message>"}
//	{"error": "<message>", "details": "<detail>"}
//
// Fields:
//   - Status: HTTP status code. Never serialized; the response writer uses it.
//   - Message: human-readable error message, serialized as "error".
//   - Details: optional underlying detail (e.g. the store's own message).
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It only checks whether the target is the same *type* (*HTTPError);
// it does not compare Status or Message.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithDetails returns a *copy* of this HTTPError with Details replaced.
//
// Useful when a base error template needs per-call detail without
// mutating the original.
func (e *HTTPError) WithDetails(details string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Message: e.Message,
		Details: details,
	}
}
