// Package storeerr specifically handles DynamoDB service errors.
//
// It parses error codes coming back from the AWS SDK and converts them
// into the API's response shapes, so the rest of the codebase never has
// to care which particular way the store failed.
package storeerr

import (
	"errors"

	"github.com/aws/smithy-go"
)

// Code is a normalized category for store-side failures. It exists for
// logging and tests; clients always receive the same 500 shape regardless
// of category.
type Code string

const (
	// Throttled: the table ran out of provisioned capacity or the account
	// hit a service limit. Retryable by the caller, never retried here.
	Throttled Code = "throttled"

	// AccessDenied: the service identity lacks permission on the table.
	AccessDenied Code = "access_denied"

	// TableNotFound: the configured table does not exist in this
	// region/endpoint. Almost always a deployment/config problem.
	TableNotFound Code = "table_not_found"

	// ConditionFailed: a conditional write was rejected. The update path
	// issues unconditional writes today, so seeing this means someone
	// added a condition without extending this mapping.
	ConditionFailed Code = "condition_failed"

	// Invalid: DynamoDB rejected the request shape itself
	// (bad expression, oversized item, malformed key).
	Invalid Code = "invalid_request"

	// Other: a service error that matched none of the known codes.
	Other Code = "other"
)

// MapCode converts a DynamoDB service error code string into our Code enum.
func MapCode(serviceCode string) Code {
	switch serviceCode {
	case "ProvisionedThroughputExceededException",
		"ThrottlingException",
		"RequestLimitExceeded",
		"LimitExceededException":
		return Throttled

	case "AccessDeniedException",
		"UnrecognizedClientException":
		return AccessDenied

	case "ResourceNotFoundException":
		// DynamoDB's "resource" here is the table, not a record; a missing
		// record is an empty GetItem result, never this error.
		return TableNotFound

	case "ConditionalCheckFailedException":
		return ConditionFailed

	case "ValidationException",
		"ItemCollectionSizeLimitExceededException":
		return Invalid

	default:
		return Other
	}
}

// Error is the normalized store error. It keeps the original SDK error in
// the chain (via Unwrap) so callers can still reach service-specific types.
type Error struct {
	// Code is the normalized category.
	Code Code

	// ServiceCode is the raw DynamoDB error code (e.g.
	// "ProvisionedThroughputExceededException").
	ServiceCode string

	// Message is the store's own message, surfaced to clients as the
	// "details" field of the 500 response.
	Message string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original SDK error for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// Convert normalizes a smithy API error into our Error type.
func Convert(src smithy.APIError) *Error {
	return &Error{
		Code:        MapCode(src.ErrorCode()),
		ServiceCode: src.ErrorCode(),
		Message:     src.ErrorMessage(),
		driverErr:   src,
	}
}

// ErrCode reports the mapped storeerr.Code for a given error.
//
// Behavior:
//   - If err can be unwrapped into *storeerr.Error, return its Code.
//   - If err unwraps into a smithy API error, map its service code.
//   - Otherwise return Other.
func ErrCode(err error) Code {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return MapCode(apiErr.ErrorCode())
	}

	return Other
}
