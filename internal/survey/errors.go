package survey

import "errors"

type ErrorCode string

const (
	ErrorSchema    ErrorCode = "schema"
	ErrorEncoding  ErrorCode = "encoding"
	ErrorEmptyData ErrorCode = "empty_data"
	ErrorNoLikert  ErrorCode = "no_likert_data"
	ErrorTooLarge  ErrorCode = "too_large"
)

// ProcessingError is the only error type the core returns to callers.
// Recoverable row/cell problems never surface here; they become warnings
// or missing cells instead.
type ProcessingError struct {
	Code    ErrorCode
	Message string
}

func (e *ProcessingError) Error() string { return e.Message }

func NewSchemaError(msg string) error   { return &ProcessingError{Code: ErrorSchema, Message: msg} }
func NewEncodingError(msg string) error { return &ProcessingError{Code: ErrorEncoding, Message: msg} }
func NewEmptyDataError(msg string) error {
	return &ProcessingError{Code: ErrorEmptyData, Message: msg}
}
func NewNoLikertError(msg string) error { return &ProcessingError{Code: ErrorNoLikert, Message: msg} }
func NewTooLargeError(msg string) error { return &ProcessingError{Code: ErrorTooLarge, Message: msg} }

func AsProcessingError(err error) (*ProcessingError, bool) {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
