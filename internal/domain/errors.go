package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Loader errors
	ErrMsgUnknownError  = "Unknown error occurred"
	ErrMsgHTTPStatusFmt = "HTTP error! status: %d"
	ErrMsgTransport     = "transport failure"
	ErrMsgDecode        = "decode failure"

	// Input errors
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgInvalidFilter = "invalid filter category"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrHTTPStatus    = errors.New("http status error")
	ErrTransport     = errors.New(ErrMsgTransport)
	ErrDecode        = errors.New(ErrMsgDecode)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrInvalidFilter = errors.New(ErrMsgInvalidFilter)
)

// HTTPStatusError reports a response whose status is outside the 2xx range.
// Its message is the one surfaced to consumers verbatim.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf(ErrMsgHTTPStatusFmt, e.StatusCode)
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrHTTPStatus
}

// LoadError classifies a load failure while keeping the underlying message.
// errors.Is matches both Kind (ErrTransport, ErrDecode) and the wrapped error.
type LoadError struct {
	Kind error
	Err  error
}

// NewLoadError wraps err with a failure kind
func NewLoadError(kind, err error) *LoadError {
	return &LoadError{Kind: kind, Err: err}
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ErrorMessage converts any failure into the string stored in LoaderState.Error
func ErrorMessage(err error) string {
	if err == nil {
		return ErrMsgUnknownError
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return ErrMsgUnknownError
}
