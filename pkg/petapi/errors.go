package petapi

import (
	"errors"
	"fmt"
	"time"
)

// CodeUnknown marks failures that carry no HTTP status: connect errors, timeouts,
// undecodable bodies and anything else the transport could not classify.
const CodeUnknown = -1

const (
	unknownMessage  = "network or unknown error"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// now is swapped in tests.
var now = time.Now

// Error is the single error shape returned by every endpoint.
type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("petapi: %s (code %d)", e.Message, e.Code)
}

// Unwrap exposes the underlying transport or decode failure, if any.
func (e *Error) Unwrap() error { return e.cause }

func newError(code int, message string, cause error) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Timestamp: now().UTC().Format(timestampLayout),
		cause:     cause,
	}
}

func httpError(status int) *Error {
	return newError(status, fmt.Sprintf("HTTP Error: %d", status), nil)
}

func unknownError(cause error) *Error {
	return newError(CodeUnknown, unknownMessage, cause)
}

// asError returns err unchanged when it already is an *Error and classifies it as
// CodeUnknown otherwise.
func asError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return unknownError(err)
}

// IsHTTPStatus reports whether err is an *Error carrying the given code.
func IsHTTPStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}
