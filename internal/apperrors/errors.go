// Package apperrors provides typed errors that carry an HTTP status mapping.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an error for status mapping and response formatting.
type ErrorType string

const (
	// TypeValidation indicates invalid input (HTTP 400)
	TypeValidation ErrorType = "validation"
	// TypeNotFound indicates the requested movie does not exist upstream (HTTP 404)
	TypeNotFound ErrorType = "not_found"
	// TypeUpstreamUnavailable indicates the movie database could not be reached or
	// answered with something other than a JSON document (HTTP 503)
	TypeUpstreamUnavailable ErrorType = "upstream_unavailable"
	// TypeInternal indicates a server-side error (HTTP 500)
	TypeInternal ErrorType = "internal"
)

// Error is a structured error with type, message and optional context fields.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status code that matches the error type.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WithField attaches a context value (chainable).
func (e *Error) WithField(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func ValidationError(message string) *Error {
	return &Error{Type: TypeValidation, Message: message}
}

func NotFoundError(message string, cause error) *Error {
	return &Error{Type: TypeNotFound, Message: message, Cause: cause}
}

func UpstreamUnavailableError(message string, cause error) *Error {
	return &Error{Type: TypeUpstreamUnavailable, Message: message, Cause: cause}
}

func InternalError(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause}
}

// Is reports whether err is a structured error of the given type.
func Is(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// AsStructuredError returns err unchanged if it is already an *Error,
// otherwise wraps it as an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError("internal server error", err)
}
