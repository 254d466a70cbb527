package errors

import "net/http"

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindBadRequest   ErrorKind = "bad_request"
	KindUnauthorized ErrorKind = "unauthorized"
	KindConflict     ErrorKind = "conflict"
	KindNotFound     ErrorKind = "not_found"
	KindInternal     ErrorKind = "internal"
)

// APIError is the structured error returned by every endpoint. The wire
// format is the single-field envelope {"error": "..."} that browser
// clients consume; the kind only drives the HTTP status.
type APIError struct {
	Kind    ErrorKind `json:"-"`
	Message string    `json:"error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		// Duplicate usernames are reported as 400, matching the
		// signup contract the frontend depends on.
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: message}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *APIError {
	return &APIError{Kind: KindUnauthorized, Message: message}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *APIError {
	return &APIError{Kind: KindConflict, Message: message}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) *APIError {
	return &APIError{Kind: KindNotFound, Message: message}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{Kind: KindInternal, Message: message}
}
