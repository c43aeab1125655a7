package model

import (
	"errors"
	"net/http"
)

// ErrNotFound is returned by stores when no row matches the query
// predicate. For tasks the predicate includes the owner, so a row
// owned by someone else is indistinguishable from a missing one.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned by stores on a unique constraint violation.
var ErrDuplicate = errors.New("duplicate")

// APIError is an error with a stable external status and message.
// Anything that is not an APIError is reported to callers as a
// generic internal error; the cause stays in the server logs.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Error codes returned in the response body.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeDuplicateEmail     = "EMAIL_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeTaskNotFound       = "TASK_NOT_FOUND"
)

// NewValidationError reports malformed or missing input.
func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

// NewWeakPasswordError reports a password below the minimum length.
func NewWeakPasswordError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeWeakPassword, Message: "password must be at least 6 characters"}
}

// NewDuplicateEmailError reports an already registered email.
func NewDuplicateEmailError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeDuplicateEmail, Message: "email is already in use"}
}

// NewInvalidCredentialsError reports a failed login. The same error
// is used for an unknown email and a wrong password so callers
// cannot probe which accounts exist.
func NewInvalidCredentialsError() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: CodeInvalidCredentials, Message: "invalid email or password"}
}

// NewUnauthenticatedError reports a missing, malformed or expired
// session token. All failure modes collapse into this one error.
func NewUnauthenticatedError() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: CodeUnauthenticated, Message: "not authenticated"}
}

// NewTaskNotFoundError reports a task that does not exist for the
// requesting user. A task owned by another user produces the same
// error.
func NewTaskNotFoundError() *APIError {
	return &APIError{Status: http.StatusNotFound, Code: CodeTaskNotFound, Message: "task not found"}
}
