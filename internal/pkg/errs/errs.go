package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying failures. Each typed error below unwraps to
// one of these, so callers can branch with errors.Is regardless of the
// details carried by the concrete error value.
var (
	ErrValueIsRequired  = errors.New("value is required")
	ErrValueIsInvalid   = errors.New("value is invalid")
	ErrObjectNotFound   = errors.New("object not found")
	ErrConflict         = errors.New("conflict")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAccessForbidden  = errors.New("access forbidden")
)

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError carrying an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError carrying an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named
// parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError carrying an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError indicates that an operation lost to a competing state change,
// such as an adoption order targeting a pet that is no longer available.
type ConflictError struct {
	Message string
	Cause   error
}

// NewConflictError creates a ConflictError with the given detail message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NewConflictErrorWithCause creates a ConflictError carrying an underlying cause.
func NewConflictErrorWithCause(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NotAuthenticatedError indicates a missing, malformed, or expired credential.
type NotAuthenticatedError struct {
	Message string
	Cause   error
}

// NewNotAuthenticatedError creates a NotAuthenticatedError with the given
// detail message.
func NewNotAuthenticatedError(message string) *NotAuthenticatedError {
	return &NotAuthenticatedError{Message: message}
}

// NewNotAuthenticatedErrorWithCause creates a NotAuthenticatedError carrying
// an underlying cause.
func NewNotAuthenticatedErrorWithCause(message string, cause error) *NotAuthenticatedError {
	return &NotAuthenticatedError{Message: message, Cause: cause}
}

func (e *NotAuthenticatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrNotAuthenticated, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthenticated, e.Message)
}

func (e *NotAuthenticatedError) Unwrap() error {
	return ErrNotAuthenticated
}

// AccessForbiddenError indicates an authenticated actor lacks the role the
// operation requires.
type AccessForbiddenError struct {
	Message string
	Cause   error
}

// NewAccessForbiddenError creates an AccessForbiddenError with the given
// detail message.
func NewAccessForbiddenError(message string) *AccessForbiddenError {
	return &AccessForbiddenError{Message: message}
}

// NewAccessForbiddenErrorWithCause creates an AccessForbiddenError carrying
// an underlying cause.
func NewAccessForbiddenErrorWithCause(message string, cause error) *AccessForbiddenError {
	return &AccessForbiddenError{Message: message, Cause: cause}
}

func (e *AccessForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAccessForbidden, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAccessForbidden, e.Message)
}

func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}
