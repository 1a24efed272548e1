package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrValueIsRequired  = errors.New("value is required")
	ErrValueIsInvalid   = errors.New("value is invalid")
	ErrObjectNotFound   = errors.New("object not found")
	ErrConflict         = errors.New("revision conflict")
	ErrUnavailable      = errors.New("store unavailable")
	ErrValidationFailed = errors.New("validation failed")
)

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
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

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
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

// ObjectNotFoundError indicates that a document, view, or collection is missing.
// Repositories treat it as "provision on demand" for views, as an empty result
// for listings, and as a hard error for direct get-by-key.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given object kind and key.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
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

// ConflictError indicates a write was rejected because the supplied revision
// token is stale, or because the document key already exists on create.
// The coordinator retries such a write once after re-fetching before
// surfacing the conflict to the caller.
type ConflictError struct {
	Collection string
	ID         string
	Rev        string
	Cause      error
}

// NewConflictError creates a ConflictError for the given document.
func NewConflictError(collection, id, rev string) *ConflictError {
	return &ConflictError{Collection: collection, ID: id, Rev: rev}
}

// NewConflictErrorWithCause creates a ConflictError wrapping a cause.
func NewConflictErrorWithCause(collection, id, rev string, cause error) *ConflictError {
	return &ConflictError{Collection: collection, ID: id, Rev: rev, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s/%s rev %q (cause: %s)", ErrConflict, e.Collection, e.ID, e.Rev, e.Cause)
	}
	return fmt.Sprintf("%s: %s/%s rev %q", ErrConflict, e.Collection, e.ID, e.Rev)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// UnavailableError indicates the document store could not be reached or did
// not answer within the request timeout. It is never recovered automatically;
// listing queries may fall back to an empty result under the configured
// availability policy, write paths always surface it.
type UnavailableError struct {
	Operation string
	Cause     error
}

// NewUnavailableError creates an UnavailableError for the given operation.
func NewUnavailableError(operation string) *UnavailableError {
	return &UnavailableError{Operation: operation}
}

// NewUnavailableErrorWithCause creates an UnavailableError wrapping a cause.
func NewUnavailableErrorWithCause(operation string, cause error) *UnavailableError {
	return &UnavailableError{Operation: operation, Cause: cause}
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnavailable, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnavailable, e.Operation)
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// ValidationError indicates a business-rule rejection made before any write,
// for example a customer phone number already used by a different customer.
type ValidationError struct {
	ParamName string
	Reason    string
	Cause     error
}

// NewValidationError creates a ValidationError for the given parameter and reason.
func NewValidationError(paramName, reason string) *ValidationError {
	return &ValidationError{ParamName: paramName, Reason: reason}
}

// NewValidationErrorWithCause creates a ValidationError wrapping a cause.
func NewValidationErrorWithCause(paramName, reason string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Reason: reason, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %s)", ErrValidationFailed, e.ParamName, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidationFailed, e.ParamName, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
