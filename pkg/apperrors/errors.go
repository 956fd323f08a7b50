package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError signals an operation targeting an id that does not exist.
// Deletes never raise it; updates and mark-read always do.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func NewNotFound(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError signals a uniqueness violation, naming the conflicting value.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

func NewConflict(field, value string) error {
	return &ConflictError{Field: field, Value: value}
}

// ValidationError signals malformed input rejected before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// HTTPStatus maps the error taxonomy to a response code. Anything outside the
// taxonomy is an internal error.
func HTTPStatus(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
