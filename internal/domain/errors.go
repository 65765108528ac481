package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrRemote           = errors.New("remote store error")
	ErrMalformedData    = errors.New("malformed stored data")
	ErrConsistencyFatal = errors.New("consistency failure requires manual repair")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// RemoteError describes a non-2xx (and non-404) response or a transport
// failure from the collection store. Status is zero for transport errors.
type RemoteError struct {
	Op     string
	Status int
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: remote store returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return ErrRemote }

// MalformedDataError is raised when a stored item cannot be decoded into
// its domain entity. It names the offending entity kind, field, and item
// id so the record can be located.
type MalformedDataError struct {
	Entity string
	Field  string
	ItemID string
	Err    error
}

func (e *MalformedDataError) Error() string {
	msg := fmt.Sprintf("%s %s: malformed field %q", e.Entity, e.ItemID, e.Field)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedDataError) Unwrap() error { return ErrMalformedData }

// ConsistencyFatalError is raised when the secondary write of a
// multi-entity operation failed AND the compensating rollback of the
// primary write also failed, leaving an orphaned record behind.
// Collection and ItemID locate the orphan for out-of-band cleanup.
type ConsistencyFatalError struct {
	Operation     string
	Collection    string
	ItemID        string
	Cause         error
	RollbackCause error
}

func (e *ConsistencyFatalError) Error() string {
	return fmt.Sprintf("%s: rollback of item %q in collection %q failed after: %v (rollback error: %v)",
		e.Operation, e.ItemID, e.Collection, e.Cause, e.RollbackCause)
}

func (e *ConsistencyFatalError) Unwrap() error { return ErrConsistencyFatal }
