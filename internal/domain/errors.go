package domain

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError carries the ordered field violations of an invalid entity.
// Storage is never touched when this is returned.
type ValidationError struct {
	Violations []Violation
}

func (e ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// ErrValidation is the sentinel error for structurally invalid entities.
var ErrValidation = ValidationError{}

// DuplicateKeyError signals a uniqueness conflict on a natural key.
type DuplicateKeyError struct {
	Key string
}

func (e DuplicateKeyError) Error() string {
	if e.Key == "" {
		return "duplicate key"
	}
	return fmt.Sprintf("duplicate key: %s", e.Key)
}

func (e DuplicateKeyError) Is(target error) bool {
	_, ok := target.(DuplicateKeyError)
	if ok {
		return true
	}
	_, ok = target.(*DuplicateKeyError)
	return ok
}

// ErrDuplicateKey is the sentinel error for uniqueness conflicts.
var ErrDuplicateKey = DuplicateKeyError{}

// StorageError wraps a transient storage failure. Callers may retry; it is
// never swallowed by the core.
type StorageError struct {
	Err error
}

func (e StorageError) Error() string {
	if e.Err == nil {
		return "storage unavailable"
	}
	return fmt.Sprintf("storage unavailable: %v", e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }

func (e StorageError) Is(target error) bool {
	_, ok := target.(StorageError)
	if ok {
		return true
	}
	_, ok = target.(*StorageError)
	return ok
}

// ErrStorageUnavailable is the sentinel error for transient storage failures.
var ErrStorageUnavailable = StorageError{}

// ErrInvalidPassword signals a wrong or empty password for an existing user.
// It is deliberately distinct from ErrNotFound: existence is checked first.
var ErrInvalidPassword = errors.New("invalid password")
