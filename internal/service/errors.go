package service

import (
	"errors"
	"fmt"
)

// Error kinds raised by the service layer. The handler layer translates
// these into HTTP statuses; the services themselves never retry or swallow
// an error.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage unavailable")
)

// Error is the concrete error returned by every failing service operation.
// It names the entity and, where applicable, the offending field so callers
// can report which SKU or name collided. Kind is one of the sentinels above
// and is exposed through errors.Is.
type Error struct {
	Kind   error
	Entity string
	Field  string
	msg    string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func validationErr(entity, field, format string, args ...any) error {
	return &Error{Kind: ErrValidation, Entity: entity, Field: field, msg: fmt.Sprintf(format, args...)}
}

func conflictErr(entity, field, format string, args ...any) error {
	return &Error{Kind: ErrConflict, Entity: entity, Field: field, msg: fmt.Sprintf(format, args...)}
}

func notFoundErr(entity, format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Entity: entity, msg: fmt.Sprintf(format, args...)}
}

func storageErr(entity string, cause error) error {
	return &Error{Kind: ErrStorage, Entity: entity, msg: fmt.Sprintf("%s storage operation failed: %v", entity, cause)}
}
