package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy of the booking engine. Every business error returned by
// repositories, services and use cases wraps exactly one of these, so the
// transport layer can map it to a status code with errors.Is.
var (
	// ErrNotFound entity is absent or filtered out (inactive, non-public)
	ErrNotFound = errors.New("not found")

	// ErrUnavailable slot is full, disabled or in the past
	ErrUnavailable = errors.New("unavailable")

	// ErrConflict slot and package do not match
	ErrConflict = errors.New("conflict")

	// ErrInvalidRequest duration or field constraint violated
	ErrInvalidRequest = errors.New("invalid request")

	// ErrForbidden identity mismatch on self-service access
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState illegal status transition
	ErrInvalidState = errors.New("invalid state")
)

// Kind returns the taxonomy name of err, or "internal" when err wraps none of the sentinels.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	default:
		return "internal"
	}
}

// kindError is a named business error that belongs to a taxonomy kind.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func wrapKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// NewError creates a sentinel error with its own message that matches kind via errors.Is.
// Packages use it to declare their specific errors:
//
//	ErrSlotNotAvailable = domain.NewError("create_booking: slot not available", domain.ErrUnavailable)
func NewError(msg string, kind error) error {
	return wrapKind(msg, kind)
}

// DurationBound names the violated duration limit.
type DurationBound string

const (
	BoundMinimum DurationBound = "minimum"
	BoundMaximum DurationBound = "maximum"
)

// DurationError is returned when a requested custom duration is outside the package bounds.
type DurationError struct {
	Bound DurationBound
	Limit int
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("%s duration is %d minutes", e.Bound, e.Limit)
}

func (e *DurationError) Unwrap() error {
	return ErrInvalidRequest
}
