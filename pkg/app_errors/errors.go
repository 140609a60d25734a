package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match them with errors.Is; the message carries the detail.
var (
	ErrNotFound         = errors.New("the required object was not found")
	ErrIllegalAction    = errors.New("for the requested operation the conditions are not met")
	ErrInvalidRange     = errors.New("start time is after end time")
	ErrValidation       = errors.New("incorrectly made request")
	ErrConflict         = errors.New("integrity constraint has been violated")
	ErrStatsUnavailable = errors.New("stats service unavailable")
)

func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

func IllegalAction(format string, args ...any) error {
	return wrap(ErrIllegalAction, format, args...)
}

func InvalidRange(format string, args ...any) error {
	return wrap(ErrInvalidRange, format, args...)
}

func Validation(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

func Conflict(format string, args ...any) error {
	return wrap(ErrConflict, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// kindError keeps the human message separate from the kind so handlers can
// render both without string surgery.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Message returns the detail text of err, falling back to err.Error().
func Message(err error) string {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.msg
	}
	return err.Error()
}

