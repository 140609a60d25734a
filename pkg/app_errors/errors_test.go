package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"not found", NotFound("Event with id=%d was not found", 7), ErrNotFound},
		{"illegal action", IllegalAction("Event id=%d is not published", 7), ErrIllegalAction},
		{"invalid range", InvalidRange("start after end"), ErrInvalidRange},
		{"validation", Validation("Field: title. Error: must not be blank."), ErrValidation},
		{"conflict", Conflict("duplicate key"), ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.ErrorIs(t, fmt.Errorf("create request: %w", tt.err), tt.kind)
		})
	}
}

func TestMessage(t *testing.T) {
	err := NotFound("Event with id=%d was not found", 7)
	assert.Equal(t, "Event with id=7 was not found", Message(err))
	assert.Equal(t, "Event with id=7 was not found", Message(fmt.Errorf("wrapped: %w", err)))

	plain := errors.New("connection reset")
	assert.Equal(t, "connection reset", Message(plain))
}
