package model

import (
	"testing"

	apperrors "eventhub/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestDecision(t *testing.T) {
	state, err := ParseRequestDecision("confirmed")
	require.NoError(t, err)
	assert.Equal(t, RequestStateConfirmed, state)

	state, err = ParseRequestDecision("REJECTED")
	require.NoError(t, err)
	assert.Equal(t, RequestStateRejected, state)

	for _, raw := range []string{"PENDING", "CANCELED", "", "maybe"} {
		_, err := ParseRequestDecision(raw)
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction, raw)
	}
}

func TestRequestState_IsActive(t *testing.T) {
	assert.True(t, RequestStatePending.IsActive())
	assert.True(t, RequestStateConfirmed.IsActive())
	assert.True(t, RequestStateRejected.IsActive())
	assert.False(t, RequestStateCanceled.IsActive())
}
