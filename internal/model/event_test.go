package model

import (
	"errors"
	"testing"
	"time"

	apperrors "eventhub/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_NeedsModeration(t *testing.T) {
	t.Run("Unlimited event never needs moderation", func(t *testing.T) {
		e := &Event{ParticipantLimit: 0, RequestModeration: true}
		assert.False(t, e.NeedsModeration())
	})

	t.Run("Limited event with moderation", func(t *testing.T) {
		e := &Event{ParticipantLimit: 5, RequestModeration: true}
		assert.True(t, e.NeedsModeration())
	})

	t.Run("Limited event without moderation", func(t *testing.T) {
		e := &Event{ParticipantLimit: 5, RequestModeration: false}
		assert.False(t, e.NeedsModeration())
	})
}

func TestEvent_IsLimitReached(t *testing.T) {
	t.Run("Unlimited event is never full", func(t *testing.T) {
		e := &Event{ParticipantLimit: 0, ConfirmedRequests: 1_000_000}
		assert.False(t, e.IsLimitReached(0))
		assert.False(t, e.IsLimitReached(1_000))
	})

	t.Run("Reached exactly at the limit", func(t *testing.T) {
		e := &Event{ParticipantLimit: 3, ConfirmedRequests: 2}
		assert.False(t, e.IsLimitReached(0))
		assert.True(t, e.IsLimitReached(1))
	})

	t.Run("Full event", func(t *testing.T) {
		e := &Event{ParticipantLimit: 3, ConfirmedRequests: 3}
		assert.True(t, e.IsLimitReached(0))
	})
}

func TestEvent_HasCapacityFor(t *testing.T) {
	e := &Event{ParticipantLimit: 5, ConfirmedRequests: 3}
	assert.True(t, e.HasCapacityFor(2))
	assert.False(t, e.HasCapacityFor(3))

	unlimited := &Event{}
	assert.True(t, unlimited.HasCapacityFor(100))
}

func TestEventState_Apply(t *testing.T) {
	tests := []struct {
		name   string
		from   EventState
		action EventStateAction
		want   EventState
	}{
		{"Publish pending", EventStatePending, ActionPublishEvent, EventStatePublished},
		{"Reject pending", EventStatePending, ActionRejectEvent, EventStateCanceled},
		{"Reject canceled", EventStateCanceled, ActionRejectEvent, EventStateCanceled},
		{"Send canceled to review", EventStateCanceled, ActionSendToReview, EventStatePending},
		{"Send pending to review", EventStatePending, ActionSendToReview, EventStatePending},
		{"Cancel review", EventStatePending, ActionCancelReview, EventStateCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Apply(tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Failed - publish canceled", func(t *testing.T) {
		got, err := EventStateCanceled.Apply(ActionPublishEvent)
		assert.True(t, errors.Is(err, apperrors.ErrIllegalAction))
		assert.Equal(t, EventStateCanceled, got)
	})

	t.Run("Failed - published accepts no action", func(t *testing.T) {
		for _, action := range []EventStateAction{ActionPublishEvent, ActionRejectEvent, ActionSendToReview, ActionCancelReview} {
			_, err := EventStatePublished.Apply(action)
			assert.ErrorIs(t, err, apperrors.ErrIllegalAction, string(action))
		}
	})

	t.Run("Failed - unknown action", func(t *testing.T) {
		_, err := EventStatePending.Apply(EventStateAction("ARCHIVE"))
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
	})
}

func TestParseStateActions(t *testing.T) {
	t.Run("Admin actions are case-insensitive", func(t *testing.T) {
		action, err := ParseAdminStateAction(" publish_event ")
		require.NoError(t, err)
		assert.Equal(t, ActionPublishEvent, action)
	})

	t.Run("Failed - user action on admin endpoint", func(t *testing.T) {
		_, err := ParseAdminStateAction("SEND_TO_REVIEW")
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
	})

	t.Run("Failed - admin action on user endpoint", func(t *testing.T) {
		_, err := ParseUserStateAction("PUBLISH_EVENT")
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
	})
}

func TestParseEventSort(t *testing.T) {
	sort, err := ParseEventSort("views")
	require.NoError(t, err)
	assert.Equal(t, EventSortViews, sort)

	_, err = ParseEventSort("POPULARITY")
	assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
}

func TestUpdateEventFields_ApplyTo(t *testing.T) {
	title := "A brand new title"
	limit := int64(7)
	date := DateTime(time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC))
	e := &Event{Title: "old", ParticipantLimit: 1, Annotation: "kept"}

	fields := UpdateEventFields{Title: &title, ParticipantLimit: &limit, EventDate: &date}
	fields.ApplyTo(e)

	assert.Equal(t, title, e.Title)
	assert.Equal(t, int64(7), e.ParticipantLimit)
	assert.Equal(t, date.Time(), e.EventDate)
	assert.Equal(t, "kept", e.Annotation)
}

func TestToEventFull(t *testing.T) {
	published := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	e := &Event{
		ID:          9,
		EventDate:   time.Date(2030, 2, 1, 18, 30, 0, 0, time.UTC),
		PublishedOn: &published,
		State:       EventStatePublished,
		Views:       4,
	}

	full := ToEventFull(e)
	assert.Equal(t, "2030-02-01 18:30:00", full.EventDate)
	require.NotNil(t, full.PublishedOn)
	assert.Equal(t, "2030-01-01 10:00:00", *full.PublishedOn)
	assert.Equal(t, "PUBLISHED", full.State)
	assert.Equal(t, int64(4), full.Views)

	assert.Nil(t, ToEventFull(&Event{}).PublishedOn)
}
