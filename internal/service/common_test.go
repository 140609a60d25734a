package service

import (
	"context"
	"time"

	"eventhub/internal/model"
	"eventhub/pkg/clock"

	"github.com/jackc/pgx/v5"
)

// inlineTx runs the callback without a database. Repository mocks ignore the nil tx.
type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

var testNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func testClock() *clock.FixedClock {
	return clock.Fixed(testNow)
}

func testUser(id int64) *model.User {
	return &model.User{ID: id, Name: "user", Email: "user@example.com", Profile: model.UserProfilePublic}
}

func publishedEvent(id, initiatorID int64, limit, confirmed int64, moderation bool) *model.Event {
	published := testNow.Add(-48 * time.Hour)
	return &model.Event{
		ID:                id,
		Initiator:         model.UserShort{ID: initiatorID, Name: "initiator"},
		ParticipantLimit:  limit,
		ConfirmedRequests: confirmed,
		RequestModeration: moderation,
		State:             model.EventStatePublished,
		PublishedOn:       &published,
		EventDate:         testNow.Add(72 * time.Hour),
	}
}

func pendingRequests(eventID int64, ids ...int64) []*model.Request {
	out := make([]*model.Request, 0, len(ids))
	for _, id := range ids {
		out = append(out, &model.Request{ID: id, EventID: eventID, RequesterID: 100 + id, State: model.RequestStatePending})
	}
	return out
}

func withState(requests []*model.Request, state model.RequestState) []*model.Request {
	out := make([]*model.Request, 0, len(requests))
	for _, r := range requests {
		cp := *r
		cp.State = state
		out = append(out, &cp)
	}
	return out
}
