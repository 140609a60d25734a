//go:build integration

package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"eventhub/internal/database"
	"eventhub/internal/model"
	"eventhub/internal/testutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	pool, cleanup, err := testutil.StartPostgres(ctx)
	if err != nil {
		log.Fatalf("Failed to start test database: %v", err)
	}
	testDB = pool

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func setupTest(t *testing.T) context.Context {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, testutil.Truncate(ctx, testDB))
	return ctx
}

var fixtureTime = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func createTestUser(t *testing.T, name string) *model.User {
	t.Helper()
	user, err := NewUserRepository(testDB).Create(context.Background(), &model.User{
		Name:    name,
		Email:   name + "@example.com",
		Profile: model.UserProfilePublic,
	})
	require.NoError(t, err)
	return user
}

func createTestCategory(t *testing.T, name string) *model.Category {
	t.Helper()
	category, err := NewCategoryRepository(testDB).Create(context.Background(), name)
	require.NoError(t, err)
	return category
}

type eventOption func(*model.Event)

func withLimit(limit int64) eventOption {
	return func(e *model.Event) { e.ParticipantLimit = limit }
}

func withDate(d time.Time) eventOption {
	return func(e *model.Event) { e.EventDate = d }
}

func withText(annotation string) eventOption {
	return func(e *model.Event) { e.Annotation = annotation }
}

func paid() eventOption {
	return func(e *model.Event) { e.Paid = true }
}

func unpublished() eventOption {
	return func(e *model.Event) {
		e.State = model.EventStatePending
		e.PublishedOn = nil
	}
}

func createTestEvent(t *testing.T, initiator *model.User, category *model.Category, opts ...eventOption) *model.Event {
	t.Helper()
	published := fixtureTime.Add(-24 * time.Hour)
	event := &model.Event{
		Annotation:        "An evening of board games for everyone",
		Category:          *category,
		CreatedOn:         fixtureTime.Add(-48 * time.Hour),
		Description:       "Bring your favourite board game and friends along",
		EventDate:         fixtureTime.Add(72 * time.Hour),
		Initiator:         model.UserShort{ID: initiator.ID, Name: initiator.Name},
		Location:          model.Location{Lat: 55.75, Lon: 37.61},
		RequestModeration: true,
		State:             model.EventStatePublished,
		PublishedOn:       &published,
		Title:             "Board games night",
	}
	for _, opt := range opts {
		opt(event)
	}

	created, err := NewEventRepository(testDB).Create(context.Background(), event)
	require.NoError(t, err)
	return created
}

func createTestRequest(t *testing.T, eventID, requesterID int64, state model.RequestState) *model.Request {
	t.Helper()
	var created *model.Request
	err := database.NewTransactor(testDB).RunInTx(context.Background(), func(tx pgx.Tx) error {
		var err error
		created, err = NewRequestRepository(testDB).Create(context.Background(), tx, &model.Request{
			Created:     fixtureTime,
			EventID:     eventID,
			RequesterID: requesterID,
			State:       state,
		})
		return err
	})
	require.NoError(t, err)
	return created
}

func updateEvent(t *testing.T, repo EventRepository, event *model.Event) (*model.Event, error) {
	t.Helper()
	var updated *model.Event
	err := database.NewTransactor(testDB).RunInTx(context.Background(), func(tx pgx.Tx) error {
		var err error
		updated, err = repo.Update(context.Background(), tx, event)
		return err
	})
	return updated, err
}
