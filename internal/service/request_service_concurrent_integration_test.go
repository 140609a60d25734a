//go:build integration

package service_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"eventhub/internal/database"
	"eventhub/internal/model"
	"eventhub/internal/repository"
	"eventhub/internal/service"
	"eventhub/internal/testutil"
	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, cleanup, err := testutil.StartPostgres(context.Background())
	if err != nil {
		log.Fatalf("Failed to start test database: %v", err)
	}
	testDB = pool

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func seedUsers(t *testing.T, n int) []*model.User {
	t.Helper()
	repo := repository.NewUserRepository(testDB)
	users := make([]*model.User, n)
	for i := range users {
		u, err := repo.Create(context.Background(), &model.User{
			Name:    fmt.Sprintf("user%d", i),
			Email:   fmt.Sprintf("user%d@example.com", i),
			Profile: model.UserProfilePublic,
		})
		require.NoError(t, err)
		users[i] = u
	}
	return users
}

func seedEvent(t *testing.T, initiator *model.User, limit int64, moderation bool, state model.EventState) *model.Event {
	t.Helper()
	category, err := repository.NewCategoryRepository(testDB).Create(context.Background(), "Festivals "+uuid.NewString()[:8])
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	event := &model.Event{
		Annotation:        "Open air festival with three stages",
		Category:          *category,
		CreatedOn:         now.Add(-time.Hour),
		Description:       "Three stages of live music running until late",
		EventDate:         now.Add(48 * time.Hour),
		Initiator:         model.UserShort{ID: initiator.ID, Name: initiator.Name},
		ParticipantLimit:  limit,
		RequestModeration: moderation,
		State:             state,
		Title:             "Summer festival",
	}
	if state == model.EventStatePublished {
		event.PublishedOn = &now
	}
	created, err := repository.NewEventRepository(testDB).Create(context.Background(), event)
	require.NoError(t, err)
	return created
}

func seedOpenEvent(t *testing.T, initiator *model.User, limit int64) *model.Event {
	return seedEvent(t, initiator, limit, false, model.EventStatePublished)
}

func newRequestService() service.RequestService {
	return service.NewRequestService(
		database.NewTransactor(testDB),
		repository.NewRequestRepository(testDB),
		repository.NewEventRepository(testDB),
		repository.NewUserRepository(testDB),
		clock.System(),
		nil,
	)
}

func newEventService() service.EventService {
	return service.NewEventService(
		database.NewTransactor(testDB),
		repository.NewEventRepository(testDB),
		repository.NewUserRepository(testDB),
		repository.NewCategoryRepository(testDB),
		repository.NewSubscriptionRepository(testDB),
		nil,
		nil,
		clock.System(),
		nil,
	)
}

// Many users race for the last seats of an event that confirms on arrival.
func TestRequestService_CreateRequest_NoOverbooking(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testutil.Truncate(ctx, testDB))

	const (
		concurrentUsers = 40
		limit           = 5
	)

	users := seedUsers(t, concurrentUsers+1)
	event := seedOpenEvent(t, users[0], limit)
	requestService := newRequestService()

	var (
		wg            sync.WaitGroup
		mu            sync.Mutex
		confirmed     int
		limitRejected int
	)
	for _, u := range users[1:] {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			req, err := requestService.CreateRequest(ctx, userID, event.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil && req.State == model.RequestStateConfirmed:
				confirmed++
			case errors.Is(err, apperrors.ErrIllegalAction):
				limitRejected++
			default:
				t.Errorf("unexpected outcome for user %d: %v", userID, err)
			}
		}(u.ID)
	}
	wg.Wait()

	t.Logf("%d users competing for %d seats - confirmed: %d, rejected: %d", concurrentUsers, limit, confirmed, limitRejected)

	stored, err := repository.NewEventRepository(testDB).FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, limit, confirmed)
	assert.Equal(t, concurrentUsers-limit, limitRejected)
	assert.Equal(t, int64(limit), stored.ConfirmedRequests)
}

// One user hammering the same event ends up with a single active request.
func TestRequestService_CreateRequest_SingleActivePerUser(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testutil.Truncate(ctx, testDB))

	users := seedUsers(t, 2)
	event := seedOpenEvent(t, users[0], 0)
	requestService := newRequestService()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := requestService.CreateRequest(ctx, users[1].ID, event.ID); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)

	requests, err := requestService.GetUserRequests(ctx, users[1].ID)
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

// Requesters cancel while the initiator confirms the whole batch. A cancel
// must never be overwritten by the confirmation.
func TestRequestService_CancelRequest_RacesConfirm(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testutil.Truncate(ctx, testDB))

	const requesters = 20

	users := seedUsers(t, requesters+1)
	initiator := users[0]
	event := seedEvent(t, initiator, requesters, true, model.EventStatePublished)
	requestService := newRequestService()

	requests := make([]*model.Request, 0, requesters)
	ids := make([]int64, 0, requesters)
	for _, u := range users[1:] {
		req, err := requestService.CreateRequest(ctx, u.ID, event.ID)
		require.NoError(t, err)
		require.Equal(t, model.RequestStatePending, req.State)
		requests = append(requests, req)
		ids = append(ids, req.ID)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := requestService.ChangeRequestStatus(ctx, initiator.ID, event.ID, model.RequestStatusUpdate{
			RequestIDs: ids,
			Status:     "CONFIRMED",
		})
		if err != nil && !errors.Is(err, apperrors.ErrIllegalAction) {
			t.Errorf("unexpected confirm error: %v", err)
		}
	}()
	for _, req := range requests {
		wg.Add(1)
		go func(r *model.Request) {
			defer wg.Done()
			if _, err := requestService.CancelRequest(ctx, r.RequesterID, r.ID); err != nil {
				t.Errorf("cancel of request %d failed: %v", r.ID, err)
			}
		}(req)
	}
	wg.Wait()

	participants, err := requestService.GetEventParticipants(ctx, initiator.ID, event.ID)
	require.NoError(t, err)
	for _, p := range participants {
		assert.Equal(t, model.RequestStateCanceled, p.State, "request %d", p.ID)
	}

	stored, err := repository.NewEventRepository(testDB).FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.ConfirmedRequests)
}

// An initiator edit racing an admin publish must not undo the publication.
func TestEventService_UpdateEventUser_RacesPublish(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testutil.Truncate(ctx, testDB))

	users := seedUsers(t, 1)
	eventService := newEventService()

	for i := 0; i < 10; i++ {
		event := seedEvent(t, users[0], 0, true, model.EventStatePending)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			title := fmt.Sprintf("Summer festival %d", i)
			_, err := eventService.UpdateEventUser(ctx, users[0].ID, event.ID, model.UpdateEventUserRequest{
				UpdateEventFields: model.UpdateEventFields{Title: &title},
			})
			if err != nil && !errors.Is(err, apperrors.ErrIllegalAction) {
				t.Errorf("unexpected edit error: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			publish := "PUBLISH_EVENT"
			_, err := eventService.UpdateEventAdmin(ctx, event.ID, model.UpdateEventAdminRequest{StateAction: &publish})
			if err != nil && !errors.Is(err, apperrors.ErrIllegalAction) {
				t.Errorf("unexpected publish error: %v", err)
			}
		}()
		wg.Wait()

		stored, err := repository.NewEventRepository(testDB).FindByID(ctx, event.ID)
		require.NoError(t, err)
		require.Equal(t, model.EventStatePublished, stored.State)
		require.NotNil(t, stored.PublishedOn)
	}
}
