//go:build integration

package repository

import (
	"testing"

	"eventhub/internal/database"
	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRepository_ActiveRequestUniqueness(t *testing.T) {
	ctx := setupTest(t)
	repo := NewRequestRepository(testDB)
	initiator := createTestUser(t, "initiator")
	requester := createTestUser(t, "requester")
	event := createTestEvent(t, initiator, createTestCategory(t, "Games"))

	first := createTestRequest(t, event.ID, requester.ID, model.RequestStatePending)

	err := database.NewTransactor(testDB).RunInTx(ctx, func(tx pgx.Tx) error {
		exists, err := repo.ExistsActive(ctx, tx, event.ID, requester.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = repo.Create(ctx, tx, &model.Request{Created: fixtureTime, EventID: event.ID, RequesterID: requester.ID, State: model.RequestStatePending})
		return err
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	err = database.NewTransactor(testDB).RunInTx(ctx, func(tx pgx.Tx) error {
		_, err := repo.UpdateState(ctx, tx, first.ID, model.RequestStateCanceled)
		return err
	})
	require.NoError(t, err)

	// a canceled request frees the slot
	second := createTestRequest(t, event.ID, requester.ID, model.RequestStatePending)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRequestRepository_ConfirmAndCascade(t *testing.T) {
	ctx := setupTest(t)
	repo := NewRequestRepository(testDB)
	initiator := createTestUser(t, "initiator")
	category := createTestCategory(t, "Games")
	event := createTestEvent(t, initiator, category, withLimit(2))
	otherEvent := createTestEvent(t, initiator, category, withLimit(2))

	var ids []int64
	for _, name := range []string{"a", "b", "c"} {
		user := createTestUser(t, name)
		ids = append(ids, createTestRequest(t, event.ID, user.ID, model.RequestStatePending).ID)
	}
	bystander := createTestRequest(t, otherEvent.ID, createTestUser(t, "d").ID, model.RequestStatePending)

	err := database.NewTransactor(testDB).RunInTx(ctx, func(tx pgx.Tx) error {
		locked, err := NewEventRepository(testDB).FindByIDWithLock(ctx, tx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), locked.ConfirmedRequests)

		pending, err := repo.CountByIDsAndState(ctx, tx, event.ID, ids[:2], model.RequestStatePending)
		require.NoError(t, err)
		assert.Equal(t, 2, pending)

		confirmed, err := repo.UpdateStateByIDs(ctx, tx, event.ID, ids[:2], model.RequestStatePending, model.RequestStateConfirmed)
		require.NoError(t, err)
		assert.Len(t, confirmed, 2)

		count, err := repo.CountByEventAndState(ctx, tx, event.ID, model.RequestStateConfirmed)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		rejected, err := repo.UpdateStateByEvent(ctx, tx, event.ID, model.RequestStatePending, model.RequestStateRejected)
		require.NoError(t, err)
		require.Len(t, rejected, 1)
		assert.Equal(t, ids[2], rejected[0].ID)
		return nil
	})
	require.NoError(t, err)

	reloaded, err := NewEventRepository(testDB).FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reloaded.ConfirmedRequests)

	untouched, err := repo.FindByID(ctx, bystander.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatePending, untouched.State)
}

func TestRequestRepository_CountIgnoresOtherEvents(t *testing.T) {
	ctx := setupTest(t)
	repo := NewRequestRepository(testDB)
	initiator := createTestUser(t, "initiator")
	category := createTestCategory(t, "Games")
	event := createTestEvent(t, initiator, category)
	otherEvent := createTestEvent(t, initiator, category)

	own := createTestRequest(t, event.ID, createTestUser(t, "a").ID, model.RequestStatePending)
	foreign := createTestRequest(t, otherEvent.ID, createTestUser(t, "b").ID, model.RequestStatePending)

	err := database.NewTransactor(testDB).RunInTx(ctx, func(tx pgx.Tx) error {
		n, err := repo.CountByIDsAndState(ctx, tx, event.ID, []int64{own.ID, foreign.ID}, model.RequestStatePending)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		return nil
	})
	require.NoError(t, err)
}

func TestRequestRepository_FindByID_NotFound(t *testing.T) {
	ctx := setupTest(t)

	_, err := NewRequestRepository(testDB).FindByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRequestRepository_UpdateStateByIDsSkipsNonMatching(t *testing.T) {
	ctx := setupTest(t)
	repo := NewRequestRepository(testDB)
	initiator := createTestUser(t, "initiator")
	category := createTestCategory(t, "Games")
	event := createTestEvent(t, initiator, category)
	otherEvent := createTestEvent(t, initiator, category)

	pending := createTestRequest(t, event.ID, createTestUser(t, "a").ID, model.RequestStatePending)
	canceled := createTestRequest(t, event.ID, createTestUser(t, "b").ID, model.RequestStateCanceled)
	foreign := createTestRequest(t, otherEvent.ID, createTestUser(t, "c").ID, model.RequestStatePending)

	err := database.NewTransactor(testDB).RunInTx(ctx, func(tx pgx.Tx) error {
		moved, err := repo.UpdateStateByIDs(ctx, tx, event.ID,
			[]int64{pending.ID, canceled.ID, foreign.ID}, model.RequestStatePending, model.RequestStateConfirmed)
		require.NoError(t, err)
		require.Len(t, moved, 1)
		assert.Equal(t, pending.ID, moved[0].ID)
		return nil
	})
	require.NoError(t, err)

	stillCanceled, err := repo.FindByID(ctx, canceled.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStateCanceled, stillCanceled.State)

	stillPending, err := repo.FindByID(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatePending, stillPending.State)
}
