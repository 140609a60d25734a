//go:build integration

package repository

import (
	"testing"

	"eventhub/internal/database"
	"eventhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_ConfirmPending(t *testing.T) {
	ctx := setupTest(t)
	users := NewUserRepository(testDB)
	subs := NewSubscriptionRepository(testDB)

	star := createTestUser(t, "star")
	fan := createTestUser(t, "fan")
	other := createTestUser(t, "other")

	_, err := subs.Create(ctx, fan.ID, star.ID, model.SubscriptionStatePending)
	require.NoError(t, err)
	_, err = subs.Create(ctx, other.ID, star.ID, model.SubscriptionStateRejected)
	require.NoError(t, err)
	_, err = subs.Create(ctx, star.ID, fan.ID, model.SubscriptionStatePending)
	require.NoError(t, err)

	err = database.NewTransactor(testDB).RunInTx(ctx, func(tx pgx.Tx) error {
		if _, err := users.UpdateProfile(ctx, tx, star.ID, model.UserProfilePublic); err != nil {
			return err
		}
		n, err := subs.ConfirmPending(ctx, tx, star.ID)
		assert.Equal(t, int64(1), n)
		return err
	})
	require.NoError(t, err)

	confirmed, err := subs.Find(ctx, fan.ID, star.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionStateConfirmed, confirmed.State)

	reverse, err := subs.Find(ctx, star.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionStatePending, reverse.State)
}

func TestUserRepository_FindInitiators(t *testing.T) {
	ctx := setupTest(t)
	subs := NewSubscriptionRepository(testDB)
	category := createTestCategory(t, "Games")

	busy := createTestUser(t, "busy")
	popular := createTestUser(t, "popular")
	fan1 := createTestUser(t, "fan1")
	fan2 := createTestUser(t, "fan2")

	createTestEvent(t, busy, category)
	createTestEvent(t, busy, category)
	createTestEvent(t, popular, category)

	for _, fan := range []*model.User{fan1, fan2} {
		_, err := subs.Create(ctx, fan.ID, popular.ID, model.SubscriptionStateConfirmed)
		require.NoError(t, err)
	}
	_, err := subs.Create(ctx, fan1.ID, busy.ID, model.SubscriptionStatePending)
	require.NoError(t, err)

	page := model.NewPage(0, 2)

	byEvents, err := NewUserRepository(testDB).FindInitiators(ctx, model.InitiatorSortMostInitiative, nil, page)
	require.NoError(t, err)
	require.Len(t, byEvents, 2)
	assert.Equal(t, busy.ID, byEvents[0].ID)
	assert.Equal(t, int64(2), byEvents[0].Events)
	assert.Equal(t, int64(0), byEvents[0].Subscribers)

	bySubscribers, err := NewUserRepository(testDB).FindInitiators(ctx, model.InitiatorSortMostPopular, nil, page)
	require.NoError(t, err)
	require.Len(t, bySubscribers, 2)
	assert.Equal(t, popular.ID, bySubscribers[0].ID)
	assert.Equal(t, int64(2), bySubscribers[0].Subscribers)

	private := model.UserProfilePrivate
	none, err := NewUserRepository(testDB).FindInitiators(ctx, model.InitiatorSortMostPopular, &private, page)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCompilationRepository_ReplaceEvents(t *testing.T) {
	ctx := setupTest(t)
	repo := NewCompilationRepository(testDB)
	initiator := createTestUser(t, "initiator")
	category := createTestCategory(t, "Games")
	a := createTestEvent(t, initiator, category)
	b := createTestEvent(t, initiator, category)

	var id int64
	err := database.NewTransactor(testDB).RunInTx(ctx, func(tx pgx.Tx) error {
		c, err := repo.Create(ctx, tx, "Weekend", true)
		if err != nil {
			return err
		}
		id = c.ID
		return repo.ReplaceEvents(ctx, tx, c.ID, []int64{b.ID, a.ID})
	})
	require.NoError(t, err)

	compilation, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID, a.ID}, compilation.EventIDs)
	assert.True(t, compilation.Pinned)

	pinned := false
	list, err := repo.List(ctx, &pinned, model.NewPage(0, 10))
	require.NoError(t, err)
	assert.Empty(t, list)
}
