package service

import (
	"testing"

	"eventhub/internal/model"
	"eventhub/internal/repository/mocks"
	apperrors "eventhub/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupUserService(t *testing.T) (UserService, *mocks.MockUserRepository, *mocks.MockSubscriptionRepository) {
	userRepo := mocks.NewMockUserRepository(t)
	subscriptionRepo := mocks.NewMockSubscriptionRepository(t)
	return NewUserService(inlineTx{}, userRepo, subscriptionRepo), userRepo, subscriptionRepo
}

func privateUser(id int64) *model.User {
	u := testUser(id)
	u.Profile = model.UserProfilePrivate
	return u
}

func TestUserService_RegisterUser(t *testing.T) {
	svc, userRepo, _ := setupUserService(t)

	userRepo.EXPECT().Create(mock.Anything, &model.User{
		Name:    "Ann",
		Email:   "ann@example.com",
		Profile: model.UserProfilePublic,
	}).Return(&model.User{ID: 1, Name: "Ann", Email: "ann@example.com", Profile: model.UserProfilePublic}, nil).Once()

	user, err := svc.RegisterUser(t.Context(), model.NewUserRequest{Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestUserService_ChangeUserProfile(t *testing.T) {
	t.Run("Success - going public confirms pending subscriptions", func(t *testing.T) {
		svc, userRepo, subscriptionRepo := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(privateUser(1), nil).Once()
		userRepo.EXPECT().UpdateProfile(mock.Anything, mock.Anything, int64(1), model.UserProfilePublic).Return(testUser(1), nil).Once()
		subscriptionRepo.EXPECT().ConfirmPending(mock.Anything, mock.Anything, int64(1)).Return(int64(2), nil).Once()

		user, err := svc.ChangeUserProfile(t.Context(), 1, "public")
		require.NoError(t, err)
		assert.Equal(t, model.UserProfilePublic, user.Profile)
	})

	t.Run("Success - going private leaves subscriptions alone", func(t *testing.T) {
		svc, userRepo, subscriptionRepo := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()
		userRepo.EXPECT().UpdateProfile(mock.Anything, mock.Anything, int64(1), model.UserProfilePrivate).Return(privateUser(1), nil).Once()

		_, err := svc.ChangeUserProfile(t.Context(), 1, "PRIVATE")
		require.NoError(t, err)
		subscriptionRepo.AssertNotCalled(t, "ConfirmPending")
	})

	t.Run("Failed - same profile", func(t *testing.T) {
		svc, userRepo, _ := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()

		_, err := svc.ChangeUserProfile(t.Context(), 1, "PUBLIC")
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
	})

	t.Run("Failed - unknown profile", func(t *testing.T) {
		svc, userRepo, _ := setupUserService(t)

		_, err := svc.ChangeUserProfile(t.Context(), 1, "SECRET")
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
		userRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestUserService_GetInitiators(t *testing.T) {
	t.Run("Success - defaults to most initiative", func(t *testing.T) {
		svc, userRepo, _ := setupUserService(t)
		page := model.NewPage(0, 10)

		userRepo.EXPECT().FindInitiators(mock.Anything, model.InitiatorSortMostInitiative, (*model.UserProfile)(nil), page).
			Return([]*model.EventInitiator{{ID: 1, Events: 3}}, nil).Once()

		initiators, err := svc.GetInitiators(t.Context(), "", "", page)
		require.NoError(t, err)
		assert.Len(t, initiators, 1)
	})

	t.Run("Success - popular private initiators", func(t *testing.T) {
		svc, userRepo, _ := setupUserService(t)
		page := model.NewPage(0, 10)

		userRepo.EXPECT().FindInitiators(mock.Anything, model.InitiatorSortMostPopular, mock.MatchedBy(func(p *model.UserProfile) bool {
			return p != nil && *p == model.UserProfilePrivate
		}), page).Return([]*model.EventInitiator{}, nil).Once()

		_, err := svc.GetInitiators(t.Context(), "most_popular", "private", page)
		require.NoError(t, err)
	})

	t.Run("Failed - unknown sort", func(t *testing.T) {
		svc, _, _ := setupUserService(t)

		_, err := svc.GetInitiators(t.Context(), "NEWEST", "", model.NewPage(0, 10))
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
	})
}

func TestUserService_AddSubscription(t *testing.T) {
	t.Run("Success - public target confirms immediately", func(t *testing.T) {
		svc, userRepo, subscriptionRepo := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()
		userRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(testUser(2), nil).Once()
		subscriptionRepo.EXPECT().Create(mock.Anything, int64(1), int64(2), model.SubscriptionStateConfirmed).
			Return(&model.Subscription{ID: 1, State: model.SubscriptionStateConfirmed}, nil).Once()

		sub, err := svc.AddSubscription(t.Context(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, model.SubscriptionStateConfirmed, sub.State)
	})

	t.Run("Success - private target leaves it pending", func(t *testing.T) {
		svc, userRepo, subscriptionRepo := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()
		userRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(privateUser(2), nil).Once()
		subscriptionRepo.EXPECT().Create(mock.Anything, int64(1), int64(2), model.SubscriptionStatePending).
			Return(&model.Subscription{ID: 1, State: model.SubscriptionStatePending}, nil).Once()

		sub, err := svc.AddSubscription(t.Context(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, model.SubscriptionStatePending, sub.State)
	})

	t.Run("Failed - self subscription", func(t *testing.T) {
		svc, userRepo, _ := setupUserService(t)

		_, err := svc.AddSubscription(t.Context(), 1, 1)
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
		userRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("Failed - duplicate subscription", func(t *testing.T) {
		svc, userRepo, subscriptionRepo := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()
		userRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(testUser(2), nil).Once()
		subscriptionRepo.EXPECT().Create(mock.Anything, int64(1), int64(2), model.SubscriptionStateConfirmed).
			Return(nil, apperrors.Conflict("Subscription already exists")).Once()

		_, err := svc.AddSubscription(t.Context(), 1, 2)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestUserService_ChangeSubscriptionStatus(t *testing.T) {
	t.Run("Success - private user confirms a pending subscriber", func(t *testing.T) {
		svc, userRepo, subscriptionRepo := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(privateUser(2), nil).Once()
		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()
		subscriptionRepo.EXPECT().Find(mock.Anything, int64(1), int64(2)).
			Return(&model.Subscription{ID: 7, State: model.SubscriptionStatePending}, nil).Once()
		subscriptionRepo.EXPECT().UpdateState(mock.Anything, int64(7), model.SubscriptionStateConfirmed).
			Return(&model.Subscription{ID: 7, State: model.SubscriptionStateConfirmed}, nil).Once()

		sub, err := svc.ChangeSubscriptionStatus(t.Context(), 2, 1, "CONFIRMED")
		require.NoError(t, err)
		assert.Equal(t, model.SubscriptionStateConfirmed, sub.State)
	})

	t.Run("Failed - public user has nothing to confirm", func(t *testing.T) {
		svc, userRepo, _ := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(testUser(2), nil).Once()
		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()

		_, err := svc.ChangeSubscriptionStatus(t.Context(), 2, 1, "CONFIRMED")
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
	})

	t.Run("Failed - cannot move back to pending", func(t *testing.T) {
		svc, userRepo, _ := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(privateUser(2), nil).Once()
		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()

		_, err := svc.ChangeSubscriptionStatus(t.Context(), 2, 1, "PENDING")
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
	})

	t.Run("Failed - already decided", func(t *testing.T) {
		svc, userRepo, subscriptionRepo := setupUserService(t)

		userRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(privateUser(2), nil).Once()
		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()
		subscriptionRepo.EXPECT().Find(mock.Anything, int64(1), int64(2)).
			Return(&model.Subscription{ID: 7, State: model.SubscriptionStateRejected}, nil).Once()

		_, err := svc.ChangeSubscriptionStatus(t.Context(), 2, 1, "CONFIRMED")
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
		subscriptionRepo.AssertNotCalled(t, "UpdateState")
	})
}

func TestUserService_GetUsersSubscriptions(t *testing.T) {
	t.Run("Success - filtered by state", func(t *testing.T) {
		svc, userRepo, subscriptionRepo := setupUserService(t)
		page := model.NewPage(0, 10)

		userRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(1), nil).Once()
		subscriptionRepo.EXPECT().List(mock.Anything, int64(1), model.SubscriptionDirectionToMe, mock.MatchedBy(func(s *model.SubscriptionState) bool {
			return s != nil && *s == model.SubscriptionStatePending
		}), page).Return([]*model.Subscription{{ID: 3}}, nil).Once()

		subs, err := svc.GetUsersSubscriptions(t.Context(), 1, "to_me", "pending", page)
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})

	t.Run("Failed - unknown direction", func(t *testing.T) {
		svc, _, _ := setupUserService(t)

		_, err := svc.GetUsersSubscriptions(t.Context(), 1, "SIDEWAYS", "", model.NewPage(0, 10))
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
	})
}
