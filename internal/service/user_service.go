package service

import (
	"context"

	"eventhub/internal/database"
	"eventhub/internal/model"
	"eventhub/internal/repository"
	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserService interface {
	RegisterUser(ctx context.Context, req model.NewUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	GetUsers(ctx context.Context, ids []int64, page model.PageRequest) ([]*model.User, error)
	ChangeUserProfile(ctx context.Context, userID int64, profile string) (*model.User, error)
	GetInitiators(ctx context.Context, sort string, profile string, page model.PageRequest) ([]*model.EventInitiator, error)

	AddSubscription(ctx context.Context, subscriberID int64, subscribedToID int64) (*model.Subscription, error)
	DeleteSubscription(ctx context.Context, subscriberID int64, subscribedToID int64) error
	GetUsersSubscriptions(ctx context.Context, userID int64, direction string, state string, page model.PageRequest) ([]*model.Subscription, error)
	ChangeSubscriptionStatus(ctx context.Context, subscribedToID int64, subscriberID int64, newState string) (*model.Subscription, error)
}

type UserServiceImpl struct {
	tx               database.Transactor
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
}

func NewUserService(tx database.Transactor, userRepo repository.UserRepository, subscriptionRepo repository.SubscriptionRepository) UserService {
	return &UserServiceImpl{
		tx:               tx,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *UserServiceImpl) RegisterUser(ctx context.Context, req model.NewUserRequest) (*model.User, error) {
	user, err := s.userRepo.Create(ctx, &model.User{
		Name:    req.Name,
		Email:   req.Email,
		Profile: model.UserProfilePublic,
	})
	if err != nil {
		return nil, err
	}
	logger.WithComponent("service").Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepo.Delete(ctx, userID)
}

func (s *UserServiceImpl) GetUsers(ctx context.Context, ids []int64, page model.PageRequest) ([]*model.User, error) {
	return s.userRepo.List(ctx, ids, page)
}

// ChangeUserProfile switches the profile. Going PUBLIC confirms every pending subscription to the user.
func (s *UserServiceImpl) ChangeUserProfile(ctx context.Context, userID int64, profile string) (*model.User, error) {
	newProfile, err := model.ParseUserProfile(profile)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Profile == newProfile {
		return nil, apperrors.IllegalAction("User id=%d already has profile %s", userID, newProfile)
	}

	var (
		updated   *model.User
		confirmed int64
	)
	err = s.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		var err error
		if updated, err = s.userRepo.UpdateProfile(ctx, tx, userID, newProfile); err != nil {
			return err
		}
		if newProfile != model.UserProfilePublic {
			return nil
		}
		confirmed, err = s.subscriptionRepo.ConfirmPending(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("user profile changed",
		zap.Int64("user_id", userID),
		zap.String("profile", string(newProfile)),
		zap.Int64("subscriptions_confirmed", confirmed),
	)
	return updated, nil
}

// GetInitiators ranks users by created events or confirmed subscribers. An empty profile means any.
func (s *UserServiceImpl) GetInitiators(ctx context.Context, sort string, profile string, page model.PageRequest) ([]*model.EventInitiator, error) {
	sortBy := model.InitiatorSortMostInitiative
	if sort != "" {
		var err error
		if sortBy, err = model.ParseInitiatorSort(sort); err != nil {
			return nil, err
		}
	}

	var profileFilter *model.UserProfile
	if profile != "" {
		p, err := model.ParseUserProfile(profile)
		if err != nil {
			return nil, err
		}
		profileFilter = &p
	}

	return s.userRepo.FindInitiators(ctx, sortBy, profileFilter, page)
}

// AddSubscription subscribes subscriberID to subscribedToID. Subscriptions to a
// PRIVATE user wait for confirmation.
func (s *UserServiceImpl) AddSubscription(ctx context.Context, subscriberID int64, subscribedToID int64) (*model.Subscription, error) {
	if subscriberID == subscribedToID {
		return nil, apperrors.IllegalAction("User id=%d cannot subscribe to themselves", subscriberID)
	}
	if _, err := s.userRepo.FindByID(ctx, subscriberID); err != nil {
		return nil, err
	}
	target, err := s.userRepo.FindByID(ctx, subscribedToID)
	if err != nil {
		return nil, err
	}

	state := model.SubscriptionStateConfirmed
	if target.Profile == model.UserProfilePrivate {
		state = model.SubscriptionStatePending
	}

	sub, err := s.subscriptionRepo.Create(ctx, subscriberID, subscribedToID, state)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("subscription created",
		zap.Int64("subscriber_id", subscriberID),
		zap.Int64("subscribed_to_id", subscribedToID),
		zap.String("state", string(sub.State)),
	)
	return sub, nil
}

func (s *UserServiceImpl) DeleteSubscription(ctx context.Context, subscriberID int64, subscribedToID int64) error {
	if _, err := s.userRepo.FindByID(ctx, subscriberID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindByID(ctx, subscribedToID); err != nil {
		return err
	}
	return s.subscriptionRepo.Delete(ctx, subscriberID, subscribedToID)
}

func (s *UserServiceImpl) GetUsersSubscriptions(ctx context.Context, userID int64, direction string, state string, page model.PageRequest) ([]*model.Subscription, error) {
	dir, err := model.ParseSubscriptionDirection(direction)
	if err != nil {
		return nil, err
	}

	var stateFilter *model.SubscriptionState
	if state != "" {
		st, err := model.ParseSubscriptionState(state)
		if err != nil {
			return nil, err
		}
		stateFilter = &st
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.subscriptionRepo.List(ctx, userID, dir, stateFilter, page)
}

// ChangeSubscriptionStatus lets a PRIVATE user confirm or reject a pending subscriber.
func (s *UserServiceImpl) ChangeSubscriptionStatus(ctx context.Context, subscribedToID int64, subscriberID int64, newState string) (*model.Subscription, error) {
	target, err := s.userRepo.FindByID(ctx, subscribedToID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, subscriberID); err != nil {
		return nil, err
	}
	if target.Profile != model.UserProfilePrivate {
		return nil, apperrors.IllegalAction("User id=%d has a public profile, subscriptions need no confirmation", subscribedToID)
	}

	state, err := model.ParseSubscriptionState(newState)
	if err != nil {
		return nil, err
	}
	if state != model.SubscriptionStateConfirmed && state != model.SubscriptionStateRejected {
		return nil, apperrors.IllegalAction("Subscription state can only be set to CONFIRMED or REJECTED")
	}

	sub, err := s.subscriptionRepo.Find(ctx, subscriberID, subscribedToID)
	if err != nil {
		return nil, err
	}
	if sub.State != model.SubscriptionStatePending {
		return nil, apperrors.IllegalAction("Subscription id=%d is not pending", sub.ID)
	}

	return s.subscriptionRepo.UpdateState(ctx, sub.ID, state)
}
