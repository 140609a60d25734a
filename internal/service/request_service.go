package service

import (
	"context"

	"eventhub/internal/database"
	"eventhub/internal/metrics"
	"eventhub/internal/model"
	"eventhub/internal/repository"
	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/clock"
	"eventhub/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RequestService interface {
	CreateRequest(ctx context.Context, userID int64, eventID int64) (*model.Request, error)
	CancelRequest(ctx context.Context, userID int64, requestID int64) (*model.Request, error)
	ChangeRequestStatus(ctx context.Context, userID int64, eventID int64, update model.RequestStatusUpdate) (*model.RequestStatusUpdateResult, error)
	GetEventParticipants(ctx context.Context, userID int64, eventID int64) ([]*model.Request, error)
	GetUserRequests(ctx context.Context, userID int64) ([]*model.Request, error)
}

type RequestServiceImpl struct {
	tx          database.Transactor
	requestRepo repository.RequestRepository
	eventRepo   repository.EventRepository
	userRepo    repository.UserRepository
	clock       clock.Clock
	metrics     *metrics.Metrics
}

func NewRequestService(
	tx database.Transactor,
	requestRepo repository.RequestRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	clk clock.Clock,
	m *metrics.Metrics,
) RequestService {
	return &RequestServiceImpl{
		tx:          tx,
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		clock:       clk,
		metrics:     m,
	}
}

// CreateRequest files userID's request for eventID. The event row stays locked
// until commit so the limit check and the insert see the same confirmed count.
func (s *RequestServiceImpl) CreateRequest(ctx context.Context, userID int64, eventID int64) (*model.Request, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	var created *model.Request
	err := s.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		event, err := s.eventRepo.FindByIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if event.IsInitiator(userID) {
			return apperrors.IllegalAction("Initiator id=%d cannot request participation in own event id=%d", userID, eventID)
		}
		if !event.IsPublished() {
			return apperrors.IllegalAction("Event id=%d is not published", eventID)
		}
		if event.IsLimitReached(0) {
			return apperrors.IllegalAction("Participant limit of event id=%d has been reached", eventID)
		}

		exists, err := s.requestRepo.ExistsActive(ctx, tx, eventID, userID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.IllegalAction("User id=%d already has a request for event id=%d", userID, eventID)
		}

		state := model.RequestStateConfirmed
		if event.NeedsModeration() {
			state = model.RequestStatePending
		}

		created, err = s.requestRepo.Create(ctx, tx, &model.Request{
			Created:     s.clock.Now(),
			EventID:     eventID,
			RequesterID: userID,
			State:       state,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncRequestCreated(string(created.State))
	logger.WithComponent("service").Info("participation request created",
		zap.Int64("request_id", created.ID),
		zap.Int64("event_id", eventID),
		zap.Int64("user_id", userID),
		zap.String("state", string(created.State)),
	)
	return created, nil
}

// CancelRequest marks the request CANCELED under the event lock, so it cannot
// interleave with a status batch of the same event. Cancelling twice is not an error.
func (s *RequestServiceImpl) CancelRequest(ctx context.Context, userID int64, requestID int64) (*model.Request, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RequesterID != userID {
		return nil, apperrors.IllegalAction("User id=%d is not the requester of request id=%d", userID, requestID)
	}

	var canceled *model.Request
	err = s.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		if _, err := s.eventRepo.FindByIDWithLock(ctx, tx, req.EventID); err != nil {
			return err
		}
		canceled, err = s.requestRepo.UpdateState(ctx, tx, requestID, model.RequestStateCanceled)
		return err
	})
	if err != nil {
		return nil, err
	}
	return canceled, nil
}

// ChangeRequestStatus confirms or rejects a batch of pending requests of one event.
// The batch is all-or-nothing. When confirming fills the limit, every other
// pending request of the event is rejected in the same transaction.
func (s *RequestServiceImpl) ChangeRequestStatus(ctx context.Context, userID int64, eventID int64, update model.RequestStatusUpdate) (*model.RequestStatusUpdateResult, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	ids := uniqueIDs(update.RequestIDs)
	result := &model.RequestStatusUpdateResult{
		ConfirmedRequests: []*model.Request{},
		RejectedRequests:  []*model.Request{},
	}

	err := s.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		event, err := s.eventRepo.FindByIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if !event.IsInitiator(userID) {
			return apperrors.IllegalAction("User id=%d is not the initiator of event id=%d", userID, eventID)
		}
		if !event.NeedsModeration() {
			return apperrors.IllegalAction("Event id=%d does not require request moderation", eventID)
		}

		status, err := model.ParseRequestDecision(update.Status)
		if err != nil {
			return err
		}

		if len(ids) == 0 {
			return nil
		}

		pending, err := s.requestRepo.CountByIDsAndState(ctx, tx, eventID, ids, model.RequestStatePending)
		if err != nil {
			return err
		}
		if pending != len(ids) {
			return apperrors.IllegalAction("All requests must be pending requests of event id=%d", eventID)
		}

		switch status {
		case model.RequestStateRejected:
			rejected, err := s.movePending(ctx, tx, eventID, ids, model.RequestStateRejected)
			if err != nil {
				return err
			}
			result.RejectedRequests = rejected
			return nil

		case model.RequestStateConfirmed:
			if !event.HasCapacityFor(int64(len(ids))) {
				return apperrors.IllegalAction("Confirming %d requests exceeds the participant limit of event id=%d (%d of %d taken)",
					len(ids), eventID, event.ConfirmedRequests, event.ParticipantLimit)
			}

			confirmed, err := s.movePending(ctx, tx, eventID, ids, model.RequestStateConfirmed)
			if err != nil {
				return err
			}
			result.ConfirmedRequests = confirmed

			event.ConfirmedRequests, err = s.requestRepo.CountByEventAndState(ctx, tx, eventID, model.RequestStateConfirmed)
			if err != nil {
				return err
			}
			if !event.IsLimitReached(0) {
				return nil
			}

			rejected, err := s.requestRepo.UpdateStateByEvent(ctx, tx, eventID, model.RequestStatePending, model.RequestStateRejected)
			if err != nil {
				return err
			}
			result.RejectedRequests = rejected
			return nil
		}
		return apperrors.IllegalAction("Unsupported request status: %s", update.Status)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AddRequestDecisions(string(model.RequestStateConfirmed), len(result.ConfirmedRequests))
	if len(result.ConfirmedRequests) > 0 {
		s.metrics.AddCascadeRejected(len(result.RejectedRequests))
	} else {
		s.metrics.AddRequestDecisions(string(model.RequestStateRejected), len(result.RejectedRequests))
	}

	logger.WithComponent("service").Info("request statuses changed",
		zap.Int64("event_id", eventID),
		zap.Int("confirmed", len(result.ConfirmedRequests)),
		zap.Int("rejected", len(result.RejectedRequests)),
	)
	return result, nil
}

func (s *RequestServiceImpl) GetEventParticipants(ctx context.Context, userID int64, eventID int64) ([]*model.Request, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsInitiator(userID) {
		return nil, apperrors.IllegalAction("User id=%d is not the initiator of event id=%d", userID, eventID)
	}

	return s.requestRepo.FindByEventID(ctx, eventID)
}

func (s *RequestServiceImpl) GetUserRequests(ctx context.Context, userID int64) ([]*model.Request, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.requestRepo.FindByRequesterID(ctx, userID)
}

// movePending moves the pending requests ids of eventID to state. A request
// that left PENDING since it was counted fails the whole batch.
func (s *RequestServiceImpl) movePending(ctx context.Context, tx pgx.Tx, eventID int64, ids []int64, state model.RequestState) ([]*model.Request, error) {
	moved, err := s.requestRepo.UpdateStateByIDs(ctx, tx, eventID, ids, model.RequestStatePending, state)
	if err != nil {
		return nil, err
	}
	if len(moved) != len(ids) {
		return nil, apperrors.IllegalAction("All requests must be pending requests of event id=%d", eventID)
	}
	return moved, nil
}

// uniqueIDs drops duplicates, keeping first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
