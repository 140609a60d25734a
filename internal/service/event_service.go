package service

import (
	"context"
	"errors"
	"sort"

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

type EventService interface {
	AddEvent(ctx context.Context, userID int64, req model.NewEventRequest) (*model.Event, error)
	UpdateEventUser(ctx context.Context, userID int64, eventID int64, req model.UpdateEventUserRequest) (*model.Event, error)
	UpdateEventAdmin(ctx context.Context, eventID int64, req model.UpdateEventAdminRequest) (*model.Event, error)
	GetEventsPrivate(ctx context.Context, userID int64, page model.PageRequest) ([]*model.Event, error)
	GetEventPrivate(ctx context.Context, userID int64, eventID int64) (*model.Event, error)
	GetEventsAdmin(ctx context.Context, query model.AdminEventQuery, page model.PageRequest) ([]*model.Event, error)
	GetEventPublic(ctx context.Context, eventID int64, clientIP string) (*model.Event, error)
	GetEventsPublic(ctx context.Context, query model.PublicEventQuery, page model.PageRequest, uri string, clientIP string) ([]*model.Event, error)
	GetEventsBySubscription(ctx context.Context, subscriberID int64, subscribedToID int64, page model.PageRequest) ([]*model.Event, error)
}

type EventServiceImpl struct {
	tx               database.Transactor
	eventRepo        repository.EventRepository
	userRepo         repository.UserRepository
	categoryRepo     repository.CategoryRepository
	subscriptionRepo repository.SubscriptionRepository
	views            *ViewAggregator
	hits             *HitRecorder
	clock            clock.Clock
	metrics          *metrics.Metrics
}

func NewEventService(
	tx database.Transactor,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	subscriptionRepo repository.SubscriptionRepository,
	views *ViewAggregator,
	hits *HitRecorder,
	clk clock.Clock,
	m *metrics.Metrics,
) EventService {
	return &EventServiceImpl{
		tx:               tx,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		categoryRepo:     categoryRepo,
		subscriptionRepo: subscriptionRepo,
		views:            views,
		hits:             hits,
		clock:            clk,
		metrics:          m,
	}
}

func (s *EventServiceImpl) AddEvent(ctx context.Context, userID int64, req model.NewEventRequest) (*model.Event, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindByID(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Annotation:        req.Annotation,
		Category:          *category,
		CreatedOn:         s.clock.Now(),
		Description:       req.Description,
		EventDate:         req.EventDate.Time(),
		Initiator:         model.UserShort{ID: user.ID, Name: user.Name},
		Location:          *req.Location,
		Paid:              false,
		ParticipantLimit:  0,
		RequestModeration: true,
		State:             model.EventStatePending,
		Title:             req.Title,
	}
	if req.Paid != nil {
		event.Paid = *req.Paid
	}
	if req.ParticipantLimit != nil {
		event.ParticipantLimit = *req.ParticipantLimit
	}
	if req.RequestModeration != nil {
		event.RequestModeration = *req.RequestModeration
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("event created", zap.Int64("event_id", created.ID), zap.Int64("user_id", userID))
	return created, nil
}

// UpdateEventUser edits an unpublished event of its initiator. The event row
// stays locked until commit so a concurrent publish cannot be overwritten.
func (s *EventServiceImpl) UpdateEventUser(ctx context.Context, userID int64, eventID int64, req model.UpdateEventUserRequest) (*model.Event, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	var action model.EventStateAction
	if req.StateAction != nil {
		var err error
		if action, err = model.ParseUserStateAction(*req.StateAction); err != nil {
			return nil, err
		}
	}

	var updated *model.Event
	err := s.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		event, err := s.eventRepo.FindByIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if !event.IsInitiator(userID) {
			return apperrors.IllegalAction("User id=%d is not the initiator of event id=%d", userID, eventID)
		}
		if event.IsPublished() {
			return apperrors.IllegalAction("Event id=%d is already published and cannot be changed", eventID)
		}

		if err := s.applyFields(ctx, event, &req.UpdateEventFields); err != nil {
			return err
		}
		if action != "" {
			if event.State, err = event.State.Apply(action); err != nil {
				return err
			}
		}

		updated, err = s.eventRepo.Update(ctx, tx, event)
		return err
	})
	if err != nil {
		return nil, err
	}
	if action != "" {
		s.metrics.IncEventTransition(string(action))
	}
	return updated, nil
}

// UpdateEventAdmin edits and moderates an unpublished event under the event lock.
func (s *EventServiceImpl) UpdateEventAdmin(ctx context.Context, eventID int64, req model.UpdateEventAdminRequest) (*model.Event, error) {
	var action model.EventStateAction
	if req.StateAction != nil {
		var err error
		if action, err = model.ParseAdminStateAction(*req.StateAction); err != nil {
			return nil, err
		}
	}

	var updated *model.Event
	err := s.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		event, err := s.eventRepo.FindByIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if event.IsPublished() {
			return apperrors.IllegalAction("Event id=%d is already published and cannot be changed", eventID)
		}

		if err := s.applyFields(ctx, event, &req.UpdateEventFields); err != nil {
			return err
		}
		if action != "" {
			if event.State, err = event.State.Apply(action); err != nil {
				return err
			}
			if event.State == model.EventStatePublished {
				now := s.clock.Now()
				event.PublishedOn = &now
			}
		}

		updated, err = s.eventRepo.Update(ctx, tx, event)
		return err
	})
	if err != nil {
		return nil, err
	}
	if action != "" {
		s.metrics.IncEventTransition(string(action))
		logger.WithComponent("service").Info("event moderated",
			zap.Int64("event_id", eventID),
			zap.String("action", string(action)),
			zap.String("state", string(updated.State)),
		)
	}
	return updated, nil
}

// applyFields copies the requested edits onto event, resolving a changed category.
func (s *EventServiceImpl) applyFields(ctx context.Context, event *model.Event, fields *model.UpdateEventFields) error {
	if fields.Category != nil {
		category, err := s.categoryRepo.FindByID(ctx, *fields.Category)
		if err != nil {
			return err
		}
		event.Category = *category
	}
	fields.ApplyTo(event)
	return nil
}

func (s *EventServiceImpl) GetEventsPrivate(ctx context.Context, userID int64, page model.PageRequest) ([]*model.Event, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindByInitiator(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	if err := s.views.Attach(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventServiceImpl) GetEventPrivate(ctx context.Context, userID int64, eventID int64) (*model.Event, error) {
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

	if err := s.views.AttachOne(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) GetEventsAdmin(ctx context.Context, query model.AdminEventQuery, page model.PageRequest) ([]*model.Event, error) {
	if err := validateRange(query.RangeStart, query.RangeEnd); err != nil {
		return nil, err
	}

	states := make([]model.EventState, 0, len(query.States))
	for _, raw := range query.States {
		state, err := model.ParseEventState(raw)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}

	events, err := s.eventRepo.Find(ctx, model.EventFilter{
		InitiatorIDs: query.Users,
		States:       states,
		CategoryIDs:  query.Categories,
		RangeStart:   query.RangeStart,
		RangeEnd:     query.RangeEnd,
	}, page)
	if err != nil {
		return nil, err
	}

	if err := s.views.Attach(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventServiceImpl) GetEventPublic(ctx context.Context, eventID int64, clientIP string) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished() {
		return nil, apperrors.NotFound("Event with id=%d was not found", eventID)
	}

	if err := s.views.AttachOne(ctx, event); err != nil {
		return nil, err
	}

	s.hits.Record(ctx, event.URI(), clientIP)
	return event, nil
}

func (s *EventServiceImpl) GetEventsPublic(ctx context.Context, query model.PublicEventQuery, page model.PageRequest, uri string, clientIP string) ([]*model.Event, error) {
	var sortBy model.EventSort
	if query.Sort != "" {
		var err error
		if sortBy, err = model.ParseEventSort(query.Sort); err != nil {
			return nil, err
		}
	}
	if err := validateRange(query.RangeStart, query.RangeEnd); err != nil {
		return nil, err
	}

	filter := model.EventFilter{
		States:        []model.EventState{model.EventStatePublished},
		CategoryIDs:   query.Categories,
		Text:          query.Text,
		Paid:          query.Paid,
		RangeStart:    query.RangeStart,
		RangeEnd:      query.RangeEnd,
		OnlyAvailable: query.OnlyAvailable,
		SortByDate:    sortBy == model.EventSortEventDate,
	}
	if filter.RangeStart == nil && filter.RangeEnd == nil {
		now := s.clock.Now()
		filter.RangeStart = &now
	}

	events, err := s.eventRepo.Find(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	if err := s.views.Attach(ctx, events); err != nil {
		return nil, err
	}

	if sortBy == model.EventSortViews {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Views > events[j].Views
		})
	}

	s.hits.Record(ctx, uri, clientIP)
	return events, nil
}

// GetEventsBySubscription lists the published events of subscribedToID for a confirmed subscriber.
func (s *EventServiceImpl) GetEventsBySubscription(ctx context.Context, subscriberID int64, subscribedToID int64, page model.PageRequest) ([]*model.Event, error) {
	if _, err := s.userRepo.FindByID(ctx, subscriberID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, subscribedToID); err != nil {
		return nil, err
	}

	sub, err := s.subscriptionRepo.Find(ctx, subscriberID, subscribedToID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if sub == nil || sub.State != model.SubscriptionStateConfirmed {
		return nil, apperrors.IllegalAction("Subscription of user id=%d to user id=%d is not confirmed", subscriberID, subscribedToID)
	}

	events, err := s.eventRepo.Find(ctx, model.EventFilter{
		InitiatorIDs: []int64{subscribedToID},
		States:       []model.EventState{model.EventStatePublished},
		SortByDate:   true,
	}, page)
	if err != nil {
		return nil, err
	}

	if err := s.views.Attach(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}
