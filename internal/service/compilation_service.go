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

type CompilationService interface {
	SaveCompilation(ctx context.Context, req model.NewCompilationRequest) (*model.Compilation, error)
	UpdateCompilation(ctx context.Context, id int64, req model.UpdateCompilationRequest) (*model.Compilation, error)
	DeleteCompilation(ctx context.Context, id int64) error
	GetCompilations(ctx context.Context, pinned *bool, page model.PageRequest) ([]*model.Compilation, error)
	GetCompilation(ctx context.Context, id int64) (*model.Compilation, error)
}

type CompilationServiceImpl struct {
	tx              database.Transactor
	compilationRepo repository.CompilationRepository
	eventRepo       repository.EventRepository
	views           *ViewAggregator
}

func NewCompilationService(
	tx database.Transactor,
	compilationRepo repository.CompilationRepository,
	eventRepo repository.EventRepository,
	views *ViewAggregator,
) CompilationService {
	return &CompilationServiceImpl{
		tx:              tx,
		compilationRepo: compilationRepo,
		eventRepo:       eventRepo,
		views:           views,
	}
}

func (s *CompilationServiceImpl) SaveCompilation(ctx context.Context, req model.NewCompilationRequest) (*model.Compilation, error) {
	eventIDs := uniqueIDs(req.Events)
	events, err := s.loadEvents(ctx, eventIDs, true)
	if err != nil {
		return nil, err
	}

	pinned := false
	if req.Pinned != nil {
		pinned = *req.Pinned
	}

	var created *model.Compilation
	err = s.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		var err error
		if created, err = s.compilationRepo.Create(ctx, tx, req.Title, pinned); err != nil {
			return err
		}
		return s.compilationRepo.ReplaceEvents(ctx, tx, created.ID, eventIDs)
	})
	if err != nil {
		return nil, err
	}

	created.EventIDs = eventIDs
	created.Events = events
	if err := s.views.Attach(ctx, created.Events); err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("compilation created",
		zap.Int64("compilation_id", created.ID),
		zap.Int("events", len(eventIDs)),
	)
	return created, nil
}

func (s *CompilationServiceImpl) UpdateCompilation(ctx context.Context, id int64, req model.UpdateCompilationRequest) (*model.Compilation, error) {
	compilation, err := s.compilationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		compilation.Title = *req.Title
	}
	if req.Pinned != nil {
		compilation.Pinned = *req.Pinned
	}

	replaceEvents := req.Events != nil
	if replaceEvents {
		compilation.EventIDs = uniqueIDs(*req.Events)
	}

	events, err := s.loadEvents(ctx, compilation.EventIDs, replaceEvents)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		if err := s.compilationRepo.Update(ctx, tx, compilation); err != nil {
			return err
		}
		if !replaceEvents {
			return nil
		}
		return s.compilationRepo.ReplaceEvents(ctx, tx, compilation.ID, compilation.EventIDs)
	})
	if err != nil {
		return nil, err
	}

	compilation.Events = events
	if err := s.views.Attach(ctx, compilation.Events); err != nil {
		return nil, err
	}
	return compilation, nil
}

func (s *CompilationServiceImpl) DeleteCompilation(ctx context.Context, id int64) error {
	return s.compilationRepo.Delete(ctx, id)
}

// GetCompilations resolves the events of the whole page with one lookup and one views query.
func (s *CompilationServiceImpl) GetCompilations(ctx context.Context, pinned *bool, page model.PageRequest) ([]*model.Compilation, error) {
	compilations, err := s.compilationRepo.List(ctx, pinned, page)
	if err != nil {
		return nil, err
	}

	var ids []int64
	for _, c := range compilations {
		ids = append(ids, c.EventIDs...)
	}
	events, err := s.loadEvents(ctx, uniqueIDs(ids), false)
	if err != nil {
		return nil, err
	}
	if err := s.views.Attach(ctx, events); err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	for _, c := range compilations {
		c.Events = make([]*model.Event, 0, len(c.EventIDs))
		for _, id := range c.EventIDs {
			if e, ok := byID[id]; ok {
				c.Events = append(c.Events, e)
			}
		}
	}
	return compilations, nil
}

func (s *CompilationServiceImpl) GetCompilation(ctx context.Context, id int64) (*model.Compilation, error) {
	compilation, err := s.compilationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if compilation.Events, err = s.loadEvents(ctx, compilation.EventIDs, false); err != nil {
		return nil, err
	}
	if err := s.views.Attach(ctx, compilation.Events); err != nil {
		return nil, err
	}
	return compilation, nil
}

// loadEvents fetches events in ids order. With strict set, a missing id is an illegal action.
func (s *CompilationServiceImpl) loadEvents(ctx context.Context, ids []int64, strict bool) ([]*model.Event, error) {
	if len(ids) == 0 {
		return []*model.Event{}, nil
	}

	events, err := s.eventRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if strict && len(events) != len(ids) {
		return nil, apperrors.IllegalAction("Some of the events %v do not exist", ids)
	}
	return events, nil
}
