package service

import (
	"testing"

	"eventhub/internal/model"
	"eventhub/internal/repository/mocks"
	statsmocks "eventhub/internal/stats/mocks"
	apperrors "eventhub/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type compilationServiceDeps struct {
	compilationRepo *mocks.MockCompilationRepository
	eventRepo       *mocks.MockEventRepository
	stats           *statsmocks.MockClient
}

func setupCompilationService(t *testing.T) (CompilationService, compilationServiceDeps) {
	deps := compilationServiceDeps{
		compilationRepo: mocks.NewMockCompilationRepository(t),
		eventRepo:       mocks.NewMockEventRepository(t),
		stats:           statsmocks.NewMockClient(t),
	}
	views := NewViewAggregator(deps.stats, nil, testClock())
	return NewCompilationService(inlineTx{}, deps.compilationRepo, deps.eventRepo, views), deps
}

func TestCompilationService_SaveCompilation(t *testing.T) {
	t.Run("Success - duplicate event ids collapsed", func(t *testing.T) {
		svc, deps := setupCompilationService(t)
		events := []*model.Event{publishedEvent(1, 10, 0, 0, false), publishedEvent(2, 10, 0, 0, false)}
		pinned := true

		deps.eventRepo.EXPECT().FindByIDs(mock.Anything, []int64{1, 2}).Return(events, nil).Once()
		deps.compilationRepo.EXPECT().Create(mock.Anything, mock.Anything, "Summer", true).
			Return(&model.Compilation{ID: 5, Title: "Summer", Pinned: true}, nil).Once()
		deps.compilationRepo.EXPECT().ReplaceEvents(mock.Anything, mock.Anything, int64(5), []int64{1, 2}).Return(nil).Once()
		deps.stats.EXPECT().ViewCounts(mock.Anything, mock.Anything).Return([]model.ViewStats{{URI: "/events/2", Hits: 6}}, nil).Once()

		compilation, err := svc.SaveCompilation(t.Context(), model.NewCompilationRequest{
			Events: []int64{1, 2, 1},
			Pinned: &pinned,
			Title:  "Summer",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), compilation.ID)
		require.Len(t, compilation.Events, 2)
		assert.Equal(t, int64(6), compilation.Events[1].Views)
	})

	t.Run("Success - empty compilation", func(t *testing.T) {
		svc, deps := setupCompilationService(t)

		deps.compilationRepo.EXPECT().Create(mock.Anything, mock.Anything, "Empty", false).
			Return(&model.Compilation{ID: 6, Title: "Empty"}, nil).Once()
		deps.compilationRepo.EXPECT().ReplaceEvents(mock.Anything, mock.Anything, int64(6), []int64{}).Return(nil).Once()

		compilation, err := svc.SaveCompilation(t.Context(), model.NewCompilationRequest{Title: "Empty"})
		require.NoError(t, err)
		assert.Empty(t, compilation.Events)
		deps.eventRepo.AssertNotCalled(t, "FindByIDs")
	})

	t.Run("Failed - unknown event", func(t *testing.T) {
		svc, deps := setupCompilationService(t)

		deps.eventRepo.EXPECT().FindByIDs(mock.Anything, []int64{1, 99}).Return([]*model.Event{publishedEvent(1, 10, 0, 0, false)}, nil).Once()

		_, err := svc.SaveCompilation(t.Context(), model.NewCompilationRequest{Events: []int64{1, 99}, Title: "Broken"})
		assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
		deps.compilationRepo.AssertNotCalled(t, "Create")
	})
}

func TestCompilationService_UpdateCompilation(t *testing.T) {
	t.Run("Success - title only keeps events", func(t *testing.T) {
		svc, deps := setupCompilationService(t)
		title := "Autumn"

		deps.compilationRepo.EXPECT().FindByID(mock.Anything, int64(5)).
			Return(&model.Compilation{ID: 5, Title: "Summer", EventIDs: []int64{1}}, nil).Once()
		deps.eventRepo.EXPECT().FindByIDs(mock.Anything, []int64{1}).Return([]*model.Event{{ID: 1, State: model.EventStatePending}}, nil).Once()
		deps.compilationRepo.EXPECT().Update(mock.Anything, mock.Anything, mock.MatchedBy(func(c *model.Compilation) bool {
			return c.Title == "Autumn"
		})).Return(nil).Once()

		compilation, err := svc.UpdateCompilation(t.Context(), 5, model.UpdateCompilationRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Autumn", compilation.Title)
		assert.Len(t, compilation.Events, 1)
		deps.compilationRepo.AssertNotCalled(t, "ReplaceEvents")
	})

	t.Run("Success - clearing events", func(t *testing.T) {
		svc, deps := setupCompilationService(t)
		none := []int64{}

		deps.compilationRepo.EXPECT().FindByID(mock.Anything, int64(5)).
			Return(&model.Compilation{ID: 5, Title: "Summer", EventIDs: []int64{1, 2}}, nil).Once()
		deps.compilationRepo.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		deps.compilationRepo.EXPECT().ReplaceEvents(mock.Anything, mock.Anything, int64(5), []int64{}).Return(nil).Once()

		compilation, err := svc.UpdateCompilation(t.Context(), 5, model.UpdateCompilationRequest{Events: &none})
		require.NoError(t, err)
		assert.Empty(t, compilation.Events)
	})
}

func TestCompilationService_GetCompilations(t *testing.T) {
	svc, deps := setupCompilationService(t)
	page := model.NewPage(0, 10)
	shared := publishedEvent(1, 10, 0, 0, false)
	other := publishedEvent(2, 10, 0, 0, false)

	deps.compilationRepo.EXPECT().List(mock.Anything, (*bool)(nil), page).Return([]*model.Compilation{
		{ID: 1, EventIDs: []int64{1, 2}},
		{ID: 2, EventIDs: []int64{1}},
		{ID: 3},
	}, nil).Once()
	deps.eventRepo.EXPECT().FindByIDs(mock.Anything, []int64{1, 2}).Return([]*model.Event{shared, other}, nil).Once()
	deps.stats.EXPECT().ViewCounts(mock.Anything, mock.Anything).Return([]model.ViewStats{{URI: "/events/1", Hits: 2}}, nil).Once()

	compilations, err := svc.GetCompilations(t.Context(), nil, page)
	require.NoError(t, err)
	require.Len(t, compilations, 3)
	assert.Len(t, compilations[0].Events, 2)
	assert.Len(t, compilations[1].Events, 1)
	assert.Equal(t, int64(2), compilations[1].Events[0].Views)
	assert.Empty(t, compilations[2].Events)
}
