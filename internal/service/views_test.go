package service

import (
	"errors"
	"slices"
	"testing"
	"time"

	cachemocks "eventhub/internal/cache/mocks"
	"eventhub/internal/model"
	statsmocks "eventhub/internal/stats/mocks"
	apperrors "eventhub/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestViewAggregator_Attach(t *testing.T) {
	t.Run("Success - unpublished events skip the stats service", func(t *testing.T) {
		statsClient := statsmocks.NewMockClient(t)
		agg := NewViewAggregator(statsClient, nil, testClock())

		pending := &model.Event{ID: 1, State: model.EventStatePending, Views: 7}
		require.NoError(t, agg.Attach(t.Context(), []*model.Event{pending}))

		assert.Equal(t, int64(0), pending.Views)
		statsClient.AssertNotCalled(t, "ViewCounts")
	})

	t.Run("Success - one query over the earliest publication window", func(t *testing.T) {
		statsClient := statsmocks.NewMockClient(t)
		agg := NewViewAggregator(statsClient, nil, testClock())

		older := publishedEvent(1, 10, 0, 0, false)
		newer := publishedEvent(2, 10, 0, 0, false)
		newerPublished := testNow.Add(-time.Hour)
		newer.PublishedOn = &newerPublished
		silent := publishedEvent(3, 10, 0, 0, false)
		draft := &model.Event{ID: 4, State: model.EventStatePending}

		statsClient.EXPECT().ViewCounts(mock.Anything, mock.MatchedBy(func(q model.ViewStatsQuery) bool {
			return q.Start.Equal(*older.PublishedOn) &&
				q.End.Equal(testNow) &&
				q.Unique &&
				slices.Equal([]string{"/events/1", "/events/3", "/events/2"}, q.URIs)
		})).Return([]model.ViewStats{
			{App: "main", URI: "/events/1", Hits: 5},
			{App: "main", URI: "/events/2", Hits: 2},
			{App: "main", URI: "/events", Hits: 40},
		}, nil).Once()

		events := []*model.Event{newer, draft, older, silent}
		require.NoError(t, agg.Attach(t.Context(), events))

		assert.Equal(t, int64(5), older.Views)
		assert.Equal(t, int64(2), newer.Views)
		assert.Equal(t, int64(0), silent.Views)
		assert.Equal(t, int64(0), draft.Views)
		// input order is preserved
		assert.Equal(t, int64(2), events[0].ID)
	})

	t.Run("Failed - stats service error propagates", func(t *testing.T) {
		statsClient := statsmocks.NewMockClient(t)
		agg := NewViewAggregator(statsClient, nil, testClock())

		statsClient.EXPECT().ViewCounts(mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrStatsUnavailable).Once()

		err := agg.Attach(t.Context(), []*model.Event{publishedEvent(1, 10, 0, 0, false)})
		assert.ErrorIs(t, err, apperrors.ErrStatsUnavailable)
	})
}

func TestViewAggregator_AttachOne(t *testing.T) {
	t.Run("Success - queries publication to event date", func(t *testing.T) {
		statsClient := statsmocks.NewMockClient(t)
		agg := NewViewAggregator(statsClient, nil, testClock())
		event := publishedEvent(1, 10, 0, 0, false)

		statsClient.EXPECT().ViewCounts(mock.Anything, model.ViewStatsQuery{
			Start:  *event.PublishedOn,
			End:    event.EventDate,
			URIs:   []string{"/events/1"},
			Unique: true,
		}).Return([]model.ViewStats{{App: "main", URI: "/events/1", Hits: 9}}, nil).Once()

		require.NoError(t, agg.AttachOne(t.Context(), event))
		assert.Equal(t, int64(9), event.Views)
	})

	t.Run("Success - event date before publication yields zero", func(t *testing.T) {
		statsClient := statsmocks.NewMockClient(t)
		agg := NewViewAggregator(statsClient, nil, testClock())
		event := publishedEvent(1, 10, 0, 0, false)
		event.EventDate = event.PublishedOn.Add(-time.Hour)

		require.NoError(t, agg.AttachOne(t.Context(), event))
		assert.Equal(t, int64(0), event.Views)
		statsClient.AssertNotCalled(t, "ViewCounts")
	})

	t.Run("Success - cache hit skips the stats service", func(t *testing.T) {
		statsClient := statsmocks.NewMockClient(t)
		viewsCache := cachemocks.NewMockViewsCache(t)
		agg := NewViewAggregator(statsClient, viewsCache, testClock())
		event := publishedEvent(1, 10, 0, 0, false)

		viewsCache.EXPECT().Get(mock.Anything, int64(1), *event.PublishedOn, event.EventDate).Return(int64(11), true, nil).Once()

		require.NoError(t, agg.AttachOne(t.Context(), event))
		assert.Equal(t, int64(11), event.Views)
		statsClient.AssertNotCalled(t, "ViewCounts")
	})

	t.Run("Success - cache read failure falls back to the stats service", func(t *testing.T) {
		statsClient := statsmocks.NewMockClient(t)
		viewsCache := cachemocks.NewMockViewsCache(t)
		agg := NewViewAggregator(statsClient, viewsCache, testClock())
		event := publishedEvent(1, 10, 0, 0, false)

		viewsCache.EXPECT().Get(mock.Anything, int64(1), *event.PublishedOn, event.EventDate).Return(int64(0), false, errors.New("connection refused")).Once()
		statsClient.EXPECT().ViewCounts(mock.Anything, model.ViewStatsQuery{
			Start:  *event.PublishedOn,
			End:    event.EventDate,
			URIs:   []string{"/events/1"},
			Unique: true,
		}).Return([]model.ViewStats{{URI: "/events/1", Hits: 4}}, nil).Once()
		viewsCache.EXPECT().Set(mock.Anything, int64(1), *event.PublishedOn, event.EventDate, int64(4)).Return(nil).Once()

		require.NoError(t, agg.AttachOne(t.Context(), event))
		assert.Equal(t, int64(4), event.Views)
	})

	t.Run("Success - cache write failure is not returned", func(t *testing.T) {
		statsClient := statsmocks.NewMockClient(t)
		viewsCache := cachemocks.NewMockViewsCache(t)
		agg := NewViewAggregator(statsClient, viewsCache, testClock())
		event := publishedEvent(1, 10, 0, 0, false)

		viewsCache.EXPECT().Get(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(int64(0), false, nil).Once()
		statsClient.EXPECT().ViewCounts(mock.Anything, mock.Anything).Return([]model.ViewStats{{URI: "/events/1", Hits: 6}}, nil).Once()
		viewsCache.EXPECT().Set(mock.Anything, int64(1), mock.Anything, mock.Anything, int64(6)).Return(errors.New("connection refused")).Once()

		require.NoError(t, agg.AttachOne(t.Context(), event))
		assert.Equal(t, int64(6), event.Views)
	})

	t.Run("Failed - stats error is not cached", func(t *testing.T) {
		statsClient := statsmocks.NewMockClient(t)
		viewsCache := cachemocks.NewMockViewsCache(t)
		agg := NewViewAggregator(statsClient, viewsCache, testClock())
		event := publishedEvent(1, 10, 0, 0, false)

		viewsCache.EXPECT().Get(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(int64(0), false, nil).Once()
		statsClient.EXPECT().ViewCounts(mock.Anything, mock.Anything).Return(nil, apperrors.ErrStatsUnavailable).Once()

		err := agg.AttachOne(t.Context(), event)

		assert.ErrorIs(t, err, apperrors.ErrStatsUnavailable)
		viewsCache.AssertNotCalled(t, "Set")
	})
}

