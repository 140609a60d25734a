package service

import (
	"context"
	"sort"

	"eventhub/internal/cache"
	"eventhub/internal/model"
	"eventhub/internal/stats"
	"eventhub/pkg/clock"
	"eventhub/pkg/logger"

	"go.uber.org/zap"
)

// ViewAggregator fills Event.Views from the stats service.
type ViewAggregator struct {
	stats stats.Client
	cache cache.ViewsCache
	clock clock.Clock
}

// NewViewAggregator builds an aggregator. viewsCache may be nil.
func NewViewAggregator(statsClient stats.Client, viewsCache cache.ViewsCache, clk clock.Clock) *ViewAggregator {
	return &ViewAggregator{
		stats: statsClient,
		cache: viewsCache,
		clock: clk,
	}
}

// Attach sets views on every published event with one stats query over
// [earliest publishedOn, now]. Other events keep zero views.
func (a *ViewAggregator) Attach(ctx context.Context, events []*model.Event) error {
	published := make([]*model.Event, 0, len(events))
	for _, e := range events {
		e.Views = 0
		if e.IsPublished() && e.PublishedOn != nil {
			published = append(published, e)
		}
	}
	if len(published) == 0 {
		return nil
	}

	sort.SliceStable(published, func(i, j int) bool {
		return published[i].PublishedOn.Before(*published[j].PublishedOn)
	})

	uris := make([]string, 0, len(published))
	for _, e := range published {
		uris = append(uris, e.URI())
	}

	start := *published[0].PublishedOn
	end := a.clock.Now()
	if end.Before(start) {
		end = start
	}

	rows, err := a.stats.ViewCounts(ctx, model.ViewStatsQuery{
		Start:  start,
		End:    end,
		URIs:   uris,
		Unique: true,
	})
	if err != nil {
		return err
	}

	byID := make(map[int64]int64, len(rows))
	for _, row := range rows {
		if id, ok := model.EventIDFromURI(row.URI); ok {
			byID[id] += row.Hits
		}
	}
	for _, e := range published {
		e.Views = byID[e.ID]
	}
	return nil
}

// AttachOne sets views for a single event over [publishedOn, eventDate].
func (a *ViewAggregator) AttachOne(ctx context.Context, e *model.Event) error {
	e.Views = 0
	if !e.IsPublished() || e.PublishedOn == nil {
		return nil
	}

	start, end := *e.PublishedOn, e.EventDate
	if end.Before(start) {
		return nil
	}

	if a.cache != nil {
		views, ok, err := a.cache.Get(ctx, e.ID, start, end)
		if err != nil {
			logger.WithComponent("cache").Warn("views cache read failed", zap.Int64("event_id", e.ID), zap.Error(err))
		} else if ok {
			e.Views = views
			return nil
		}
	}

	rows, err := a.stats.ViewCounts(ctx, model.ViewStatsQuery{
		Start:  start,
		End:    end,
		URIs:   []string{e.URI()},
		Unique: true,
	})
	if err != nil {
		return err
	}

	for _, row := range rows {
		if id, ok := model.EventIDFromURI(row.URI); ok && id == e.ID {
			e.Views += row.Hits
		}
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, e.ID, start, end, e.Views); err != nil {
			logger.WithComponent("cache").Warn("views cache write failed", zap.Int64("event_id", e.ID), zap.Error(err))
		}
	}
	return nil
}
