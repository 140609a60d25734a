package repository

import (
	"context"
	"fmt"
	"strings"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id int64) (*model.Event, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*model.Event, error)
	FindByInitiator(ctx context.Context, initiatorID int64, page model.PageRequest) ([]*model.Event, error)
	Find(ctx context.Context, filter model.EventFilter, page model.PageRequest) ([]*model.Event, error)

	// Transaction methods
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int64) (*model.Event, error)
	Update(ctx context.Context, tx pgx.Tx, event *model.Event) (*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventSelect = `
	SELECT e.id, e.annotation, c.id, c.name,
	       (SELECT COUNT(*) FROM requests r WHERE r.event_id = e.id AND r.state = 'CONFIRMED') AS confirmed_requests,
	       e.created_on, e.description, e.event_date, u.id, u.name,
	       e.lat, e.lon, e.paid, e.participant_limit, e.published_on,
	       e.request_moderation, e.state, e.title
	FROM events e
	JOIN categories c ON c.id = e.category_id
	JOIN users u ON u.id = e.initiator_id
`

func eventNotFound(id int64) error {
	return apperrors.NotFound("Event with id=%d was not found", id)
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID,
		&e.Annotation,
		&e.Category.ID,
		&e.Category.Name,
		&e.ConfirmedRequests,
		&e.CreatedOn,
		&e.Description,
		&e.EventDate,
		&e.Initiator.ID,
		&e.Initiator.Name,
		&e.Location.Lat,
		&e.Location.Lon,
		&e.Paid,
		&e.ParticipantLimit,
		&e.PublishedOn,
		&e.RequestModeration,
		&e.State,
		&e.Title,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEvents(rows pgx.Rows) ([]*model.Event, error) {
	defer rows.Close()

	events := []*model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (
			annotation, category_id, created_on, description, event_date, initiator_id,
			lat, lon, paid, participant_limit, published_on, request_moderation, state, title
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		event.Annotation, event.Category.ID, event.CreatedOn, event.Description, event.EventDate,
		event.Initiator.ID, event.Location.Lat, event.Location.Lon, event.Paid, event.ParticipantLimit,
		event.PublishedOn, event.RequestModeration, event.State, event.Title,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", translateError(err, nil))
	}

	return r.FindByID(ctx, id)
}

// Update writes every mutable column of event. Callers apply edits to a loaded copy first.
// Update writes every column of event and reads it back within tx.
func (r *EventRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, event *model.Event) (*model.Event, error) {
	query := `
		UPDATE events
		SET annotation = $1, category_id = $2, description = $3, event_date = $4,
		    lat = $5, lon = $6, paid = $7, participant_limit = $8, published_on = $9,
		    request_moderation = $10, state = $11, title = $12
		WHERE id = $13
	`

	result, err := tx.Exec(ctx, query,
		event.Annotation, event.Category.ID, event.Description, event.EventDate,
		event.Location.Lat, event.Location.Lon, event.Paid, event.ParticipantLimit, event.PublishedOn,
		event.RequestModeration, event.State, event.Title, event.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", translateError(err, nil))
	}
	if result.RowsAffected() == 0 {
		return nil, eventNotFound(event.ID)
	}

	updated, err := scanEvent(tx.QueryRow(ctx, eventSelect+` WHERE e.id = $1`, event.ID))
	if err != nil {
		return nil, translateError(err, eventNotFound(event.ID))
	}
	return updated, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Event, error) {
	e, err := scanEvent(r.pool.QueryRow(ctx, eventSelect+` WHERE e.id = $1`, id))
	if err != nil {
		return nil, translateError(err, eventNotFound(id))
	}
	return e, nil
}

// FindByIDs returns the events in the order of ids. Unknown ids are skipped.
func (r *EventRepositoryImpl) FindByIDs(ctx context.Context, ids []int64) ([]*model.Event, error) {
	if len(ids) == 0 {
		return []*model.Event{}, nil
	}

	rows, err := r.pool.Query(ctx, eventSelect+`
		WHERE e.id = ANY($1)
		ORDER BY array_position($1, e.id)
	`, ids)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *EventRepositoryImpl) FindByInitiator(ctx context.Context, initiatorID int64, page model.PageRequest) ([]*model.Event, error) {
	rows, err := r.pool.Query(ctx, eventSelect+`
		WHERE e.initiator_id = $1
		ORDER BY e.id
		LIMIT $2 OFFSET $3
	`, initiatorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

// Find applies every non-zero predicate of filter.
func (r *EventRepositoryImpl) Find(ctx context.Context, filter model.EventFilter, page model.PageRequest) ([]*model.Event, error) {
	conds := []string{}
	args := []interface{}{}
	argPos := 1

	if len(filter.InitiatorIDs) > 0 {
		conds = append(conds, fmt.Sprintf("e.initiator_id = ANY($%d)", argPos))
		args = append(args, filter.InitiatorIDs)
		argPos++
	}

	if len(filter.States) > 0 {
		states := make([]string, 0, len(filter.States))
		for _, s := range filter.States {
			states = append(states, string(s))
		}
		conds = append(conds, fmt.Sprintf("e.state = ANY($%d)", argPos))
		args = append(args, states)
		argPos++
	}

	if len(filter.CategoryIDs) > 0 {
		conds = append(conds, fmt.Sprintf("e.category_id = ANY($%d)", argPos))
		args = append(args, filter.CategoryIDs)
		argPos++
	}

	if filter.Text != "" {
		conds = append(conds, fmt.Sprintf("(e.annotation ILIKE $%d OR e.description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+escapeLike(filter.Text)+"%")
		argPos++
	}

	if filter.Paid != nil {
		conds = append(conds, fmt.Sprintf("e.paid = $%d", argPos))
		args = append(args, *filter.Paid)
		argPos++
	}

	if filter.RangeStart != nil {
		conds = append(conds, fmt.Sprintf("e.event_date >= $%d", argPos))
		args = append(args, *filter.RangeStart)
		argPos++
	}

	if filter.RangeEnd != nil {
		conds = append(conds, fmt.Sprintf("e.event_date <= $%d", argPos))
		args = append(args, *filter.RangeEnd)
		argPos++
	}

	if filter.OnlyAvailable {
		conds = append(conds, `(e.participant_limit = 0 OR e.participant_limit >
			(SELECT COUNT(*) FROM requests r WHERE r.event_id = e.id AND r.state = 'CONFIRMED'))`)
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	orderBy := "e.id"
	if filter.SortByDate {
		orderBy = "e.event_date, e.id"
	}

	args = append(args, page.Limit(), page.Offset())
	query := fmt.Sprintf(`%s %s ORDER BY %s LIMIT $%d OFFSET $%d`, eventSelect, where, orderBy, argPos, argPos+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

// FindByIDWithLock locks the event row for the rest of tx, then reads it.
// Concurrent workflow mutations on the same event queue behind the lock.
func (r *EventRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int64) (*model.Event, error) {
	var locked int64
	err := tx.QueryRow(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		return nil, translateError(err, eventNotFound(id))
	}

	e, err := scanEvent(tx.QueryRow(ctx, eventSelect+` WHERE e.id = $1`, id))
	if err != nil {
		return nil, translateError(err, eventNotFound(id))
	}
	return e, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
