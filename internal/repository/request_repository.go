package repository

import (
	"context"
	"fmt"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Request, error)
	FindByEventID(ctx context.Context, eventID int64) ([]*model.Request, error)
	FindByRequesterID(ctx context.Context, requesterID int64) ([]*model.Request, error)

	// Transaction methods
	UpdateState(ctx context.Context, tx pgx.Tx, id int64, state model.RequestState) (*model.Request, error)
	Create(ctx context.Context, tx pgx.Tx, request *model.Request) (*model.Request, error)
	ExistsActive(ctx context.Context, tx pgx.Tx, eventID int64, requesterID int64) (bool, error)
	CountByIDsAndState(ctx context.Context, tx pgx.Tx, eventID int64, ids []int64, state model.RequestState) (int, error)
	CountByEventAndState(ctx context.Context, tx pgx.Tx, eventID int64, state model.RequestState) (int64, error)
	UpdateStateByIDs(ctx context.Context, tx pgx.Tx, eventID int64, ids []int64, from model.RequestState, to model.RequestState) ([]*model.Request, error)
	UpdateStateByEvent(ctx context.Context, tx pgx.Tx, eventID int64, from model.RequestState, to model.RequestState) ([]*model.Request, error)
}

type RequestRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) RequestRepository {
	return &RequestRepositoryImpl{
		pool: pool,
	}
}

const requestColumns = `id, created, event_id, requester_id, state`

func scanRequest(row pgx.Row) (*model.Request, error) {
	var req model.Request
	if err := row.Scan(&req.ID, &req.Created, &req.EventID, &req.RequesterID, &req.State); err != nil {
		return nil, err
	}
	return &req, nil
}

func queryRequests(ctx context.Context, q querier, query string, args ...any) ([]*model.Request, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []*model.Request{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func requestNotFound(id int64) error {
	return apperrors.NotFound("Request with id=%d was not found", id)
}

func (r *RequestRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, request *model.Request) (*model.Request, error) {
	query := `
		INSERT INTO requests (created, event_id, requester_id, state)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + requestColumns

	created, err := scanRequest(tx.QueryRow(ctx, query,
		request.Created, request.EventID, request.RequesterID, request.State,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", translateError(err, nil))
	}
	return created, nil
}

func (r *RequestRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Request, error) {
	req, err := scanRequest(r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id))
	if err != nil {
		return nil, translateError(err, requestNotFound(id))
	}
	return req, nil
}

func (r *RequestRepositoryImpl) FindByEventID(ctx context.Context, eventID int64) ([]*model.Request, error) {
	return queryRequests(ctx, r.pool, `
		SELECT `+requestColumns+`
		FROM requests
		WHERE event_id = $1
		ORDER BY id
	`, eventID)
}

func (r *RequestRepositoryImpl) FindByRequesterID(ctx context.Context, requesterID int64) ([]*model.Request, error) {
	return queryRequests(ctx, r.pool, `
		SELECT `+requestColumns+`
		FROM requests
		WHERE requester_id = $1
		ORDER BY id
	`, requesterID)
}

func (r *RequestRepositoryImpl) UpdateState(ctx context.Context, tx pgx.Tx, id int64, state model.RequestState) (*model.Request, error) {
	req, err := scanRequest(tx.QueryRow(ctx, `
		UPDATE requests SET state = $1 WHERE id = $2
		RETURNING `+requestColumns, state, id))
	if err != nil {
		return nil, translateError(err, requestNotFound(id))
	}
	return req, nil
}

func (r *RequestRepositoryImpl) ExistsActive(ctx context.Context, tx pgx.Tx, eventID int64, requesterID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM requests
			WHERE event_id = $1 AND requester_id = $2 AND state <> 'CANCELED'
		)
	`, eventID, requesterID).Scan(&exists)
	return exists, err
}

// CountByIDsAndState counts how many of ids belong to eventID and are in state.
func (r *RequestRepositoryImpl) CountByIDsAndState(ctx context.Context, tx pgx.Tx, eventID int64, ids []int64, state model.RequestState) (int, error) {
	var n int
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM requests
		WHERE id = ANY($1) AND event_id = $2 AND state = $3
	`, ids, eventID, state).Scan(&n)
	return n, err
}

func (r *RequestRepositoryImpl) CountByEventAndState(ctx context.Context, tx pgx.Tx, eventID int64, state model.RequestState) (int64, error) {
	var n int64
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM requests WHERE event_id = $1 AND state = $2
	`, eventID, state).Scan(&n)
	return n, err
}

// UpdateStateByIDs moves the requests of eventID listed in ids from one state to another.
// Rows that no longer match from are left alone and missing from the result.
func (r *RequestRepositoryImpl) UpdateStateByIDs(ctx context.Context, tx pgx.Tx, eventID int64, ids []int64, from model.RequestState, to model.RequestState) ([]*model.Request, error) {
	return queryRequests(ctx, tx, `
		WITH updated AS (
			UPDATE requests SET state = $1
			WHERE id = ANY($2) AND event_id = $3 AND state = $4
			RETURNING `+requestColumns+`
		)
		SELECT `+requestColumns+` FROM updated ORDER BY id
	`, to, ids, eventID, from)
}

// UpdateStateByEvent moves every request of eventID in state from to state to.
func (r *RequestRepositoryImpl) UpdateStateByEvent(ctx context.Context, tx pgx.Tx, eventID int64, from model.RequestState, to model.RequestState) ([]*model.Request, error) {
	return queryRequests(ctx, tx, `
		WITH updated AS (
			UPDATE requests SET state = $1 WHERE event_id = $2 AND state = $3
			RETURNING `+requestColumns+`
		)
		SELECT `+requestColumns+` FROM updated ORDER BY id
	`, to, eventID, from)
}
