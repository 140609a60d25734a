package repository

import (
	"context"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscriberID int64, subscribedToID int64, state model.SubscriptionState) (*model.Subscription, error)
	Find(ctx context.Context, subscriberID int64, subscribedToID int64) (*model.Subscription, error)
	Delete(ctx context.Context, subscriberID int64, subscribedToID int64) error
	UpdateState(ctx context.Context, id int64, state model.SubscriptionState) (*model.Subscription, error)
	List(ctx context.Context, userID int64, direction model.SubscriptionDirection, state *model.SubscriptionState, page model.PageRequest) ([]*model.Subscription, error)

	// Transaction methods
	ConfirmPending(ctx context.Context, tx pgx.Tx, subscribedToID int64) (int64, error)
}

type SubscriptionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		pool: pool,
	}
}

const subscriptionSelect = `
	SELECT s.id, sub.id, sub.name, tgt.id, tgt.name, s.state
	FROM subscriptions s
	JOIN users sub ON sub.id = s.subscriber_id
	JOIN users tgt ON tgt.id = s.subscribed_to_id
`

func subscriptionNotFound(subscriberID, subscribedToID int64) error {
	return apperrors.NotFound("Subscription of user id=%d to user id=%d was not found", subscriberID, subscribedToID)
}

func scanSubscription(row pgx.Row) (*model.Subscription, error) {
	var s model.Subscription
	err := row.Scan(&s.ID, &s.Subscriber.ID, &s.Subscriber.Name, &s.SubscribedTo.ID, &s.SubscribedTo.Name, &s.State)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscriberID int64, subscribedToID int64, state model.SubscriptionState) (*model.Subscription, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO subscriptions (subscriber_id, subscribed_to_id, state)
		VALUES ($1, $2, $3)
		RETURNING id
	`, subscriberID, subscribedToID, state).Scan(&id)
	if err != nil {
		return nil, translateError(err, nil)
	}
	return scanSubscription(r.pool.QueryRow(ctx, subscriptionSelect+` WHERE s.id = $1`, id))
}

func (r *SubscriptionRepositoryImpl) Find(ctx context.Context, subscriberID int64, subscribedToID int64) (*model.Subscription, error) {
	s, err := scanSubscription(r.pool.QueryRow(ctx,
		subscriptionSelect+` WHERE s.subscriber_id = $1 AND s.subscribed_to_id = $2`,
		subscriberID, subscribedToID,
	))
	if err != nil {
		return nil, translateError(err, subscriptionNotFound(subscriberID, subscribedToID))
	}
	return s, nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, subscriberID int64, subscribedToID int64) error {
	result, err := r.pool.Exec(ctx, `
		DELETE FROM subscriptions WHERE subscriber_id = $1 AND subscribed_to_id = $2
	`, subscriberID, subscribedToID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return subscriptionNotFound(subscriberID, subscribedToID)
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) UpdateState(ctx context.Context, id int64, state model.SubscriptionState) (*model.Subscription, error) {
	result, err := r.pool.Exec(ctx, `UPDATE subscriptions SET state = $1 WHERE id = $2`, state, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.NotFound("Subscription with id=%d was not found", id)
	}
	return scanSubscription(r.pool.QueryRow(ctx, subscriptionSelect+` WHERE s.id = $1`, id))
}

// List returns subscriptions made by userID (FROM_ME) or made to userID (TO_ME).
func (r *SubscriptionRepositoryImpl) List(ctx context.Context, userID int64, direction model.SubscriptionDirection, state *model.SubscriptionState, page model.PageRequest) ([]*model.Subscription, error) {
	column := "s.subscriber_id"
	if direction == model.SubscriptionDirectionToMe {
		column = "s.subscribed_to_id"
	}

	var stateArg *string
	if state != nil {
		st := string(*state)
		stateArg = &st
	}

	rows, err := r.pool.Query(ctx, subscriptionSelect+`
		WHERE `+column+` = $1 AND ($2::varchar IS NULL OR s.state = $2)
		ORDER BY s.id
		LIMIT $3 OFFSET $4
	`, userID, stateArg, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*model.Subscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}

// ConfirmPending confirms every pending subscription to subscribedToID and returns how many changed.
func (r *SubscriptionRepositoryImpl) ConfirmPending(ctx context.Context, tx pgx.Tx, subscribedToID int64) (int64, error) {
	result, err := tx.Exec(ctx, `
		UPDATE subscriptions SET state = 'CONFIRMED'
		WHERE subscribed_to_id = $1 AND state = 'PENDING'
	`, subscribedToID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
