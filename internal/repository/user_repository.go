package repository

import (
	"context"
	"fmt"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, ids []int64, page model.PageRequest) ([]*model.User, error)
	FindInitiators(ctx context.Context, sort model.InitiatorSort, profile *model.UserProfile, page model.PageRequest) ([]*model.EventInitiator, error)

	// Transaction methods
	UpdateProfile(ctx context.Context, tx pgx.Tx, id int64, profile model.UserProfile) (*model.User, error)
}

type UserRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &UserRepositoryImpl{
		pool: pool,
	}
}

func userNotFound(id int64) error {
	return apperrors.NotFound("User with id=%d was not found", id)
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (name, email, profile)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, profile
	`

	var created model.User
	err := r.pool.QueryRow(ctx, query, user.Name, user.Email, user.Profile).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.Profile,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", translateError(err, nil))
	}

	return &created, nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateError(err, nil)
	}
	if result.RowsAffected() == 0 {
		return userNotFound(id)
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, profile FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.Profile)
	if err != nil {
		return nil, translateError(err, userNotFound(id))
	}
	return &user, nil
}

// List returns users with the given ids, or all users when ids is empty.
func (r *UserRepositoryImpl) List(ctx context.Context, ids []int64, page model.PageRequest) ([]*model.User, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if len(ids) > 0 {
		rows, err = r.pool.Query(ctx, `
			SELECT id, name, email, profile FROM users
			WHERE id = ANY($1)
			ORDER BY id
			LIMIT $2 OFFSET $3
		`, ids, page.Limit(), page.Offset())
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT id, name, email, profile FROM users
			ORDER BY id
			LIMIT $1 OFFSET $2
		`, page.Limit(), page.Offset())
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Profile); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) FindInitiators(ctx context.Context, sort model.InitiatorSort, profile *model.UserProfile, page model.PageRequest) ([]*model.EventInitiator, error) {
	orderBy := "events DESC, subscribers DESC, u.id"
	if sort == model.InitiatorSortMostPopular {
		orderBy = "subscribers DESC, events DESC, u.id"
	}

	var profileArg *string
	if profile != nil {
		p := string(*profile)
		profileArg = &p
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.name, u.profile,
		       (SELECT COUNT(*) FROM events e WHERE e.initiator_id = u.id) AS events,
		       (SELECT COUNT(*) FROM subscriptions s
		         WHERE s.subscribed_to_id = u.id AND s.state = 'CONFIRMED') AS subscribers
		FROM users u
		WHERE ($1::varchar IS NULL OR u.profile = $1)
		ORDER BY %s
		LIMIT $2 OFFSET $3
	`, orderBy)

	rows, err := r.pool.Query(ctx, query, profileArg, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	initiators := []*model.EventInitiator{}
	for rows.Next() {
		var i model.EventInitiator
		if err := rows.Scan(&i.ID, &i.Name, &i.Profile, &i.Events, &i.Subscribers); err != nil {
			return nil, err
		}
		initiators = append(initiators, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return initiators, nil
}

func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, tx pgx.Tx, id int64, profile model.UserProfile) (*model.User, error) {
	var user model.User
	err := tx.QueryRow(ctx, `
		UPDATE users SET profile = $1 WHERE id = $2
		RETURNING id, name, email, profile
	`, profile, id).Scan(&user.ID, &user.Name, &user.Email, &user.Profile)
	if err != nil {
		return nil, translateError(err, userNotFound(id))
	}
	return &user, nil
}
