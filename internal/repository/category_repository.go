package repository

import (
	"context"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id int64, name string) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context, page model.PageRequest) ([]*model.Category, error)
}

type CategoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &CategoryRepositoryImpl{
		pool: pool,
	}
}

func categoryNotFound(id int64) error {
	return apperrors.NotFound("Category with id=%d was not found", id)
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		RETURNING id, name
	`, name).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, translateError(err, nil)
	}
	return &c, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, id int64, name string) (*model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, `
		UPDATE categories SET name = $1 WHERE id = $2
		RETURNING id, name
	`, name, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, translateError(err, categoryNotFound(id))
	}
	return &c, nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return translateError(err, nil)
	}
	if result.RowsAffected() == 0 {
		return categoryNotFound(id)
	}
	return nil
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, translateError(err, categoryNotFound(id))
	}
	return &c, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context, page model.PageRequest) ([]*model.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name FROM categories
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
