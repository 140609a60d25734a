package repository

import (
	"context"
	"fmt"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompilationRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Compilation, error)
	List(ctx context.Context, pinned *bool, page model.PageRequest) ([]*model.Compilation, error)
	Delete(ctx context.Context, id int64) error

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, title string, pinned bool) (*model.Compilation, error)
	Update(ctx context.Context, tx pgx.Tx, compilation *model.Compilation) error
	ReplaceEvents(ctx context.Context, tx pgx.Tx, id int64, eventIDs []int64) error
}

type CompilationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCompilationRepository(pool *pgxpool.Pool) CompilationRepository {
	return &CompilationRepositoryImpl{
		pool: pool,
	}
}

func compilationNotFound(id int64) error {
	return apperrors.NotFound("Compilation with id=%d was not found", id)
}

// compilationSelect returns each compilation with its event ids in insertion order.
const compilationSelect = `
	SELECT c.id, c.title, c.pinned,
	       COALESCE(ARRAY(SELECT ce.event_id FROM compilation_events ce
	                      WHERE ce.compilation_id = c.id ORDER BY ce.position), '{}') AS event_ids
	FROM compilations c
`

func scanCompilation(row pgx.Row) (*model.Compilation, error) {
	var c model.Compilation
	if err := row.Scan(&c.ID, &c.Title, &c.Pinned, &c.EventIDs); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompilationRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Compilation, error) {
	c, err := scanCompilation(r.pool.QueryRow(ctx, compilationSelect+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, translateError(err, compilationNotFound(id))
	}
	return c, nil
}

func (r *CompilationRepositoryImpl) List(ctx context.Context, pinned *bool, page model.PageRequest) ([]*model.Compilation, error) {
	rows, err := r.pool.Query(ctx, compilationSelect+`
		WHERE ($1::boolean IS NULL OR c.pinned = $1)
		ORDER BY c.id
		LIMIT $2 OFFSET $3
	`, pinned, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	compilations := []*model.Compilation{}
	for rows.Next() {
		c, err := scanCompilation(rows)
		if err != nil {
			return nil, err
		}
		compilations = append(compilations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return compilations, nil
}

func (r *CompilationRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM compilations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return compilationNotFound(id)
	}
	return nil
}

func (r *CompilationRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, title string, pinned bool) (*model.Compilation, error) {
	c := model.Compilation{EventIDs: []int64{}}
	err := tx.QueryRow(ctx, `
		INSERT INTO compilations (title, pinned) VALUES ($1, $2)
		RETURNING id, title, pinned
	`, title, pinned).Scan(&c.ID, &c.Title, &c.Pinned)
	if err != nil {
		return nil, fmt.Errorf("failed to create compilation: %w", translateError(err, nil))
	}
	return &c, nil
}

func (r *CompilationRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, compilation *model.Compilation) error {
	result, err := tx.Exec(ctx, `
		UPDATE compilations SET title = $1, pinned = $2 WHERE id = $3
	`, compilation.Title, compilation.Pinned, compilation.ID)
	if err != nil {
		return translateError(err, nil)
	}
	if result.RowsAffected() == 0 {
		return compilationNotFound(compilation.ID)
	}
	return nil
}

// ReplaceEvents sets the compilation's events to eventIDs, keeping their order.
func (r *CompilationRepositoryImpl) ReplaceEvents(ctx context.Context, tx pgx.Tx, id int64, eventIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM compilation_events WHERE compilation_id = $1`, id); err != nil {
		return err
	}
	if len(eventIDs) == 0 {
		return nil
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO compilation_events (compilation_id, event_id, position)
		SELECT $1, ids.event_id, ids.ord
		FROM unnest($2::bigint[]) WITH ORDINALITY AS ids(event_id, ord)
		ON CONFLICT DO NOTHING
	`, id, eventIDs)
	return translateError(err, nil)
}
