package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uptask/uptask-server/internal/domain/entity"
	"github.com/uptask/uptask-server/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) ListByCreatorAndProject(ctx context.Context, creator, project string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, state, project, creator, created_at, updated_at
		FROM tasks
		WHERE creator = $1 AND project = $2
		ORDER BY created_at
	`, creator, project)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Task{}
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.State, &t.Project, &t.Creator,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (name, state, project, creator)
		VALUES ($1, COALESCE(NULLIF($2, ''), 'pending'), $3, $4)
		RETURNING id, state, created_at, updated_at
	`, t.Name, t.State, t.Project, t.Creator)

	return row.Scan(&t.ID, &t.State, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t := &entity.Task{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, state, project, creator, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.Name, &t.State, &t.Project, &t.Creator,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

// Update merges the partial input with the new state. State is always
// written; name only when non-empty. Creator and project never change.
func (r *TaskRepository) Update(ctx context.Context, id string, name, state string) (*entity.Task, error) {
	t := &entity.Task{}

	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET name = COALESCE(NULLIF($2, ''), name), state = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, state, project, creator, created_at, updated_at
	`, id, name, state)

	if err := row.Scan(&t.ID, &t.Name, &t.State, &t.Project, &t.Creator,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteByProject(ctx context.Context, project string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE project = $1`, project)
	return err
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
