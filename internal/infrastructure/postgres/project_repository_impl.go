package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uptask/uptask-server/internal/domain/entity"
	"github.com/uptask/uptask-server/internal/domain/repository"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) ListByCreator(ctx context.Context, creator string) ([]entity.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, creator, created_at, updated_at
		FROM projects
		WHERE creator = $1
		ORDER BY created_at
	`, creator)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Project{}
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Creator, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (name, creator)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Creator)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	p := &entity.Project{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, creator, created_at, updated_at
		FROM projects
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Name, &p.Creator, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

// Update applies a partial update: an empty name leaves the stored name
// in place. Creator is deliberately absent from the SET list.
func (r *ProjectRepository) Update(ctx context.Context, id string, name string) (*entity.Project, error) {
	p := &entity.Project{}

	row := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET name = COALESCE(NULLIF($2, ''), name), updated_at = now()
		WHERE id = $1
		RETURNING id, name, creator, created_at, updated_at
	`, id, name)

	if err := row.Scan(&p.ID, &p.Name, &p.Creator, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
