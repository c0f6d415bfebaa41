package repository

import (
	"context"

	"github.com/uptask/uptask-server/internal/domain/entity"
)

// ProjectRepository defines the interface for project store operations.
// Update applies a partial update (empty name means unchanged) and
// returns the post-update record.
type ProjectRepository interface {
	ListByCreator(ctx context.Context, creator string) ([]entity.Project, error)
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	Update(ctx context.Context, id string, name string) (*entity.Project, error)
	Delete(ctx context.Context, id string) error
}
