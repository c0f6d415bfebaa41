package repository

import (
	"context"

	"github.com/uptask/uptask-server/internal/domain/entity"
)

// TaskRepository defines the interface for task store operations.
// Update merges a partial name change with the new state (state always
// wins) and returns the post-update record. DeleteByProject removes a
// project's tasks when the project itself is deleted.
type TaskRepository interface {
	ListByCreatorAndProject(ctx context.Context, creator, project string) ([]entity.Task, error)
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, id string, name, state string) (*entity.Task, error)
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, project string) error
}
