package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/uptask/uptask-server/internal/domain/entity"
	repo "github.com/uptask/uptask-server/internal/domain/repository"
)

// TaskService implements task operations behind the same ownership
// gate as projects.
type TaskService struct {
	Repo   repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(tasks repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: tasks, Logger: logger}
}

// List returns the caller's tasks scoped to one project.
func (s *TaskService) List(ctx context.Context, creator, project string) ([]entity.Task, error) {
	return s.Repo.ListByCreatorAndProject(ctx, creator, project)
}

// Create persists a task with the creator forced to the caller.
func (s *TaskService) Create(ctx context.Context, creator, project, name string) (*entity.Task, error) {
	t := &entity.Task{Name: name, Project: project, Creator: creator}
	if err := s.Repo.Create(ctx, t); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("creator", creator).Error("create task failed")
		}
		return nil, err
	}
	return t, nil
}

// Update applies the partial input merged with the new state; the new
// state overwrites any state carried in the input.
func (s *TaskService) Update(ctx context.Context, creator, id, name, state string) (*entity.Task, error) {
	if err := s.authorize(ctx, creator, id); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, id, name, state)
}

func (s *TaskService) Delete(ctx context.Context, creator, id string) error {
	if err := s.authorize(ctx, creator, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *TaskService) authorize(ctx context.Context, creator, id string) error {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if t.Creator != creator {
		return ErrForbidden
	}
	return nil
}
