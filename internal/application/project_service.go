package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/uptask/uptask-server/internal/domain/entity"
	repo "github.com/uptask/uptask-server/internal/domain/repository"
)

// ProjectService implements project operations. Every mutation passes
// the ownership gate: the acting identity must equal the record's
// creator.
type ProjectService struct {
	Repo   repo.ProjectRepository
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
}

func NewProjectService(projects repo.ProjectRepository, tasks repo.TaskRepository, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Repo: projects, Tasks: tasks, Logger: logger}
}

// List returns only the caller's projects.
func (s *ProjectService) List(ctx context.Context, creator string) ([]entity.Project, error) {
	return s.Repo.ListByCreator(ctx, creator)
}

// Create persists a project with the creator forced to the caller,
// ignoring any creator in the input.
func (s *ProjectService) Create(ctx context.Context, creator, name string) (*entity.Project, error) {
	p := &entity.Project{Name: name, Creator: creator}
	if err := s.Repo.Create(ctx, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("creator", creator).Error("create project failed")
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, creator, id, name string) (*entity.Project, error) {
	if err := s.authorize(ctx, creator, id); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, id, name)
}

// Delete removes the project and its tasks. The cascade is explicit
// here rather than a store-level constraint so orphan cleanup is
// visible and logged.
func (s *ProjectService) Delete(ctx context.Context, creator, id string) error {
	if err := s.authorize(ctx, creator, id); err != nil {
		return err
	}
	if err := s.Tasks.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"project_id": id, "creator": creator}).Info("project deleted")
	}
	return s.Repo.Delete(ctx, id)
}

func (s *ProjectService) authorize(ctx context.Context, creator, id string) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if p.Creator != creator {
		return ErrForbidden
	}
	return nil
}
