package application

import (
	"context"
	"fmt"
	"time"

	"github.com/uptask/uptask-server/internal/domain/entity"
	"github.com/uptask/uptask-server/internal/domain/repository"
)

// in-memory repositories backing the service tests

type memUserRepo struct {
	users  map[string]*entity.User // by id
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memProjectRepo struct {
	projects map[string]*entity.Project
	nextID   int
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: map[string]*entity.Project{}}
}

func (r *memProjectRepo) ListByCreator(_ context.Context, creator string) ([]entity.Project, error) {
	out := []entity.Project{}
	for _, p := range r.projects {
		if p.Creator == creator {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProjectRepo) Create(_ context.Context, p *entity.Project) error {
	r.nextID++
	p.ID = fmt.Sprintf("project-%d", r.nextID)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	if p, ok := r.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memProjectRepo) Update(_ context.Context, id string, name string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if name != "" {
		p.Name = name
	}
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

type memTaskRepo struct {
	tasks  map[string]*entity.Task
	nextID int
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *memTaskRepo) ListByCreatorAndProject(_ context.Context, creator, project string) ([]entity.Task, error) {
	out := []entity.Task{}
	for _, t := range r.tasks {
		if t.Creator == creator && t.Project == project {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.nextID++
	t.ID = fmt.Sprintf("task-%d", r.nextID)
	if t.State == "" {
		t.State = "pending"
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	if t, ok := r.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memTaskRepo) Update(_ context.Context, id string, name, state string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if name != "" {
		t.Name = name
	}
	t.State = state
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) DeleteByProject(_ context.Context, project string) error {
	for id, t := range r.tasks {
		if t.Project == project {
			delete(r.tasks, id)
		}
	}
	return nil
}

var (
	_ repository.UserRepository    = (*memUserRepo)(nil)
	_ repository.ProjectRepository = (*memProjectRepo)(nil)
	_ repository.TaskRepository    = (*memTaskRepo)(nil)
)
