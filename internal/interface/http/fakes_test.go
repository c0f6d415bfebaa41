package handlers_test

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uptask/uptask-server/internal/application"
	"github.com/uptask/uptask-server/internal/domain/entity"
	"github.com/uptask/uptask-server/internal/domain/repository"
	handlers "github.com/uptask/uptask-server/internal/interface/http"
	"github.com/uptask/uptask-server/internal/interface/middleware"
	"github.com/uptask/uptask-server/internal/router"
	"github.com/uptask/uptask-server/internal/router/modules"
	"github.com/uptask/uptask-server/pkg/helpers"
	"github.com/uptask/uptask-server/pkg/validation"
)

type memStore struct {
	users    map[string]*entity.User
	projects map[string]*entity.Project
	tasks    map[string]*entity.Task
	seq      int
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*entity.User{},
		projects: map[string]*entity.Project{},
		tasks:    map[string]*entity.Task{},
	}
}

func (s *memStore) id(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	u.ID = r.s.id("user")
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memProjects struct{ s *memStore }

func (r memProjects) ListByCreator(_ context.Context, creator string) ([]entity.Project, error) {
	out := []entity.Project{}
	for _, p := range r.s.projects {
		if p.Creator == creator {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r memProjects) Create(_ context.Context, p *entity.Project) error {
	p.ID = r.s.id("project")
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}

func (r memProjects) GetByID(_ context.Context, id string) (*entity.Project, error) {
	if p, ok := r.s.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r memProjects) Update(_ context.Context, id string, name string) (*entity.Project, error) {
	p, ok := r.s.projects[id]
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

func (r memProjects) Delete(_ context.Context, id string) error {
	if _, ok := r.s.projects[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.projects, id)
	return nil
}

type memTasks struct{ s *memStore }

func (r memTasks) ListByCreatorAndProject(_ context.Context, creator, project string) ([]entity.Task, error) {
	out := []entity.Task{}
	for _, t := range r.s.tasks {
		if t.Creator == creator && t.Project == project {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r memTasks) Create(_ context.Context, t *entity.Task) error {
	t.ID = r.s.id("task")
	if t.State == "" {
		t.State = "pending"
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.s.tasks[t.ID] = &cp
	return nil
}

func (r memTasks) GetByID(_ context.Context, id string) (*entity.Task, error) {
	if t, ok := r.s.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r memTasks) Update(_ context.Context, id string, name, state string) (*entity.Task, error) {
	t, ok := r.s.tasks[id]
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

func (r memTasks) Delete(_ context.Context, id string) error {
	if _, ok := r.s.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.tasks, id)
	return nil
}

func (r memTasks) DeleteByProject(_ context.Context, project string) error {
	for id, t := range r.s.tasks {
		if t.Project == project {
			delete(r.s.tasks, id)
		}
	}
	return nil
}

// newTestAPI mounts the real modules over in-memory repositories.
func newTestAPI() (*gin.Engine, *helpers.JWTManager) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	store := newMemStore()
	jwt := helpers.NewJWTManager("test-secret", 12*time.Hour)

	authSvc := application.NewAuthService(memUsers{store}, jwt, nil)
	projectSvc := application.NewProjectService(memProjects{store}, memTasks{store}, nil)
	taskSvc := application.NewTaskService(memTasks{store}, nil)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Use(middleware.ResolveIdentity(jwt))
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, nil)))
	projectHandler := handlers.NewProjectHandler(projectSvc, nil)
	taskHandler := handlers.NewTaskHandler(taskSvc, nil)
	reg.Add(modules.NewProjectModule(projectHandler, taskHandler))
	reg.Add(modules.NewTaskModule(taskHandler))
	reg.RegisterAll()

	return engine, jwt
}
