package router

import (
	"github.com/uptask/uptask-server/internal/application"
	"github.com/uptask/uptask-server/internal/container"
	pginfra "github.com/uptask/uptask-server/internal/infrastructure/postgres"
	handlers "github.com/uptask/uptask-server/internal/interface/http"
	"github.com/uptask/uptask-server/internal/router/modules"
)

// InitModules builds every feature module from the container
// singletons and registers it with the router registry. Called once
// during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(pool)
	projects := pginfra.NewProjectRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), logger)
	projectSvc := application.NewProjectService(projects, tasks, logger)
	taskSvc := application.NewTaskService(tasks, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger)
	projectHandler := handlers.NewProjectHandler(projectSvc, logger)
	taskHandler := handlers.NewTaskHandler(taskSvc, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewProjectModule(projectHandler, taskHandler))
	r.Add(modules.NewTaskModule(taskHandler))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
