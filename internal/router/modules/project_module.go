package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uptask/uptask-server/internal/container"
	handlers "github.com/uptask/uptask-server/internal/interface/http"
	"github.com/uptask/uptask-server/internal/interface/middleware"
)

// ProjectModule registers project routes plus the project-scoped task
// listing. Ownership checks live in the handlers/services; the routes
// themselves stay open so the identity resolver can pass anonymous
// callers through to the presence check.
type ProjectModule struct {
	Projects *handlers.ProjectHandler
	Tasks    *handlers.TaskHandler
}

func NewProjectModule(p *handlers.ProjectHandler, t *handlers.TaskHandler) *ProjectModule {
	return &ProjectModule{Projects: p, Tasks: t}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	// Per-caller limit; anonymous requests share an IP-scoped bucket
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIdentity(), middleware.AllowPrivateIP())

	rg.GET("/projects", limiter, m.Projects.List)
	rg.POST("/projects", limiter, m.Projects.Create)
	rg.PUT("/projects/:id", limiter, m.Projects.Update)
	rg.DELETE("/projects/:id", limiter, m.Projects.Delete)
	rg.GET("/projects/:id/tasks", limiter, m.Tasks.List)
}
