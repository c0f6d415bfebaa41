package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uptask/uptask-server/internal/container"
	handlers "github.com/uptask/uptask-server/internal/interface/http"
	"github.com/uptask/uptask-server/internal/interface/middleware"
)

type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIdentity(), middleware.AllowPrivateIP())

	rg.POST("/tasks", limiter, m.Handler.Create)
	rg.PUT("/tasks/:id", limiter, m.Handler.Update)
	rg.DELETE("/tasks/:id", limiter, m.Handler.Delete)
}
