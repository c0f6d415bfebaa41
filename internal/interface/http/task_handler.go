package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/uptask/uptask-server/internal/application"
	"github.com/uptask/uptask-server/internal/domain/entity"
	"github.com/uptask/uptask-server/pkg/response"
	"github.com/uptask/uptask-server/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Name    string `json:"name" binding:"required"`
	Project string `json:"project" binding:"required,uuid"`
}

type updateTaskRequest struct {
	Name  string `json:"name"`
	State string `json:"state" binding:"required"`
}

func taskJSON(t *entity.Task) gin.H {
	return gin.H{
		"id":         t.ID,
		"name":       t.Name,
		"state":      t.State,
		"project":    t.Project,
		"creator":    t.Creator,
		"created_at": t.CreatedAt,
		"updated_at": t.UpdatedAt,
	}
}

// List GET /api/projects/:id/tasks
func (h *TaskHandler) List(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	tasks, err := h.Svc.List(c.Request.Context(), id.UserID, c.Param("id"))
	if err != nil {
		writeInternal(c, "failed to list tasks")
		return
	}

	out := make([]gin.H, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskJSON(&tasks[i]))
	}
	resp := response.Success(c, http.StatusOK, out, "tasks")
	c.JSON(resp.Status, resp)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), id.UserID, req.Project, req.Name)
	if err != nil {
		writeInternal(c, "failed to create task")
		return
	}
	resp := response.Success(c, http.StatusCreated, taskJSON(t), "task created")
	c.JSON(resp.Status, resp)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), id.UserID, c.Param("id"), req.Name, req.State)
	if err != nil {
		if !writeOwnershipError(c, err, "task") {
			writeInternal(c, "failed to update task")
		}
		return
	}
	resp := response.Success(c, http.StatusOK, taskJSON(t), "task updated")
	c.JSON(resp.Status, resp)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id.UserID, c.Param("id")); err != nil {
		if !writeOwnershipError(c, err, "task") {
			writeInternal(c, "failed to delete task")
		}
		return
	}
	resp := response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "task deleted")
	c.JSON(resp.Status, resp)
}
