package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/uptask/uptask-server/internal/application"
	"github.com/uptask/uptask-server/internal/domain/entity"
	"github.com/uptask/uptask-server/internal/interface/middleware"
	"github.com/uptask/uptask-server/pkg/response"
	"github.com/uptask/uptask-server/pkg/validation"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type createProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateProjectRequest struct {
	Name string `json:"name"`
}

func projectJSON(p *entity.Project) gin.H {
	return gin.H{
		"id":         p.ID,
		"name":       p.Name,
		"creator":    p.Creator,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

// requireIdentity resolves the caller or writes a 401 and reports false.
func requireIdentity(c *gin.Context) (middleware.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		resp := response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
		c.JSON(resp.Status, resp)
		return middleware.Identity{}, false
	}
	return id, true
}

func writeOwnershipError(c *gin.Context, err error, kind string) bool {
	switch {
	case errors.Is(err, application.ErrNotFound):
		resp := response.Error[any](c, http.StatusNotFound, kind+" not found", nil)
		c.JSON(resp.Status, resp)
	case errors.Is(err, application.ErrForbidden):
		resp := response.Error[any](c, http.StatusForbidden, "you are not the creator of this "+kind, nil)
		c.JSON(resp.Status, resp)
	default:
		return false
	}
	return true
}

func writeInternal(c *gin.Context, msg string) {
	resp := response.Error[any](c, http.StatusInternalServerError, msg, nil)
	c.JSON(resp.Status, resp)
}

// List GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	projects, err := h.Svc.List(c.Request.Context(), id.UserID)
	if err != nil {
		writeInternal(c, "failed to list projects")
		return
	}

	out := make([]gin.H, 0, len(projects))
	for i := range projects {
		out = append(out, projectJSON(&projects[i]))
	}
	resp := response.Success(c, http.StatusOK, out, "projects")
	c.JSON(resp.Status, resp)
}

// Create POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), id.UserID, req.Name)
	if err != nil {
		writeInternal(c, "failed to create project")
		return
	}
	resp := response.Success(c, http.StatusCreated, projectJSON(p), "project created")
	c.JSON(resp.Status, resp)
}

// Update PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), id.UserID, c.Param("id"), req.Name)
	if err != nil {
		if !writeOwnershipError(c, err, "project") {
			writeInternal(c, "failed to update project")
		}
		return
	}
	resp := response.Success(c, http.StatusOK, projectJSON(p), "project updated")
	c.JSON(resp.Status, resp)
}

// Delete DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id.UserID, c.Param("id")); err != nil {
		if !writeOwnershipError(c, err, "project") {
			writeInternal(c, "failed to delete project")
		}
		return
	}
	resp := response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "project deleted")
	c.JSON(resp.Status, resp)
}
