package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freegoat/admin-dashboard/internal/events"
	"github.com/freegoat/admin-dashboard/internal/models"
	"github.com/freegoat/admin-dashboard/internal/services"
)

// RepositoryHandler handles the /api/repositories routes.
type RepositoryHandler struct {
	svc       *services.RepositoryService
	publisher *events.Publisher
}

// NewRepositoryHandler creates a new repository handler. The publisher may
// be nil when audit events are disabled.
func NewRepositoryHandler(svc *services.RepositoryService, publisher *events.Publisher) *RepositoryHandler {
	return &RepositoryHandler{svc: svc, publisher: publisher}
}

// List handles GET /api/repositories, in creation order.
func (h *RepositoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"repositories": h.svc.List()})
}

// Stats handles GET /api/repositories/stats.
func (h *RepositoryHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.svc.Stats()})
}

// Create handles POST /api/repositories.
func (h *RepositoryHandler) Create(c *gin.Context) {
	var req models.AddRepositoryRequest
	_ = c.ShouldBindJSON(&req)

	r := h.svc.Add(req)
	h.publisher.PublishAsync(events.RepositoryAdded, r.ID, gin.H{
		"name": r.Name,
		"url":  r.URL,
	})

	c.JSON(http.StatusOK, ok(MsgRepositoryAdded))
}

// Update handles PUT /api/repositories/{id}. Only the isActive flag is
// mutable; a body without it still succeeds for an existing id but changes
// nothing.
func (h *RepositoryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateRepositoryRequest
	_ = c.ShouldBindJSON(&req)

	isActive := false
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if err := h.svc.SetActive(id, isActive, req.IsActive != nil); err != nil {
		if errors.Is(err, services.ErrRepositoryNotFound) {
			c.JSON(http.StatusNotFound, fail(MsgRepositoryNotFound))
			return
		}
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}

	h.publisher.PublishAsync(events.RepositoryUpdated, id, gin.H{"isActive": isActive})
	c.JSON(http.StatusOK, ok(MsgRepositoryUpdated))
}

// Refresh handles POST /api/repositories/{id}/refresh.
func (h *RepositoryHandler) Refresh(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.RefreshOne(id); err != nil {
		if errors.Is(err, services.ErrRepositoryNotFound) {
			c.JSON(http.StatusNotFound, fail(MsgRepositoryNotFound))
			return
		}
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}

	h.publisher.PublishAsync(events.RepositoryRefreshed, id, nil)
	c.JSON(http.StatusOK, ok(MsgRepositoryRefreshed))
}

// RefreshAll handles POST /api/repositories/refresh-all. Never fails.
func (h *RepositoryHandler) RefreshAll(c *gin.Context) {
	h.svc.RefreshAll()
	h.publisher.PublishAsync(events.RepositoriesRefreshed, "", nil)

	c.JSON(http.StatusOK, ok(MsgAllRepositoriesRefreshed))
}

// Delete handles DELETE /api/repositories/{id}. Reports success whether or
// not the id existed.
func (h *RepositoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.svc.Delete(id)
	h.publisher.PublishAsync(events.RepositoryDeleted, id, nil)

	c.JSON(http.StatusOK, ok(MsgRepositoryDeleted))
}
