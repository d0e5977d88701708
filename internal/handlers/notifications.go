package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freegoat/admin-dashboard/internal/events"
	"github.com/freegoat/admin-dashboard/internal/models"
	"github.com/freegoat/admin-dashboard/internal/services"
)

// NotificationHandler handles the /api/notifications routes.
type NotificationHandler struct {
	svc       *services.NotificationService
	publisher *events.Publisher
}

// NewNotificationHandler creates a new notification handler. The publisher
// may be nil when audit events are disabled.
func NewNotificationHandler(svc *services.NotificationService, publisher *events.Publisher) *NotificationHandler {
	return &NotificationHandler{svc: svc, publisher: publisher}
}

// List handles GET /api/notifications, most recent first.
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.svc.List()})
}

// Stats handles GET /api/notifications/stats.
func (h *NotificationHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.svc.Stats()})
}

// Send handles POST /api/notifications/send. Missing fields default rather
// than fail, so a malformed body produces an empty notification.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req models.SendNotificationRequest
	_ = c.ShouldBindJSON(&req)

	n := h.svc.Send(req)
	h.publisher.PublishAsync(events.NotificationSent, n.ID, gin.H{
		"title": n.Title,
		"type":  n.Type,
	})

	c.JSON(http.StatusOK, ok(MsgNotificationSent))
}

// Delete handles DELETE /api/notifications/{id}. Reports success whether or
// not the id existed.
func (h *NotificationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.svc.Delete(id)
	h.publisher.PublishAsync(events.NotificationDeleted, id, nil)

	c.JSON(http.StatusOK, ok(MsgNotificationDeleted))
}
