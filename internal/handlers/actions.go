package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freegoat/admin-dashboard/internal/events"
)

// Known quick actions and their completion messages. Unknown actions still
// succeed with a generic message.
var quickActionMessages = map[string]string{
	"clear-cache": MsgCacheCleared,
	"export-data": MsgDataExported,
}

// QuickActionHandler handles POST /api/quick-actions/{action}.
type QuickActionHandler struct {
	publisher *events.Publisher
}

// NewQuickActionHandler creates a new quick action handler.
func NewQuickActionHandler(publisher *events.Publisher) *QuickActionHandler {
	return &QuickActionHandler{publisher: publisher}
}

// Run executes the named quick action.
func (h *QuickActionHandler) Run(c *gin.Context) {
	action := c.Param("action")

	message, known := quickActionMessages[action]
	if !known {
		message = MsgActionCompleted
	}

	h.publisher.PublishAsync(events.QuickActionRun, action, nil)
	c.JSON(http.StatusOK, ok(message))
}
