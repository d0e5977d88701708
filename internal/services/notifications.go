// Package services implements the dashboard's domain operations on top of
// the in-memory stores: notifications, repositories, and the shared session.
package services

import (
	"time"

	"github.com/freegoat/admin-dashboard/internal/logger"
	"github.com/freegoat/admin-dashboard/internal/models"
	"github.com/freegoat/admin-dashboard/internal/store"
)

// Default field values applied when a send request omits them.
const (
	DefaultNotificationType     = "general"
	DefaultNotificationPriority = "medium"
)

// NotificationService manages the notification collection. Notifications are
// kept most-recent-first and are immutable once sent.
type NotificationService struct {
	store *store.Store[models.Notification]
	log   logger.Logger
}

// NewNotificationService creates a service seeded with the sample data.
func NewNotificationService(log logger.Logger) *NotificationService {
	return &NotificationService{
		store: store.New(notificationID, models.SeedNotifications(time.Now())),
		log:   log,
	}
}

func notificationID(n models.Notification) string { return n.ID }

// Send builds a notification from the request, fills defaults for missing
// fields, and inserts it at the front of the collection.
func (s *NotificationService) Send(req models.SendNotificationRequest) models.Notification {
	if req.Type == "" {
		req.Type = DefaultNotificationType
	}
	if req.Priority == "" {
		req.Priority = DefaultNotificationPriority
	}

	n := models.Notification{
		ID:        s.store.NextID(),
		Title:     req.Title,
		Body:      req.Body,
		Type:      req.Type,
		Priority:  req.Priority,
		CreatedAt: time.Now(),
		Sent:      true,
	}
	s.store.InsertFront(n)

	s.log.Info("Notification sent",
		logger.String("notification_id", n.ID),
		logger.String("type", n.Type),
		logger.String("priority", n.Priority),
	)
	return n
}

// List returns the notifications, most recent first.
func (s *NotificationService) List() []models.Notification {
	return s.store.List()
}

// Stats aggregates the collection. Sent always equals Total today since no
// notification is ever created unsent, but the count is computed rather than
// assumed so the invariant stays observable.
func (s *NotificationService) Stats() models.NotificationStats {
	return models.NotificationStats{
		Total: s.store.Len(),
		Sent:  s.store.Count(func(n models.Notification) bool { return n.Sent }),
	}
}

// Delete removes the notification with the given id. Deleting an absent id
// is not an error; the operation is idempotent from the caller's view.
func (s *NotificationService) Delete(id string) {
	removed := s.store.Delete(id)
	s.log.Info("Notification deleted",
		logger.String("notification_id", id),
		logger.Int("removed", removed),
	)
}
