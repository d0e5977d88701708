// Package events publishes dashboard audit events to a Redis stream.
// Publishing is optional: a nil *Publisher is a safe no-op, so the feature
// can stay dark when Redis is disabled or unreachable.
package events

import (
	"time"

	"github.com/google/uuid"
)

// StreamName is the Redis stream dashboard audit events are appended to.
const StreamName = "admin-events"

// EventType labels an audit event.
type EventType string

const (
	// NotificationSent indicates a notification was created and sent.
	NotificationSent EventType = "NOTIFICATION_SENT"
	// NotificationDeleted indicates a notification was deleted.
	NotificationDeleted EventType = "NOTIFICATION_DELETED"
	// RepositoryAdded indicates a repository was created.
	RepositoryAdded EventType = "REPOSITORY_ADDED"
	// RepositoryUpdated indicates a repository's active flag changed.
	RepositoryUpdated EventType = "REPOSITORY_UPDATED"
	// RepositoryRefreshed indicates a single repository refresh.
	RepositoryRefreshed EventType = "REPOSITORY_REFRESHED"
	// RepositoriesRefreshed indicates a bulk refresh of active repositories.
	RepositoriesRefreshed EventType = "REPOSITORIES_REFRESHED"
	// RepositoryDeleted indicates a repository was deleted.
	RepositoryDeleted EventType = "REPOSITORY_DELETED"
	// QuickActionRun indicates a quick action was executed.
	QuickActionRun EventType = "QUICK_ACTION_RUN"
)

// Event is the envelope for all dashboard audit events.
type Event struct {
	EventID    uuid.UUID `json:"event_id"`
	EventType  EventType `json:"event_type"`
	ResourceID string    `json:"resource_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload,omitempty"`
}
