// Package models defines the resource records managed by the admin dashboard.
package models

import "time"

// User identifies the authenticated administrator.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Notification is a dashboard notification. Records are immutable after
// creation; Sent is always true since the dashboard has no draft state.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	Sent      bool      `json:"sent"`
}

// Repository is a managed manga source repository. SourceCount only grows,
// via single or bulk refreshes.
type Repository struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	SourceCount int       `json:"sourceCount"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// NotificationStats aggregates the notification collection.
type NotificationStats struct {
	Total int `json:"total"`
	Sent  int `json:"sent"`
}

// RepositoryStats aggregates the repository collection.
type RepositoryStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SendNotificationRequest is the body of POST /api/notifications/send.
// Missing fields are defaulted at construction, never rejected.
type SendNotificationRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}

// AddRepositoryRequest is the body of POST /api/repositories.
type AddRepositoryRequest struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// UpdateRepositoryRequest is the body of PUT /api/repositories/{id}.
// IsActive is a pointer so a body that omits the field is distinguishable
// from one that sets it to false.
type UpdateRepositoryRequest struct {
	IsActive *bool `json:"isActive"`
}
