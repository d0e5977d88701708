package services

import (
	"sync"

	"github.com/freegoat/admin-dashboard/internal/logger"
	"github.com/freegoat/admin-dashboard/internal/models"
)

// The dashboard has exactly one operator account with fixed credentials.
const (
	adminUsername = "admin"
	adminPassword = "admin"
)

// Session is the single process-wide authentication state. The dashboard has
// no per-client identity: one successful login authenticates all traffic
// until logout.
type Session struct {
	mu            sync.RWMutex
	authenticated bool
	user          *models.User
	log           logger.Logger
}

// NewSession creates an unauthenticated session.
func NewSession(log logger.Logger) *Session {
	return &Session{log: log}
}

// Login validates the credential pair. On success the session becomes
// authenticated with the fixed administrator identity; on failure the state
// is left unchanged and ok is false.
func (s *Session) Login(username, password string) (user *models.User, ok bool) {
	if username != adminUsername || password != adminPassword {
		s.log.Warn("Login rejected", logger.String("username", username))
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.user = &models.User{
		ID:       "1",
		Username: adminUsername,
		Role:     "administrator",
	}

	s.log.Info("Login succeeded", logger.String("username", username))
	return s.user, true
}

// Logout unconditionally clears the authenticated state and identity.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.user = nil

	s.log.Info("Logged out")
}

// Status reports the current state. The user is nil when unauthenticated.
func (s *Session) Status() (authenticated bool, user *models.User) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated, s.user
}

// Authenticated reports whether the session is authenticated. Used by the
// router's gate middleware ahead of every protected operation.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}
