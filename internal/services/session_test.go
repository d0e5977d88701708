package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freegoat/admin-dashboard/internal/services"
	"github.com/freegoat/admin-dashboard/internal/testhelpers"
)

func TestSession_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{name: "valid credentials", username: "admin", password: "admin", wantOK: true},
		{name: "wrong password", username: "admin", password: "secret", wantOK: false},
		{name: "wrong username", username: "root", password: "admin", wantOK: false},
		{name: "empty credentials", username: "", password: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := services.NewSession(testhelpers.NewTestLogger())

			user, ok := session.Login(tt.username, tt.password)
			assert.Equal(t, tt.wantOK, ok)

			authenticated, statusUser := session.Status()
			assert.Equal(t, tt.wantOK, authenticated)

			if tt.wantOK {
				require.NotNil(t, user)
				assert.Equal(t, "1", user.ID)
				assert.Equal(t, "admin", user.Username)
				assert.Equal(t, "administrator", user.Role)
				assert.Equal(t, user, statusUser)
			} else {
				assert.Nil(t, user)
				assert.Nil(t, statusUser)
			}
		})
	}
}

func TestSession_FailedLoginLeavesStateUnchanged(t *testing.T) {
	session := services.NewSession(testhelpers.NewTestLogger())

	_, ok := session.Login("admin", "admin")
	require.True(t, ok)

	_, ok = session.Login("admin", "wrong")
	assert.False(t, ok)
	assert.True(t, session.Authenticated(), "a rejected login must not clear an existing session")
}

func TestSession_Logout(t *testing.T) {
	session := services.NewSession(testhelpers.NewTestLogger())
	_, ok := session.Login("admin", "admin")
	require.True(t, ok)

	session.Logout()

	authenticated, user := session.Status()
	assert.False(t, authenticated)
	assert.Nil(t, user)

	// Logout while already logged out is harmless.
	session.Logout()
	assert.False(t, session.Authenticated())
}

func TestSession_InitialStateUnauthenticated(t *testing.T) {
	session := services.NewSession(testhelpers.NewTestLogger())

	authenticated, user := session.Status()
	assert.False(t, authenticated)
	assert.Nil(t, user)
}

func TestSession_Relogin(t *testing.T) {
	session := services.NewSession(testhelpers.NewTestLogger())

	_, ok := session.Login("admin", "admin")
	require.True(t, ok)
	session.Logout()

	_, ok = session.Login("admin", "admin")
	assert.True(t, ok, "both states must be reachable from each other")
	assert.True(t, session.Authenticated())
}
