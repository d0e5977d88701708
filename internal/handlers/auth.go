package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freegoat/admin-dashboard/internal/models"
	"github.com/freegoat/admin-dashboard/internal/services"
)

// AuthHandler handles the ungated authentication routes.
type AuthHandler struct {
	session *services.Session
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(session *services.Session) *AuthHandler {
	return &AuthHandler{session: session}
}

// Login handles POST /api/auth/login. A malformed body is treated as empty
// credentials, which simply fail validation.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	_ = c.ShouldBindJSON(&req)

	user, authenticated := h.session.Login(req.Username, req.Password)
	if !authenticated {
		c.JSON(http.StatusUnauthorized, fail(MsgLoginFailed))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Message: MsgLoginSuccess,
		User:    user,
	})
}

// Logout handles POST /api/auth/logout. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.Logout()
	c.JSON(http.StatusOK, ok(MsgLogoutSuccess))
}

// Check handles GET /api/auth/check.
func (h *AuthHandler) Check(c *gin.Context) {
	authenticated, user := h.session.Status()
	c.JSON(http.StatusOK, StatusResponse{
		Authenticated: authenticated,
		User:          user,
	})
}
