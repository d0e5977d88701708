// Package api wires the HTTP surface of the admin dashboard: routes,
// middleware, static fallback, and server lifecycle.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freegoat/admin-dashboard/internal/config"
	"github.com/freegoat/admin-dashboard/internal/events"
	"github.com/freegoat/admin-dashboard/internal/handlers"
	"github.com/freegoat/admin-dashboard/internal/logger"
	"github.com/freegoat/admin-dashboard/internal/metrics"
	"github.com/freegoat/admin-dashboard/internal/services"
)

// App bundles the application state the router dispatches into. There are no
// package-level globals; tests construct a fresh App per case.
type App struct {
	Session       *services.Session
	Notifications *services.NotificationService
	Repositories  *services.RepositoryService
	Publisher     *events.Publisher
}

// NewApp creates a fresh application state with seeded stores and an
// unauthenticated session.
func NewApp(log logger.Logger, publisher *events.Publisher) *App {
	return &App{
		Session:       services.NewSession(log),
		Notifications: services.NewNotificationService(log),
		Repositories:  services.NewRepositoryService(log),
		Publisher:     publisher,
	}
}

// NewRouter builds the gin engine: middleware, auth routes (ungated), the
// gated API routes, the metrics endpoint, and the static dashboard fallback.
func NewRouter(app *App, cfg *config.Config, log logger.Logger, m *metrics.Metrics) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RecoveryMiddleware(log))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(cfg.Server.CORSOrigins))
	if m != nil {
		router.Use(m.Middleware())
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	authHandler := handlers.NewAuthHandler(app.Session)
	notificationHandler := handlers.NewNotificationHandler(app.Notifications, app.Publisher)
	repositoryHandler := handlers.NewRepositoryHandler(app.Repositories, app.Publisher)
	actionHandler := handlers.NewQuickActionHandler(app.Publisher)

	api := router.Group("/api")

	// Auth routes are never gated; login must be reachable while logged out.
	auth := api.Group("/auth")
	auth.GET("/check", authHandler.Check)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	protected := api.Group("", RequireAuth(app.Session))

	notifications := protected.Group("/notifications")
	notifications.GET("", notificationHandler.List)
	notifications.GET("/stats", notificationHandler.Stats)
	notifications.POST("/send", notificationHandler.Send)
	notifications.DELETE("/:id", notificationHandler.Delete)

	repositories := protected.Group("/repositories")
	repositories.GET("", repositoryHandler.List)
	repositories.GET("/stats", repositoryHandler.Stats)
	repositories.POST("", repositoryHandler.Create)
	repositories.POST("/refresh-all", repositoryHandler.RefreshAll)
	repositories.POST("/:id/refresh", repositoryHandler.Refresh)
	repositories.PUT("/:id", repositoryHandler.Update)
	repositories.DELETE("/:id", repositoryHandler.Delete)

	protected.POST("/quick-actions/:action", actionHandler.Run)

	// Everything else is either a static dashboard asset or a 404.
	router.NoRoute(NotFoundHandler(cfg.Server.WebRoot))

	return router
}
