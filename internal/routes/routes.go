// Package routes assembles the HTTP surface: public auth endpoints plus
// the authenticated /api tree with role-gated groups.
package routes

import (
	"net/http"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func Setup(router *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenManager) {
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("")
	h.Auth.RegisterRoutes(public)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(tokens))

	workerGroup := api.Group("")
	workerGroup.Use(middleware.RequireRoles(models.UserRoleWorker))
	h.Worker.RegisterRoutes(workerGroup)

	employerGroup := api.Group("")
	employerGroup.Use(middleware.RequireRoles(models.UserRoleEmployer))
	// Search stays open to every authenticated role.
	h.Employer.RegisterRoutes(employerGroup, api)

	adminGroup := api.Group("")
	adminGroup.Use(middleware.RequireRoles(models.UserRoleAdmin))
	h.Admin.RegisterRoutes(adminGroup)

	// Debug routes do their own per-route role checks.
	h.Stats.RegisterRoutes(api)
}
