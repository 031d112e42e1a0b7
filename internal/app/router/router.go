// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "jobpath_backend/internal/feature/auth/transport/handler"
	"jobpath_backend/internal/platform/http/handler"
	jwtmw "jobpath_backend/internal/platform/jwt"
)

// NewRouter builds the Gin engine with all routes registered.
func NewRouter(authHandler *authhandler.AuthHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Authentication protocol (no token required)
	auth := r.Group("/api/auth")
	{
		auth.POST("/check-phone", authHandler.CheckPhone)
		auth.POST("/register-send-otp", authHandler.Register)
		auth.POST("/verify-otp", authHandler.Verify)
	}

	// Routes requiring a verified access token
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired())
	{
		api.GET("/me", authHandler.Me)
	}

	return r
}
