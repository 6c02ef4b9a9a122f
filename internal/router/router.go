package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stellar-europe/community-hub/internal/handlers"
	"github.com/stellar-europe/community-hub/internal/middleware"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Cross-origin requests are permitted unconditionally.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.RequestID())

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/signup", handlers.Signup)
		api.POST("/events", handlers.CreateEvent)
		api.GET("/events", handlers.ListEvents)
	}

	return r
}
