package routes

import (
	"github.com/gin-gonic/gin"

	"audio-summarizer/internal/api/v1/handlers"
	"audio-summarizer/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	RunService     services.RunService
	MaxUploadBytes int64
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	runHandler := handlers.NewRunHandler(container.RunService, container.MaxUploadBytes)
	runs := router.Group("/runs")
	{
		runs.POST("", runHandler.Create)
		runs.GET("/:id", runHandler.Get)
		runs.POST("/:id/save", runHandler.Save)
		runs.GET("/:id/download", runHandler.Download)
	}
}

// RegisterPageRoutes registers the HTML shell. The engine must have the
// shell templates loaded.
func RegisterPageRoutes(router gin.IRouter, container *ServiceContainer) {
	pageHandler := handlers.NewPageHandler(container.RunService, container.MaxUploadBytes)
	router.GET("/", pageHandler.Index)
	router.POST("/", pageHandler.Submit)
	router.POST("/runs/:id/save", pageHandler.Save)
	router.GET("/runs/:id/download", pageHandler.Download)
}
