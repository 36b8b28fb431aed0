package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(handler *Handler) *gin.Engine {
	r := gin.Default()

	// Health check and metrics
	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/domains", handler.Domains)
		v1.POST("/analyze", handler.Analyze)
		v1.GET("/assessments", handler.ListAssessments)
		v1.GET("/assessments/:id", handler.GetAssessment)
		v1.DELETE("/assessments/:id", handler.DeleteAssessment)
		v1.POST("/export", handler.Export)
		v1.GET("/export", handler.DownloadExport)
		v1.PUT("/sessions/:session/scenarios", handler.SaveScenario)
		v1.GET("/sessions/:session/scenarios", handler.ListScenarios)
		v1.DELETE("/sessions/:session", handler.EndSession)
	}

	return r
}
