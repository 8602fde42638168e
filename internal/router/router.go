package router

import (
	"github.com/gin-gonic/gin"

	"gstfiler/internal/config"
	"gstfiler/internal/handler"
	"gstfiler/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	filingH *handler.FilingHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT))

	filings := protected.Group("/filings")
	filings.POST("", filingH.Create)
	filings.GET("", filingH.List)
	filings.GET("/:id", filingH.GetByID)
	filings.GET("/:id/report", filingH.GenerateReport)
	filings.GET("/:id/export/xlsx", filingH.ExportXLSX)
	filings.PATCH("/:id/status", filingH.UpdateStatus)
	filings.DELETE("/:id", filingH.Delete)

	return r
}
