package api

import (
	"github.com/Conceptual-Machines/promptgram/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/promptgram/internal/api/middleware"
	"github.com/Conceptual-Machines/promptgram/internal/config"
	"github.com/Conceptual-Machines/promptgram/internal/metrics"
	"github.com/Conceptual-Machines/promptgram/internal/prompt"
	"github.com/gin-gonic/gin"
)

// Deps are the long-lived collaborators the router hands to its handlers.
type Deps struct {
	Service   *prompt.Service
	Stats     *metrics.Stats
	Recorders []apimiddleware.RequestRecorder
}

func SetupRouter(cfg *config.Config, deps Deps, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.Recorders...))

	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(deps.Service)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, deps.Stats)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	if cfg.IsGatewayMode() {
		v1.Use(apimiddleware.GatewayAuth())
	} else {
		v1.Use(apimiddleware.NoAuth())
	}
	{
		promptHandler := handlers.NewPromptHandler(deps.Service, cfg.MaxCount, cfg.Defaults)
		v1.GET("/grammars", promptHandler.ListGrammars)
		v1.GET("/inspire", promptHandler.Inspire)
		v1.GET("/karma", promptHandler.Karma)
		v1.POST("/prompts/overlay", promptHandler.Overlay)
		v1.POST("/prompts/combine", promptHandler.Combine)
		v1.GET("/prompts/:grammar", promptHandler.Generate)
		v1.POST("/prompts/:grammar/fill", promptHandler.Fill)
	}

	return router
}
