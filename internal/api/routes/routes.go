package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/portfolio-service/portfolio_service/internal/api/handlers"
	"github.com/portfolio-service/portfolio_service/internal/api/middleware"
	"github.com/portfolio-service/portfolio_service/internal/domain/services/portfolio"
	"github.com/portfolio-service/portfolio_service/internal/infrastructure/config"
	"github.com/portfolio-service/portfolio_service/pkg/logger"
	"github.com/portfolio-service/portfolio_service/pkg/tracing"
)

// SetupRoutes configures all application routes
func SetupRoutes(cfg *config.Config, log *logger.Logger, portfolioService *portfolio.Service) *gin.Engine {
	router := gin.New()

	// Global middleware - tracing goes first so everything downstream is in a span
	router.Use(tracing.HTTPMiddleware())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	healthHandler := handlers.NewHealthHandler(log)
	portfolioHandlers := handlers.NewPortfolioHandlers(portfolioService, log)

	// Health and operational endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/version", handlers.VersionHandler())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Portfolio endpoints
	router.GET("/assets", portfolioHandlers.ListAssets)
	router.GET("/insights", portfolioHandlers.ListInsights)

	return router
}
