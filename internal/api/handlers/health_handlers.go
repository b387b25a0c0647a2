package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-service/portfolio_service/internal/domain/entities"
	"github.com/portfolio-service/portfolio_service/pkg/logger"
	"github.com/portfolio-service/portfolio_service/pkg/version"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
	}
}

var startTime = time.Now()

// Health reports service health. The service has no external dependencies,
// so a responding process is a healthy process.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, entities.HealthResponse{
		Status:  "healthy",
		Version: version.Version,
	})
}

// Ready checks if the application is ready to serve traffic
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
	})
}

// Live is a liveness probe for orchestration platforms
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
	})
}
