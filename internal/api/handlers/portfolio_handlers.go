package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-service/portfolio_service/internal/domain/entities"
	"github.com/portfolio-service/portfolio_service/internal/domain/services/portfolio"
	"github.com/portfolio-service/portfolio_service/pkg/logger"
	"github.com/portfolio-service/portfolio_service/pkg/metrics"
)

// PortfolioHandlers serves the asset list and derived insights
type PortfolioHandlers struct {
	portfolioService *portfolio.Service
	logger           *logger.Logger
}

// NewPortfolioHandlers creates new portfolio handlers
func NewPortfolioHandlers(portfolioService *portfolio.Service, logger *logger.Logger) *PortfolioHandlers {
	return &PortfolioHandlers{
		portfolioService: portfolioService,
		logger:           logger,
	}
}

// ListAssets returns the generated asset portfolio
func (h *PortfolioHandlers) ListAssets(c *gin.Context) {
	assets := h.portfolioService.Assets()

	metrics.PortfolioGenerationsTotal.Inc()

	c.JSON(http.StatusOK, assets)
}

// ListInsights returns the derived portfolio metrics
func (h *PortfolioHandlers) ListInsights(c *gin.Context) {
	assets := h.portfolioService.Assets()
	insights := h.portfolioService.Insights(assets)

	metrics.InsightCalculationsTotal.Inc()
	for _, insight := range insights {
		switch insight.Name {
		case entities.InsightTotalPortfolioValue:
			metrics.PortfolioValueGauge.Set(insight.Value)
		case entities.InsightDefaultRate:
			metrics.DefaultRateGauge.Set(insight.Value)
		}
	}

	c.JSON(http.StatusOK, insights)
}
