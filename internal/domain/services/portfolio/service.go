package portfolio

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/portfolio-service/portfolio_service/internal/domain/entities"
	"github.com/portfolio-service/portfolio_service/pkg/logger"
)

// Generation parameters of the synthetic portfolio. The seed is fixed so the
// same portfolio is produced on every call within a calendar day.
const (
	portfolioSize = 20
	generatorSeed = 42

	minNominalValue = 1000.0
	maxNominalValue = 50000.0

	minDueOffsetDays = -90
	maxDueOffsetDays = 180
)

// statusWeights drives the weighted status draw. Order matters: draws walk
// the cumulative distribution in this order.
var statusWeights = []struct {
	status entities.AssetStatus
	weight float64
}{
	{entities.AssetStatusActive, 0.6},
	{entities.AssetStatusDefaulted, 0.2},
	{entities.AssetStatusPaid, 0.2},
}

// Service generates the synthetic asset portfolio and derives insights from it
type Service struct {
	logger *logger.Logger
	now    func() time.Time
}

// NewService creates a new portfolio service
func NewService(log *logger.Logger) *Service {
	return &Service{
		logger: log,
		now:    time.Now,
	}
}

// Assets generates the portfolio for the current calendar date. Each call
// constructs its own seeded generator, so output is deterministic within a
// day and concurrent calls never share PRNG state.
func (s *Service) Assets() []entities.Asset {
	return s.assetsOn(entities.DateOf(s.now()))
}

func (s *Service) assetsOn(today entities.Date) []entities.Asset {
	rng := rand.New(rand.NewSource(generatorSeed))

	assets := make([]entities.Asset, 0, portfolioSize)
	for i := 1; i <= portfolioSize; i++ {
		status := drawStatus(rng)
		dueDate := today.AddDays(minDueOffsetDays + rng.Intn(maxDueOffsetDays-minDueOffsetDays+1))
		value := minNominalValue + rng.Float64()*(maxNominalValue-minNominalValue)

		assets = append(assets, entities.Asset{
			ID:           fmt.Sprintf("asset-%03d", i),
			NominalValue: round2(value),
			Status:       status,
			DueDate:      dueDate,
		})
	}

	s.logger.Debugw("Portfolio generated",
		"count", len(assets),
		"as_of", today.String(),
	)

	return assets
}

// drawStatus samples an asset status from the weighted distribution
func drawStatus(rng *rand.Rand) entities.AssetStatus {
	r := rng.Float64()
	cumulative := 0.0
	for _, sw := range statusWeights {
		cumulative += sw.weight
		if r < cumulative {
			return sw.status
		}
	}
	// Unreachable while the weights sum to 1; guards float accumulation error.
	return statusWeights[len(statusWeights)-1].status
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
