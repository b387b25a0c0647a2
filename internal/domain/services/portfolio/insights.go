package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/portfolio-service/portfolio_service/internal/domain/entities"
)

// Insights derives the four portfolio metrics from an asset collection.
// The result always has exactly four elements in a fixed order:
// total_portfolio_value, default_rate, outstanding_debt, collection_rate.
// It is pure and total; an empty collection yields all-zero metrics.
func (s *Service) Insights(assets []entities.Asset) []entities.Insight {
	var total, outstanding, collected decimal.Decimal
	defaulted := 0

	for _, a := range assets {
		value := decimal.NewFromFloat(a.NominalValue)
		total = total.Add(value)

		switch a.Status {
		case entities.AssetStatusActive:
			outstanding = outstanding.Add(value)
		case entities.AssetStatusDefaulted:
			defaulted++
		case entities.AssetStatusPaid:
			collected = collected.Add(value)
		}
	}

	defaultRate := decimal.Zero
	if len(assets) > 0 {
		defaultRate = decimal.NewFromInt(int64(defaulted)).Div(decimal.NewFromInt(int64(len(assets))))
	}

	// Collection rate divides by the unrounded total to avoid skew from
	// rounding the headline value first.
	collectionRate := decimal.Zero
	if !total.IsZero() {
		collectionRate = collected.Div(total)
	}

	return []entities.Insight{
		{ID: "insight-001", Name: entities.InsightTotalPortfolioValue, Value: total.Round(2).InexactFloat64()},
		{ID: "insight-002", Name: entities.InsightDefaultRate, Value: defaultRate.Round(4).InexactFloat64()},
		{ID: "insight-003", Name: entities.InsightOutstandingDebt, Value: outstanding.Round(2).InexactFloat64()},
		{ID: "insight-004", Name: entities.InsightCollectionRate, Value: collectionRate.Round(4).InexactFloat64()},
	}
}
