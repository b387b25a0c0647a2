package entities

// AssetStatus represents the collection status of a receivable
type AssetStatus string

const (
	AssetStatusActive    AssetStatus = "active"
	AssetStatusDefaulted AssetStatus = "defaulted"
	AssetStatusPaid      AssetStatus = "paid"
)

// IsValid checks whether the status is one of the known values
func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetStatusActive, AssetStatusDefaulted, AssetStatusPaid:
		return true
	}
	return false
}

// Asset represents a single financial receivable in the portfolio
type Asset struct {
	ID           string      `json:"id"`
	NominalValue float64     `json:"nominal_value"`
	Status       AssetStatus `json:"status"`
	DueDate      Date        `json:"due_date"`
}

// Insight names, in the fixed order they are reported
const (
	InsightTotalPortfolioValue = "total_portfolio_value"
	InsightDefaultRate         = "default_rate"
	InsightOutstandingDebt     = "outstanding_debt"
	InsightCollectionRate      = "collection_rate"
)

// Insight represents a single derived portfolio metric
type Insight struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// HealthResponse is the body served by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the standard error body for API failures
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
