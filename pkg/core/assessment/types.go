package assessment

import (
	"time"

	"sme_assessment/pkg/core/benchmark"
	"sme_assessment/pkg/core/forecast"
	"sme_assessment/pkg/core/optimize"
	"sme_assessment/pkg/core/risk"
	"sme_assessment/pkg/core/scoring"
)

// Assessment is the complete, immutable verdict for one analysis run. A
// re-analysis always produces a new Assessment with a new ID; existing
// records are never updated, which preserves the audit trail behind a
// credit decision.
type Assessment struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id,omitempty"`
	FiscalYear int    `json:"fiscal_year"`

	// Nil exactly when InsufficientData is true: the core reports "no
	// score" rather than a fabricated numeric default.
	FinancialHealthScore *float64 `json:"financial_health_score"`

	CreditworthinessRating scoring.Rating `json:"creditworthiness_rating"`
	RiskLevel              risk.Severity  `json:"risk_level"`

	// Derived ratio values by name; nil entries are ratios that could not
	// be computed from the submitted statement.
	KeyFindings map[string]*float64 `json:"key_findings"`

	IdentifiedRisks   []risk.Finding                  `json:"identified_risks"`
	CostOptimizations []optimize.Suggestion           `json:"cost_optimizations"`
	RevenueForecast   []forecast.Point                `json:"revenue_forecast"`
	ProfitForecast    []forecast.Point                `json:"profit_forecast,omitempty"`
	Benchmarks        map[string]benchmark.Comparison `json:"benchmarks"`

	InsufficientData bool      `json:"insufficient_data"`
	CreatedAt        time.Time `json:"created_at"`
}
