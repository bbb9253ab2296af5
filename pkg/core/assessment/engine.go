package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"sme_assessment/pkg/core/benchmark"
	"sme_assessment/pkg/core/calc"
	"sme_assessment/pkg/core/forecast"
	"sme_assessment/pkg/core/optimize"
	"sme_assessment/pkg/core/risk"
	"sme_assessment/pkg/core/scoring"
	"sme_assessment/pkg/models"
)

// Engine assembles a full Assessment from one input record. It is a pure
// composition of the stage calculators: each stage runs once, later stages
// consume earlier outputs, nothing is recomputed and nothing does I/O. The
// scoring config and benchmark table are fixed at construction, so a single
// Engine is safe for concurrent use across requests.
type Engine struct {
	scoringCfg scoring.Config
	benchmarks benchmark.Table
}

// NewEngine creates an engine with the given scoring config and benchmark
// table.
func NewEngine(cfg scoring.Config, table benchmark.Table) *Engine {
	return &Engine{scoringCfg: cfg, benchmarks: table}
}

// NewDefaultEngine creates an engine with the built-in config and table.
func NewDefaultEngine() *Engine {
	return NewEngine(scoring.DefaultConfig(), benchmark.DefaultTable())
}

// Assess runs the full pipeline for one input record.
//
// Missing fields degrade the output (nil ratios, renormalized weights,
// skipped rules) but never fail it; the only error is a nil input. An input
// with no computable ratio still produces an Assessment, flagged
// insufficient_data with a nil score, so downstream report generation can
// render an explicit notice instead of a number.
func (e *Engine) Assess(in *models.AssessmentInput) (*Assessment, error) {
	if in == nil {
		return nil, fmt.Errorf("assessment input is nil")
	}

	stmt := &in.Statement

	// 1. Ratios
	ratios := calc.ComputeRatios(stmt)

	// 2. Health score
	scored := scoring.HealthScore(ratios, e.scoringCfg)

	// 3. Risk findings
	findings := risk.Detect(ratios, in.CashFlowSeries())
	riskLevel := risk.OverallLevel(findings)

	// 4. Rating (High-severity findings cap the letter at C)
	rating := scoring.Classify(scored.Score, riskLevel == risk.SeverityHigh)

	// 5. Cost optimization
	suggestions := optimize.Suggest(stmt.ExpenseBreakdown, stmt.Revenue)

	// 6. Forecast
	ref := e.benchmarks.Lookup(in.Business.Industry)
	rate := forecast.MonthlyGrowthRate(stmt.Revenue, in.PriorRevenue(), ref.BaselineGrowth)
	revenueForecast := forecast.ProjectRevenue(stmt.Revenue, rate)
	profitForecast := forecast.ProjectProfit(stmt.NetProfit, rate)

	// 7. Benchmarks
	comparisons := benchmark.Compare(ratios, ref)

	return &Assessment{
		ID:                     uuid.NewString(),
		BusinessID:             in.BusinessID,
		FiscalYear:             stmt.FiscalYear,
		FinancialHealthScore:   scored.Score,
		CreditworthinessRating: rating,
		RiskLevel:              riskLevel,
		KeyFindings:            ratios.Map(),
		IdentifiedRisks:        findings,
		CostOptimizations:      suggestions,
		RevenueForecast:        revenueForecast,
		ProfitForecast:         profitForecast,
		Benchmarks:             comparisons,
		InsufficientData:       scored.InsufficientData,
		CreatedAt:              time.Now().UTC(),
	}, nil
}
