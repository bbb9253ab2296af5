package forecast

import (
	"math"

	"sme_assessment/pkg/core/calc"
)

// Horizon is the number of projected periods. Period index 0 is the month
// immediately following the statement's fiscal year.
const Horizon = 12

// Point is one projected-period value.
type Point struct {
	PeriodIndex int     `json:"period_index"`
	Value       float64 `json:"value"`
}

// =============================================================================
// FORECASTER
// Deterministic geometric extrapolation: same inputs, same projection, no
// randomness. The monthly growth rate comes from the prior-year revenue
// when one exists, otherwise from the industry baseline.
// =============================================================================

// MonthlyGrowthRate derives the compound monthly rate implied by the
// year-over-year revenue move: (current/prior)^(1/12) - 1. Without a known,
// positive prior (and a positive current to compare), the industry baseline
// applies.
func MonthlyGrowthRate(current, prior *float64, baseline float64) float64 {
	if current == nil || prior == nil || *prior <= 0 || *current <= 0 {
		return baseline
	}
	return math.Pow(*current / *prior, 1.0/float64(Horizon)) - 1
}

// ProjectRevenue extrapolates the next Horizon months from the annual
// revenue: value[i] = (revenue/12) * (1+r)^(i+1). The shape is fixed at
// Horizon points; a missing revenue projects from a zero base rather than
// changing the shape.
func ProjectRevenue(revenue *float64, rate float64) []Point {
	base := 0.0
	if revenue != nil {
		base = *revenue / float64(Horizon)
	}
	return project(base, rate)
}

// ProjectProfit runs the same extrapolation over net profit, sharing the
// revenue-derived rate. Unlike revenue, a missing profit yields no series at
// all: profit projection is a supplementary output, not part of the core
// contract shape.
func ProjectProfit(netProfit *float64, rate float64) []Point {
	if netProfit == nil {
		return nil
	}
	return project(*netProfit/float64(Horizon), rate)
}

func project(base, rate float64) []Point {
	points := make([]Point, Horizon)
	for i := 0; i < Horizon; i++ {
		points[i] = Point{
			PeriodIndex: i,
			Value:       calc.Round2(base * math.Pow(1+rate, float64(i+1))),
		}
	}
	return points
}
