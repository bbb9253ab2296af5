package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sme_assessment/pkg/core/calc"
)

func fptr(v float64) *float64 { return &v }

func TestMonthlyGrowthRate_FromPriorYear(t *testing.T) {
	// 20% annual growth compounds to (1.2)^(1/12)-1 monthly.
	rate := MonthlyGrowthRate(fptr(1200000), fptr(1000000), 0.01)
	assert.InDelta(t, math.Pow(1.2, 1.0/12)-1, rate, 1e-12)

	// Contraction works the same way and comes out negative.
	rate = MonthlyGrowthRate(fptr(800000), fptr(1000000), 0.01)
	assert.Less(t, rate, 0.0)
}

func TestMonthlyGrowthRate_BaselineFallback(t *testing.T) {
	assert.Equal(t, 0.01, MonthlyGrowthRate(fptr(1000000), nil, 0.01))
	assert.Equal(t, 0.01, MonthlyGrowthRate(fptr(1000000), fptr(0), 0.01))
	assert.Equal(t, 0.01, MonthlyGrowthRate(fptr(1000000), fptr(-5000), 0.01))
	assert.Equal(t, 0.01, MonthlyGrowthRate(nil, fptr(1000000), 0.01))
}

func TestProjectRevenue_ShapeAndFirstPoint(t *testing.T) {
	points := ProjectRevenue(fptr(1000000), 0.01)

	require.Len(t, points, Horizon)
	for i, p := range points {
		assert.Equal(t, i, p.PeriodIndex)
	}

	// value[0] = (revenue/12) * (1+r)
	assert.Equal(t, calc.Round2(1000000.0/12*1.01), points[0].Value)
	// value[11] = (revenue/12) * (1+r)^12
	assert.Equal(t, calc.Round2(1000000.0/12*math.Pow(1.01, 12)), points[11].Value)
}

func TestProjectRevenue_MonotoneUnderPositiveRate(t *testing.T) {
	points := ProjectRevenue(fptr(600000), 0.02)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Value, points[i-1].Value)
	}
}

func TestProjectRevenue_NilRevenueKeepsShape(t *testing.T) {
	// The 12-point shape is unconditional; without a revenue base every
	// point projects from zero.
	points := ProjectRevenue(nil, 0.01)

	require.Len(t, points, Horizon)
	for _, p := range points {
		assert.Equal(t, 0.0, p.Value)
	}
}

func TestProjectRevenue_Deterministic(t *testing.T) {
	a := ProjectRevenue(fptr(345678.91), 0.0137)
	b := ProjectRevenue(fptr(345678.91), 0.0137)
	assert.Equal(t, a, b)
}

func TestProjectProfit(t *testing.T) {
	points := ProjectProfit(fptr(120000), 0.01)
	require.Len(t, points, Horizon)
	assert.Equal(t, calc.Round2(10000*1.01), points[0].Value)

	// Profit projection is supplementary: no profit, no series.
	assert.Nil(t, ProjectProfit(nil, 0.01))
}
