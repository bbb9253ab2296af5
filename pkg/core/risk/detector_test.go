package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sme_assessment/pkg/core/calc"
)

func fptr(v float64) *float64 { return &v }

func findingTypes(findings []Finding) []string {
	types := make([]string, len(findings))
	for i, f := range findings {
		types[i] = f.Type
	}
	return types
}

func TestDetect_HealthyRatiosNoFindings(t *testing.T) {
	ratios := &calc.RatioSet{
		ProfitMargin: fptr(0.12),
		CurrentRatio: fptr(1.8),
		DebtToEquity: fptr(0.9),
	}

	findings := Detect(ratios, nil)

	assert.Empty(t, findings)
	assert.Equal(t, SeverityLow, OverallLevel(findings))
}

func TestDetect_NegativeMarginIsHighProfitabilityRisk(t *testing.T) {
	findings := Detect(&calc.RatioSet{ProfitMargin: fptr(-0.02)}, nil)

	require.Len(t, findings, 1)
	assert.Equal(t, "Profitability Risk", findings[0].Type)
	assert.Equal(t, SeverityHigh, findings[0].Severity)
}

func TestDetect_LowCurrentRatioIsHighLiquidityRisk(t *testing.T) {
	findings := Detect(&calc.RatioSet{CurrentRatio: fptr(0.8)}, nil)

	require.Len(t, findings, 1)
	assert.Equal(t, "Liquidity Risk", findings[0].Type)
	assert.Equal(t, SeverityHigh, findings[0].Severity)
}

func TestDetect_LeverageTiers(t *testing.T) {
	cases := []struct {
		dte      float64
		severity Severity
		found    bool
	}{
		{1.9, "", false},
		{2.0, SeverityMedium, true}, // boundary is inclusive
		{3.5, SeverityMedium, true},
		{4.0, SeverityMedium, true}, // escalation is strict
		{4.1, SeverityHigh, true},
	}
	for _, c := range cases {
		findings := Detect(&calc.RatioSet{DebtToEquity: fptr(c.dte)}, nil)
		if !c.found {
			assert.Emptyf(t, findings, "dte %v", c.dte)
			continue
		}
		require.Lenf(t, findings, 1, "dte %v", c.dte)
		assert.Equalf(t, "Leverage Risk", findings[0].Type, "dte %v", c.dte)
		assert.Equalf(t, c.severity, findings[0].Severity, "dte %v", c.dte)
	}
}

func TestDetect_MissingRatiosSkipRules(t *testing.T) {
	// Nil ratios are not evidence of risk; every rule is skipped.
	findings := Detect(&calc.RatioSet{}, nil)
	assert.Empty(t, findings)
}

func TestDetect_CashFlowDecline(t *testing.T) {
	ratios := &calc.RatioSet{}

	// Two consecutive declines trigger the rule.
	findings := Detect(ratios, []float64{100, 90, 80})
	require.Len(t, findings, 1)
	assert.Equal(t, "Cash Flow Risk", findings[0].Type)
	assert.Equal(t, SeverityMedium, findings[0].Severity)

	// A recovery in between resets the streak.
	assert.Empty(t, Detect(ratios, []float64{100, 90, 95, 85}))

	// One decline is not a trend.
	assert.Empty(t, Detect(ratios, []float64{100, 80}))

	// No history: rule skipped, not flagged.
	assert.Empty(t, Detect(ratios, nil))
}

func TestDetect_MultipleIndependentFindings(t *testing.T) {
	ratios := &calc.RatioSet{
		ProfitMargin: fptr(-0.10),
		CurrentRatio: fptr(0.7),
		DebtToEquity: fptr(2.5),
	}

	findings := Detect(ratios, []float64{50, 40, 30})

	assert.ElementsMatch(t,
		[]string{"Profitability Risk", "Liquidity Risk", "Leverage Risk", "Cash Flow Risk"},
		findingTypes(findings))
	assert.Equal(t, SeverityHigh, OverallLevel(findings))
}

func TestOverallLevel(t *testing.T) {
	assert.Equal(t, SeverityLow, OverallLevel(nil))
	assert.Equal(t, SeverityMedium, OverallLevel([]Finding{{Severity: SeverityMedium}}))
	assert.Equal(t, SeverityHigh, OverallLevel([]Finding{
		{Severity: SeverityMedium},
		{Severity: SeverityHigh},
		{Severity: SeverityLow},
	}))
}
