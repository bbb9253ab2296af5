package risk

import (
	"sme_assessment/pkg/core/calc"
)

// Severity tags a risk finding. High > Medium > Low.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

var severityRank = map[Severity]int{
	SeverityLow:    1,
	SeverityMedium: 2,
	SeverityHigh:   3,
}

// Exceeds reports whether s is strictly more severe than other.
func (s Severity) Exceeds(other Severity) bool {
	return severityRank[s] > severityRank[other]
}

// Finding is a single typed, severity-tagged flag raised by one detection
// rule. Findings are immutable once produced.
type Finding struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// =============================================================================
// RISK DETECTOR
// Each rule is evaluated independently; rules are non-exclusive and emit at
// most one finding per type. A rule whose inputs are missing is skipped, not
// flagged: absence of evidence is not evidence of risk.
// =============================================================================

// Detect runs the rule set against a ratio set and an optional chronological
// cash-flow series (oldest first, current period last). The returned slice
// is ordered by rule and contains no duplicate types.
func Detect(ratios *calc.RatioSet, cashFlowSeries []float64) []Finding {
	var findings []Finding

	if ratios.ProfitMargin != nil && *ratios.ProfitMargin < 0 {
		findings = append(findings, Finding{
			Type:        "Profitability Risk",
			Severity:    SeverityHigh,
			Description: "Negative profit margin",
		})
	}

	if ratios.CurrentRatio != nil && *ratios.CurrentRatio < 1.0 {
		findings = append(findings, Finding{
			Type:        "Liquidity Risk",
			Severity:    SeverityHigh,
			Description: "Current ratio below 1.0",
		})
	}

	if ratios.DebtToEquity != nil && *ratios.DebtToEquity >= 2.0 {
		severity := SeverityMedium
		description := "Debt-to-equity at or above 2.0"
		if *ratios.DebtToEquity > 4.0 {
			severity = SeverityHigh
			description = "Debt-to-equity above 4.0"
		}
		findings = append(findings, Finding{
			Type:        "Leverage Risk",
			Severity:    severity,
			Description: description,
		})
	}

	if hasConsecutiveDeclines(cashFlowSeries, 2) {
		findings = append(findings, Finding{
			Type:        "Cash Flow Risk",
			Severity:    SeverityMedium,
			Description: "Cash flow declined over consecutive periods",
		})
	}

	return findings
}

// OverallLevel is the maximum severity among the findings, Low for none.
func OverallLevel(findings []Finding) Severity {
	level := SeverityLow
	for _, f := range findings {
		if f.Severity.Exceeds(level) {
			level = f.Severity
		}
	}
	return level
}

// hasConsecutiveDeclines reports whether the series contains a run of at
// least n period-over-period declines. A series too short to show n declines
// never matches, so the rule is silently skipped when history is absent.
func hasConsecutiveDeclines(series []float64, n int) bool {
	streak := 0
	for i := 1; i < len(series); i++ {
		if series[i] < series[i-1] {
			streak++
			if streak >= n {
				return true
			}
		} else {
			streak = 0
		}
	}
	return false
}
