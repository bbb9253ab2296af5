package calc

import (
	"math"

	"sme_assessment/pkg/models"
)

// =============================================================================
// RATIO CALCULATOR
// Derives the standard ratio set from one financial statement. A ratio whose
// denominator is missing, zero, or invalid is nil, never an error: division
// by zero is a defined null-producing condition here.
// =============================================================================

// RatioSet holds the derived ratios for a single statement. Nil means the
// ratio could not be computed from the available fields.
type RatioSet struct {
	ProfitMargin        *float64 `json:"profit_margin"`
	CurrentRatio        *float64 `json:"current_ratio"`
	DebtToEquity        *float64 `json:"debt_to_equity"`
	ROE                 *float64 `json:"roe"`
	CashFlowMargin      *float64 `json:"cash_flow_margin"`
	ROA                 *float64 `json:"roa"`
	DebtRatio           *float64 `json:"debt_ratio"`
	ReceivablesTurnover *float64 `json:"receivables_turnover"`
}

// Map flattens the set into the name->value form embedded in an assessment's
// key findings.
func (r *RatioSet) Map() map[string]*float64 {
	return map[string]*float64{
		"profit_margin":        r.ProfitMargin,
		"current_ratio":        r.CurrentRatio,
		"debt_to_equity":       r.DebtToEquity,
		"roe":                  r.ROE,
		"cash_flow_margin":     r.CashFlowMargin,
		"roa":                  r.ROA,
		"debt_ratio":           r.DebtRatio,
		"receivables_turnover": r.ReceivablesTurnover,
	}
}

// Get returns a ratio by its wire name. Unknown names return nil.
func (r *RatioSet) Get(name string) *float64 {
	return r.Map()[name]
}

// ComputeRatios derives the full ratio set from a statement.
//
//	profit_margin        = net_profit / revenue
//	current_ratio        = (accounts_receivable + inventory) / accounts_payable
//	debt_to_equity       = total_liabilities / equity
//	roe                  = net_profit / equity
//	cash_flow_margin     = cash_flow / revenue
//	roa                  = net_profit / total_assets
//	debt_ratio           = total_liabilities / total_assets
//	receivables_turnover = revenue / accounts_receivable
func ComputeRatios(stmt *models.FinancialStatement) *RatioSet {
	if stmt == nil {
		return &RatioSet{}
	}

	return &RatioSet{
		ProfitMargin:        nullDiv(stmt.NetProfit, stmt.Revenue),
		CurrentRatio:        nullDiv(sumParts(stmt.AccountsReceivable, stmt.Inventory), posOnly(stmt.AccountsPayable)),
		DebtToEquity:        nullDiv(stmt.TotalLiabilities, posOnly(stmt.Equity)),
		ROE:                 nullDiv(stmt.NetProfit, posOnly(stmt.Equity)),
		CashFlowMargin:      nullDiv(stmt.CashFlow, stmt.Revenue),
		ROA:                 nullDiv(stmt.NetProfit, posOnly(stmt.TotalAssets)),
		DebtRatio:           nullDiv(stmt.TotalLiabilities, posOnly(stmt.TotalAssets)),
		ReceivablesTurnover: nullDiv(stmt.Revenue, posOnly(stmt.AccountsReceivable)),
	}
}

// nullDiv is the null-propagating division at the heart of the calculator:
// nil numerator, nil denominator, or zero denominator all yield nil.
func nullDiv(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := *num / *den
	return &v
}

// posOnly filters denominators for which a negative value is structurally
// invalid (equity, payables, asset totals). Negative revenue, by contrast,
// is computed as given: plausibility is an upstream concern.
func posOnly(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

// Round2 rounds to two decimal places, half away from zero. Reported scores
// and currency amounts go through this before leaving the core.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sumParts adds the known components of a composite numerator. Both missing
// yields nil; one missing counts as zero.
func sumParts(parts ...*float64) *float64 {
	var total float64
	any := false
	for _, p := range parts {
		if p != nil {
			total += *p
			any = true
		}
	}
	if !any {
		return nil
	}
	return &total
}
