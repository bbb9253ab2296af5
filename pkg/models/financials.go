package models

// FinancialStatement is one validated fiscal-year submission for a business.
// Every numeric field is nullable: absence is a first-class state, distinct
// from zero. Upstream ingestion (document parsing, field validation) is
// responsible for producing this record; the core never sanitizes it.
type FinancialStatement struct {
	FiscalYear         int      `json:"fiscal_year"`
	Revenue            *float64 `json:"revenue"`
	Expenses           *float64 `json:"expenses"`
	NetProfit          *float64 `json:"net_profit"`
	CashFlow           *float64 `json:"cash_flow"`
	AccountsReceivable *float64 `json:"accounts_receivable"`
	AccountsPayable    *float64 `json:"accounts_payable"`
	Inventory          *float64 `json:"inventory"`
	TotalAssets        *float64 `json:"total_assets"`
	TotalLiabilities   *float64 `json:"total_liabilities"`
	Equity             *float64 `json:"equity"`

	// Category -> amount. Keys are free-form; nothing here is an enum.
	ExpenseBreakdown map[string]float64 `json:"expense_breakdown"`
	RevenueStreams   map[string]float64 `json:"revenue_streams"`
}

// Business carries the read-only profile fields used for benchmarking and
// forecasting defaults.
type Business struct {
	Industry      string   `json:"industry"`
	BusinessType  string   `json:"business_type"`
	AnnualRevenue *float64 `json:"annual_revenue"`
	EmployeeCount int      `json:"employee_count"`
}

// AssessmentInput is the full boundary record handed to the assessment
// engine. History holds earlier statements in chronological order (oldest
// first) and may be empty; the trend rules that need it are skipped when it
// is absent.
type AssessmentInput struct {
	BusinessID string               `json:"business_id"`
	Business   Business             `json:"business"`
	Statement  FinancialStatement   `json:"statement"`
	History    []FinancialStatement `json:"history,omitempty"`
}

// PriorRevenue returns the revenue of the most recent historical statement,
// or nil when no usable prior period exists.
func (in *AssessmentInput) PriorRevenue() *float64 {
	for i := len(in.History) - 1; i >= 0; i-- {
		if in.History[i].Revenue != nil {
			return in.History[i].Revenue
		}
	}
	return nil
}

// CashFlowSeries returns the known cash-flow values across history plus the
// current statement, in chronological order. Periods without a reported
// cash flow are skipped.
func (in *AssessmentInput) CashFlowSeries() []float64 {
	var series []float64
	for _, s := range in.History {
		if s.CashFlow != nil {
			series = append(series, *s.CashFlow)
		}
	}
	if in.Statement.CashFlow != nil {
		series = append(series, *in.Statement.CashFlow)
	}
	return series
}
