package optimize

import (
	"fmt"
	"sort"
	"strings"

	"sme_assessment/pkg/core/calc"
)

// ExpenseThreshold is the share of revenue above which an expense category
// is treated as an outlier worth a suggestion.
const ExpenseThreshold = 0.15

// Suggestion is one cost-optimization recommendation for a single expense
// category. PotentialSavings is never negative: a category only qualifies
// when its amount exceeds the threshold line.
type Suggestion struct {
	Category         string  `json:"category"`
	Suggestion       string  `json:"suggestion"`
	Action           string  `json:"action"`
	PotentialSavings float64 `json:"potential_savings"`
}

// categoryTemplates carries tailored text for commonly seen category names.
// Category keys are free-form upstream, so anything not listed here falls
// back to the generic template.
var categoryTemplates = map[string]struct{ suggestion, action string }{
	"rent":      {"Rent consumes an outsized share of revenue", "Renegotiate the lease or evaluate smaller premises"},
	"salaries":  {"Payroll costs are high relative to revenue", "Review staffing levels and overtime against output"},
	"marketing": {"Marketing spend is high relative to revenue", "Shift budget toward channels with measured returns"},
	"utilities": {"Utility costs are above the expected share of revenue", "Audit consumption and renegotiate supply contracts"},
	"logistics": {"Logistics costs are eating into margin", "Consolidate shipments and retender carrier contracts"},
	"inventory": {"Inventory carrying costs are high relative to revenue", "Reduce slow-moving stock and tighten reorder points"},
	"supplies":  {"Supply purchases are high relative to revenue", "Pool purchasing and negotiate volume discounts"},
}

// Suggest scans the expense breakdown for categories whose amount exceeds
// the threshold share of revenue. With no revenue to measure against,
// nothing qualifies. Output order is deterministic (sorted by category).
func Suggest(breakdown map[string]float64, revenue *float64) []Suggestion {
	if revenue == nil || *revenue <= 0 || len(breakdown) == 0 {
		return nil
	}

	line := ExpenseThreshold * *revenue

	categories := make([]string, 0, len(breakdown))
	for category := range breakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var suggestions []Suggestion
	for _, category := range categories {
		amount := breakdown[category]
		if amount <= line {
			continue
		}
		text, ok := categoryTemplates[strings.ToLower(category)]
		if !ok {
			text.suggestion = fmt.Sprintf("%s spending exceeds %.0f%% of revenue", category, ExpenseThreshold*100)
			text.action = fmt.Sprintf("Review %s costs for reduction opportunities", strings.ToLower(category))
		}
		suggestions = append(suggestions, Suggestion{
			Category:         category,
			Suggestion:       text.suggestion,
			Action:           text.action,
			PotentialSavings: calc.Round2(amount - line),
		})
	}
	return suggestions
}
