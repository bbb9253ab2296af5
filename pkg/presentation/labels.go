// Package presentation holds the display mapping for ratings and risk
// severities. It is consumed only by serving/UI layers; nothing in
// pkg/core imports it, so scoring logic can never depend on how a verdict
// is rendered.
package presentation

import (
	"sme_assessment/pkg/core/risk"
	"sme_assessment/pkg/core/scoring"
)

// Style is one display entry: a human label and a UI color token.
type Style struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var ratingStyles = map[scoring.Rating]Style{
	scoring.RatingA: {Label: "Excellent creditworthiness", Color: "green"},
	scoring.RatingB: {Label: "Good creditworthiness", Color: "teal"},
	scoring.RatingC: {Label: "Fair creditworthiness", Color: "orange"},
	scoring.RatingD: {Label: "Poor creditworthiness", Color: "red"},
}

var severityStyles = map[risk.Severity]Style{
	risk.SeverityLow:    {Label: "Low risk", Color: "green"},
	risk.SeverityMedium: {Label: "Medium risk", Color: "orange"},
	risk.SeverityHigh:   {Label: "High risk", Color: "red"},
}

// ForRating returns the display style for a rating. Unknown values get the
// D style so a rendering bug degrades visibly rather than invisibly.
func ForRating(r scoring.Rating) Style {
	if s, ok := ratingStyles[r]; ok {
		return s
	}
	return ratingStyles[scoring.RatingD]
}

// ForSeverity returns the display style for a risk severity.
func ForSeverity(s risk.Severity) Style {
	if st, ok := severityStyles[s]; ok {
		return st
	}
	return severityStyles[risk.SeverityHigh]
}
