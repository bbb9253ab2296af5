package benchmark

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"sme_assessment/pkg/core/calc"
)

// GeneralIndustry is the fallback reference row. An unknown or empty
// industry silently compares against it; that is an explicit design choice,
// not an error condition.
const GeneralIndustry = "general"

// IndustryBenchmark is one reference row: typical ratio values for the
// industry plus the baseline monthly growth rate used by the forecaster
// when no prior-year revenue is available.
type IndustryBenchmark struct {
	Ratios         map[string]float64 `yaml:"ratios"`
	BaselineGrowth float64            `yaml:"baseline_growth"`
}

// Table is the static, industry-keyed reference table. It is loaded once
// upstream and passed into the assessment engine as an immutable argument.
type Table struct {
	Industries map[string]IndustryBenchmark `yaml:"industries"`
}

// Comparison pairs a business's own ratio with the industry reference.
// Own is nil when the ratio could not be computed from the statement.
type Comparison struct {
	Own      *float64 `json:"own"`
	Industry float64  `json:"industry"`
}

// DefaultTable returns the built-in reference rows. Values mirror the
// published SME reference ranges the original assessment service shipped.
func DefaultTable() Table {
	return Table{
		Industries: map[string]IndustryBenchmark{
			"manufacturing": {
				Ratios:         map[string]float64{"profit_margin": 0.15, "debt_to_equity": 1.5, "current_ratio": 1.8},
				BaselineGrowth: 0.008,
			},
			"retail": {
				Ratios:         map[string]float64{"profit_margin": 0.05, "debt_to_equity": 1.0, "current_ratio": 1.5},
				BaselineGrowth: 0.010,
			},
			"services": {
				Ratios:         map[string]float64{"profit_margin": 0.20, "debt_to_equity": 0.8, "current_ratio": 2.0},
				BaselineGrowth: 0.012,
			},
			"agriculture": {
				Ratios:         map[string]float64{"profit_margin": 0.10, "debt_to_equity": 1.2, "current_ratio": 1.6},
				BaselineGrowth: 0.006,
			},
			"logistics": {
				Ratios:         map[string]float64{"profit_margin": 0.08, "debt_to_equity": 1.3, "current_ratio": 1.4},
				BaselineGrowth: 0.009,
			},
			"ecommerce": {
				Ratios:         map[string]float64{"profit_margin": 0.12, "debt_to_equity": 0.9, "current_ratio": 1.7},
				BaselineGrowth: 0.015,
			},
			GeneralIndustry: {
				Ratios:         map[string]float64{"profit_margin": 0.10, "debt_to_equity": 1.2, "current_ratio": 1.6},
				BaselineGrowth: 0.010,
			},
		},
	}
}

// LoadTable reads a benchmark table from a YAML file and verifies the
// general fallback row exists.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read benchmark table: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("failed to parse benchmark table: %w", err)
	}
	if _, ok := t.Industries[GeneralIndustry]; !ok {
		return Table{}, fmt.Errorf("benchmark table %s has no %q fallback row", path, GeneralIndustry)
	}
	return t, nil
}

// Lookup resolves an industry name (case-insensitive) to its reference row,
// falling back to the general row for anything unknown.
func (t Table) Lookup(industry string) IndustryBenchmark {
	if row, ok := t.Industries[strings.ToLower(strings.TrimSpace(industry))]; ok {
		return row
	}
	return t.Industries[GeneralIndustry]
}

// Compare pairs the business's own ratios with the reference row, one entry
// per ratio the row carries.
func Compare(ratios *calc.RatioSet, ref IndustryBenchmark) map[string]Comparison {
	out := make(map[string]Comparison, len(ref.Ratios))
	for name, industryValue := range ref.Ratios {
		out[name] = Comparison{Own: ratios.Get(name), Industry: industryValue}
	}
	return out
}
