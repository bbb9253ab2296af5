package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sme_assessment/pkg/core/calc"
)

func fptr(v float64) *float64 { return &v }

func TestLookup_KnownIndustry(t *testing.T) {
	table := DefaultTable()

	retail := table.Lookup("retail")
	assert.Equal(t, 0.05, retail.Ratios["profit_margin"])
	assert.Equal(t, 1.0, retail.Ratios["debt_to_equity"])

	// Lookup is case- and whitespace-insensitive.
	assert.Equal(t, retail, table.Lookup("  Retail "))
}

func TestLookup_UnknownFallsBackToGeneral(t *testing.T) {
	table := DefaultTable()
	general := table.Industries[GeneralIndustry]

	assert.Equal(t, general, table.Lookup("space mining"))
	assert.Equal(t, general, table.Lookup(""))
}

func TestCompare_PairsOwnWithReference(t *testing.T) {
	table := DefaultTable()
	ratios := &calc.RatioSet{
		ProfitMargin: fptr(0.10),
		DebtToEquity: fptr(2.0),
		// current_ratio deliberately missing
	}

	out := Compare(ratios, table.Lookup("retail"))

	require.Len(t, out, 3)
	require.NotNil(t, out["profit_margin"].Own)
	assert.Equal(t, 0.10, *out["profit_margin"].Own)
	assert.Equal(t, 0.05, out["profit_margin"].Industry)
	assert.Equal(t, 1.0, out["debt_to_equity"].Industry)

	// A ratio the business could not compute still appears, with nil own.
	assert.Nil(t, out["current_ratio"].Own)
	assert.Equal(t, 1.5, out["current_ratio"].Industry)
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.yaml")
	content := `
industries:
  retail:
    ratios:
      profit_margin: 0.06
    baseline_growth: 0.011
  general:
    ratios:
      profit_margin: 0.10
    baseline_growth: 0.010
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 0.06, table.Lookup("retail").Ratios["profit_margin"])
	assert.Equal(t, 0.011, table.Lookup("retail").BaselineGrowth)
}

func TestLoadTable_MissingGeneralRowIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.yaml")
	content := `
industries:
  retail:
    ratios:
      profit_margin: 0.06
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadTable(path)
	assert.Error(t, err)
}
