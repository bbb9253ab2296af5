package scoring

import (
	"math"
	"sort"

	"sme_assessment/pkg/core/calc"
)

// =============================================================================
// HEALTH SCORER
// Combines the ratio set into a single 0-100 composite. Missing ratios drop
// out and their weight is redistributed proportionally over the rest, so the
// effective weights always sum to 1 over the data that exists. With no
// scorable ratio at all the score is undefined, not zero.
// =============================================================================

// Result is the outcome of one scoring pass. Score is nil exactly when
// InsufficientData is true.
type Result struct {
	Score            *float64           `json:"score"`
	SubScores        map[string]float64 `json:"sub_scores"`
	InsufficientData bool               `json:"insufficient_data"`
}

// HealthScore computes the weighted composite score for a ratio set.
func HealthScore(ratios *calc.RatioSet, cfg Config) Result {
	subScores := make(map[string]float64)
	totalWeight := 0.0

	// Deterministic iteration: map order must not influence float summation.
	names := make([]string, 0, len(cfg.Weights))
	for name := range cfg.Weights {
		names = append(names, name)
	}
	sort.Strings(names)

	weighted := 0.0
	for _, name := range names {
		value := ratios.Get(name)
		if value == nil {
			continue
		}
		band, ok := cfg.Bands[name]
		if !ok {
			continue
		}
		sub := normalize(*value, band)
		subScores[name] = sub
		weighted += sub * cfg.Weights[name]
		totalWeight += cfg.Weights[name]
	}

	if totalWeight == 0 {
		return Result{InsufficientData: true}
	}

	// Renormalize over available weight, clamp and round.
	score := calc.Round2(clamp(weighted/totalWeight, 0, 100))
	return Result{Score: &score, SubScores: subScores}
}

// normalize maps a raw ratio value onto [0,100] within its band.
func normalize(value float64, band Band) float64 {
	span := band.Full - band.Zero
	if span == 0 {
		return 0
	}
	return clamp((value-band.Zero)/span*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
