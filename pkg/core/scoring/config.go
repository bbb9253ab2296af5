package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Band defines the linear normalization of one raw ratio to a 0-100
// sub-score: values at or beyond Zero score 0, values at or beyond Full
// score 100, with linear interpolation between. An inverted ratio (lower is
// better, e.g. debt_to_equity) simply has Zero > Full.
type Band struct {
	Zero float64 `yaml:"zero"`
	Full float64 `yaml:"full"`
}

// Config holds the scoring weights and normalization bands. The exact
// thresholds are a stated design choice rather than a recovered constant,
// so they live in configuration (config/scoring.yaml) with these defaults.
type Config struct {
	Weights map[string]float64 `yaml:"weights"`
	Bands   map[string]Band    `yaml:"bands"`
}

// DefaultConfig returns the built-in weights and bands. Weights sum to 1
// over the four scored ratios; missing ratios are renormalized at scoring
// time, not here.
func DefaultConfig() Config {
	return Config{
		Weights: map[string]float64{
			"profit_margin":  0.30,
			"current_ratio":  0.20,
			"debt_to_equity": 0.25,
			"roe":            0.25,
		},
		Bands: map[string]Band{
			"profit_margin":  {Zero: 0.0, Full: 0.20},
			"current_ratio":  {Zero: 0.5, Full: 2.0},
			"debt_to_equity": {Zero: 4.0, Full: 0.5}, // inverted: lower is better
			"roe":            {Zero: 0.0, Full: 0.25},
		},
	}
}

// LoadConfig reads a scoring config from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read scoring config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse scoring config: %w", err)
	}
	if len(cfg.Weights) == 0 || len(cfg.Bands) == 0 {
		return Config{}, fmt.Errorf("scoring config %s is missing weights or bands", path)
	}
	return cfg, nil
}
