// Package scoring implements the quantitative handicapping engine: per-horse
// feature scoring, veto logic, ranking and wagering-combination generation.
package scoring

import (
	"math"
	"strings"
)

// PositionWeight assigns points to a position code. Corner codes are matched
// by containment in table order, first match wins; running-position codes are
// matched exactly.
type PositionWeight struct {
	Code   string
	Points float64
}

// KeywordWeight assigns a score weight to an interference keyword.
type KeywordWeight struct {
	Keyword string
	Weight  float64
}

// Config carries every scorer weight and threshold. It is an immutable value
// constructed once per engine instance; the parameter tuner varies it per run
// instead of mutating shared state.
type Config struct {
	// Position scoring
	PositionWeights []PositionWeight
	WideBonus       float64 // awarded for a placed run with the wide (W) marker

	// Weight veto
	WeightThreshold float64 // kg

	// Training scoring
	TrainingMinCount       int
	TrainingStrongBonus    float64
	TrainingBasePerSession float64

	// Speed scoring
	RecentRaces int // history window

	// Interference scoring
	InterferenceKeywords []KeywordWeight
	PenaltyKeywords      []string
}

// DefaultConfig returns the reference weight tables and thresholds.
func DefaultConfig() Config {
	return Config{
		PositionWeights: []PositionWeight{
			{"4M", 50}, // led through the final corner
			{"3M", 40},
			{"2M", 30},
			{"F", 20},
			{"M", 10},
			{"C", 5},
			{"W", 0}, // wide running scores nothing by itself, see WideBonus
		},
		WideBonus:              30,
		WeightThreshold:        5,
		TrainingMinCount:       14,
		TrainingStrongBonus:    40,
		TrainingBasePerSession: 2,
		RecentRaces:            5,
		InterferenceKeywords: []KeywordWeight{
			{"협착", 5},
			{"낙마", 5},
			{"불이익", 4},
			{"부딪", 4},
			{"주행방해", 4},
			{"꼬리", 3},
			{"진로", 3},
			{"밀려", 3},
			{"능력 발휘", 3},
			{"급감속", 3},
			{"불리한", 3},
		},
		PenaltyKeywords: []string{"경고", "벌칙", "제재", "과태료", "기승정지"},
	}
}

// WithWideBonus returns a copy of the config with the wide-running bonus
// replaced. Used by the tuner grid.
func (c Config) WithWideBonus(bonus float64) Config {
	c.WideBonus = bonus
	return c
}

// WithPositionWeights returns a copy of the config with the position-weight
// table replaced.
func (c Config) WithPositionWeights(weights []PositionWeight) Config {
	c.PositionWeights = weights
	return c
}

// cornerPoints returns the points of the first weight whose code appears in
// the corner-passing code, or 0 when none match.
func (c Config) cornerPoints(corner string) float64 {
	for _, w := range c.PositionWeights {
		if w.Code != "" && strings.Contains(corner, w.Code) {
			return w.Points
		}
	}
	return 0
}

// positionPoints returns the points for an exact running-position code match.
func (c Config) positionPoints(pos string) float64 {
	for _, w := range c.PositionWeights {
		if w.Code == pos {
			return w.Points
		}
	}
	return 0
}

// roundTo rounds v to the given number of decimal places, matching the
// precision the display layer expects.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
