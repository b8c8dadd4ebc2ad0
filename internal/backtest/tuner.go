package backtest

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/paddock-edge/internal/logger"
	"github.com/yourusername/paddock-edge/internal/models"
	"github.com/yourusername/paddock-edge/internal/scoring"
)

// Objective extracts the score a tuner candidate is judged by.
type Objective func(Summary) float64

// PlaceHitRateObjective is the default tuning objective.
func PlaceHitRateObjective(s Summary) float64 {
	return s.PlaceHitRate
}

// Candidate is one point of the tuning grid.
type Candidate struct {
	Label           string
	WideBonus       float64
	PositionWeights []scoring.PositionWeight
}

// CandidateResult pairs a candidate with its backtest summary.
type CandidateResult struct {
	Candidate Candidate
	Summary   Summary
	Score     float64
}

// TunerResult reports the winning candidate and every evaluated one.
type TunerResult struct {
	Best       CandidateResult
	Candidates []CandidateResult
}

// Tuner runs an exhaustive grid search over scoring configurations. The grid
// is deliberately small and fully enumerated; ties keep the first candidate
// encountered.
type Tuner struct {
	config    BacktestConfig
	source    DaySource
	objective Objective
	runLog    *logger.RunLogger
	logger    *logrus.Logger
}

// NewTuner creates a tuner with the default place hit-rate objective.
func NewTuner(cfg BacktestConfig, source DaySource, log *logrus.Logger) *Tuner {
	if log == nil {
		log = logrus.New()
	}
	return &Tuner{
		config:    cfg,
		source:    source,
		objective: PlaceHitRateObjective,
		runLog:    logger.NewRunLogger(log),
		logger:    log,
	}
}

// WithObjective replaces the tuning objective.
func (t *Tuner) WithObjective(obj Objective) *Tuner {
	t.objective = obj
	return t
}

// Grid returns the candidate grid: wide-bonus magnitudes crossed with the
// default and front-biased position profiles.
func Grid() []Candidate {
	frontBiased := []scoring.PositionWeight{
		{Code: "4M", Points: 60},
		{Code: "3M", Points: 40},
		{Code: "2M", Points: 20},
		{Code: "F", Points: 20},
		{Code: "M", Points: 10},
		{Code: "C", Points: 5},
		{Code: "W", Points: 0},
	}

	profiles := []struct {
		name    string
		weights []scoring.PositionWeight
	}{
		{"default", scoring.DefaultConfig().PositionWeights},
		{"front-biased", frontBiased},
	}

	var grid []Candidate
	for _, bonus := range []float64{20, 30, 40} {
		for _, profile := range profiles {
			grid = append(grid, Candidate{
				Label:           fmt.Sprintf("w%.0f/%s", bonus, profile.name),
				WideBonus:       bonus,
				PositionWeights: profile.weights,
			})
		}
	}
	return grid
}

// Run evaluates the whole grid and returns the best candidate. When every
// candidate comes back insufficient the period simply has no data and a
// terminal error is returned.
func (t *Tuner) Run(ctx context.Context) (TunerResult, error) {
	var result TunerResult
	haveBest := false

	for _, candidate := range Grid() {
		scoringCfg := scoring.DefaultConfig().
			WithWideBonus(candidate.WideBonus).
			WithPositionWeights(candidate.PositionWeights)

		engine := NewEngine(t.config, scoringCfg, t.source, t.logger)
		summary, err := engine.Run(ctx)
		if err != nil {
			return TunerResult{}, fmt.Errorf("candidate %s: %w", candidate.Label, err)
		}

		cr := CandidateResult{
			Candidate: candidate,
			Summary:   summary,
			Score:     t.objective(summary),
		}
		result.Candidates = append(result.Candidates, cr)
		t.runLog.LogTunerCandidate(candidate.Label, summary.PlaceHitRate, summary.WinHitRate, summary.TotalRaces)

		if summary.Insufficient {
			continue
		}
		if !haveBest || cr.Score > result.Best.Score {
			result.Best = cr
			haveBest = true
		}
	}

	if !haveBest {
		return TunerResult{}, fmt.Errorf("tuning window produced no races for any candidate: %w", models.ErrNoData)
	}
	return result, nil
}
