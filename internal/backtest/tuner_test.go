package backtest

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/paddock-edge/internal/datasource"
	"github.com/yourusername/paddock-edge/internal/models"
)

func TestGridShape(t *testing.T) {
	grid := Grid()
	if len(grid) != 6 {
		t.Fatalf("expected 6 candidates (3 bonuses x 2 profiles), got %d", len(grid))
	}

	seen := make(map[string]bool)
	for _, c := range grid {
		if seen[c.Label] {
			t.Errorf("duplicate candidate label %s", c.Label)
		}
		seen[c.Label] = true
		if c.WideBonus != 20 && c.WideBonus != 30 && c.WideBonus != 40 {
			t.Errorf("unexpected wide bonus %f", c.WideBonus)
		}
		if len(c.PositionWeights) == 0 {
			t.Errorf("candidate %s has no position weights", c.Label)
		}
	}
}

func TestTunerPicksBestCandidate(t *testing.T) {
	source := CollectorSource{Collector: datasource.NewSyntheticSource(7)}
	tuner := NewTuner(demoConfig(), source, quietLog())

	result, err := tuner.Run(context.Background())
	if err != nil {
		t.Fatalf("tuner run failed: %v", err)
	}
	if len(result.Candidates) != 6 {
		t.Fatalf("expected 6 evaluated candidates, got %d", len(result.Candidates))
	}
	if result.Best.Candidate.Label == "" {
		t.Fatal("no best candidate selected")
	}
	for _, c := range result.Candidates {
		if !c.Summary.Insufficient && c.Score > result.Best.Score {
			t.Errorf("candidate %s (%.1f) beats selected best %s (%.1f)",
				c.Candidate.Label, c.Score, result.Best.Candidate.Label, result.Best.Score)
		}
	}
}

func TestTunerFirstEncounteredWinsTies(t *testing.T) {
	// The synthetic positions carry no wide marker, so the three wide-bonus
	// magnitudes tie within each profile. Ties keep the first candidate.
	source := CollectorSource{Collector: datasource.NewSyntheticSource(11)}
	tuner := NewTuner(demoConfig(), source, quietLog())

	result, err := tuner.Run(context.Background())
	if err != nil {
		t.Fatalf("tuner run failed: %v", err)
	}

	best := result.Best.Score
	tied := true
	for _, c := range result.Candidates {
		if c.Score != best {
			tied = false
		}
	}
	if tied && result.Best.Candidate.Label != result.Candidates[0].Candidate.Label {
		t.Errorf("tie must keep the first candidate, got %s", result.Best.Candidate.Label)
	}
}

func TestTunerNoDataIsTerminal(t *testing.T) {
	tuner := NewTuner(demoConfig(), failingSource{}, quietLog())

	_, err := tuner.Run(context.Background())
	if err == nil {
		t.Fatal("expected terminal no-data error")
	}
	if !errors.Is(err, models.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}
