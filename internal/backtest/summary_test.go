package backtest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourusername/paddock-edge/internal/models"
)

func TestTallySummarizeROI(t *testing.T) {
	cfg := demoConfig()
	tal := newTally()

	// two races: one full sweep, one total miss
	tal.record(models.BacktestOutcome{
		Date: "20250103", RaceNo: 1, AxisHorse: "a", ActualRank: 1,
		WinHit: true, PlaceHit: true, QuinellaHit: true, TrioHit: true,
		WinReturn:      decimal.NewFromFloat(4.5),
		QuinellaReturn: decimal.NewFromFloat(12.5),
		TrioReturn:     decimal.NewFromFloat(60),
	})
	tal.record(models.BacktestOutcome{
		Date: "20250103", RaceNo: 2, AxisHorse: "b", ActualRank: models.OrdUnknown,
	})

	s := tal.summarize("run-1", cfg, 2*time.Second)

	if s.Insufficient {
		t.Fatal("two races must not be insufficient")
	}
	if s.TotalRaces != 2 {
		t.Fatalf("expected 2 races, got %d", s.TotalRaces)
	}
	if s.WinHitRate != 50 || s.PlaceHitRate != 50 {
		t.Errorf("expected 50%% hit rates, got win=%.1f place=%.1f", s.WinHitRate, s.PlaceHitRate)
	}
	// win: 4.5 return over 2 unit cost = 225%
	if s.WinROI != 225 {
		t.Errorf("expected win ROI 225, got %.1f", s.WinROI)
	}
	// quinella: 12.5 over 2 races x 5 units = 125%
	if s.QuinellaROI != 125 {
		t.Errorf("expected quinella ROI 125, got %.1f", s.QuinellaROI)
	}
	// trio: 60 over 2 races x 10 units = 300%
	if s.TrioROI != 300 {
		t.Errorf("expected trio ROI 300, got %.1f", s.TrioROI)
	}
}

func TestTallySummarizeEmpty(t *testing.T) {
	s := newTally().summarize("run-2", demoConfig(), time.Second)

	if !s.Insufficient {
		t.Fatal("empty tally must be insufficient")
	}
	if s.TotalRaces != 0 || len(s.Outcomes) != 0 {
		t.Errorf("empty tally must carry no races: %+v", s)
	}
	if s.RunID != "run-2" {
		t.Errorf("run ID must survive: %s", s.RunID)
	}
}

func TestTallyVetoAccuracy(t *testing.T) {
	cfg := demoConfig()
	tal := newTally()
	tal.record(models.BacktestOutcome{Date: "20250103", RaceNo: 1, AxisHorse: "a"})
	tal.vetoTotal = 4
	tal.vetoCorrect = 3

	s := tal.summarize("run-3", cfg, time.Second)
	if s.VetoAccuracy != 75 {
		t.Errorf("expected veto accuracy 75, got %.1f", s.VetoAccuracy)
	}
}
