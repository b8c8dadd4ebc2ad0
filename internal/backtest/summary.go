package backtest

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourusername/paddock-edge/internal/models"
)

// Summary is the aggregated result of one backtest run.
type Summary struct {
	RunID     string        `json:"run_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Track     string        `json:"track"`
	Demo      bool          `json:"demo"`
	Elapsed   time.Duration `json:"elapsed"`

	TotalRaces int `json:"total_races"`

	WinHitRate      float64 `json:"win_hit_rate"`      // percent
	WinROI          float64 `json:"win_roi"`           // percent, 1 unit per race
	PlaceHitRate    float64 `json:"place_hit_rate"`    // percent
	QuinellaHitRate float64 `json:"quinella_hit_rate"` // percent
	QuinellaROI     float64 `json:"quinella_roi"`      // percent
	TrioHitRate     float64 `json:"trio_hit_rate"`     // percent
	TrioROI         float64 `json:"trio_roi"`          // percent

	VetoTotal    int     `json:"veto_total"`
	VetoCorrect  int     `json:"veto_correct"`
	VetoAccuracy float64 `json:"veto_accuracy"` // percent of vetoes verified

	WideBonusTotal   int     `json:"wide_bonus_total"`
	WideBonusHit     int     `json:"wide_bonus_hit"`
	WideBonusHitRate float64 `json:"wide_bonus_hit_rate"` // percent

	// Insufficient is set when the window produced no simulated races at
	// all; every rate above is zero in that case.
	Insufficient bool `json:"insufficient"`

	Outcomes []models.BacktestOutcome `json:"outcomes"`
}

// tally accumulates per-race outcomes and verification counters during a run.
// Returns are summed as decimals so dividend arithmetic stays exact until the
// final percentage conversion.
type tally struct {
	outcomes []models.BacktestOutcome

	winHits, placeHits, quiHits, trioHits int

	winReturn  decimal.Decimal
	quiReturn  decimal.Decimal
	trioReturn decimal.Decimal

	vetoTotal   int
	vetoCorrect int
	wideTotal   int
	wideHit     int
}

func newTally() *tally {
	return &tally{}
}

func (t *tally) record(outcome models.BacktestOutcome) {
	t.outcomes = append(t.outcomes, outcome)
	if outcome.WinHit {
		t.winHits++
		t.winReturn = t.winReturn.Add(outcome.WinReturn)
	}
	if outcome.PlaceHit {
		t.placeHits++
	}
	if outcome.QuinellaHit {
		t.quiHits++
		t.quiReturn = t.quiReturn.Add(outcome.QuinellaReturn)
	}
	if outcome.TrioHit {
		t.trioHits++
		t.trioReturn = t.trioReturn.Add(outcome.TrioReturn)
	}
}

// summarize folds the tally into a Summary. No races means an insufficient
// result rather than an error.
func (t *tally) summarize(runID string, cfg BacktestConfig, elapsed time.Duration) Summary {
	s := Summary{
		RunID:     runID,
		StartDate: cfg.StartDate.Format("20060102"),
		EndDate:   cfg.EndDate.Format("20060102"),
		Track:     cfg.Track,
		Demo:      cfg.Demo,
		Elapsed:   elapsed,
	}

	races := len(t.outcomes)
	if races == 0 {
		s.Insufficient = true
		return s
	}

	s.TotalRaces = races
	s.Outcomes = t.outcomes

	s.WinHitRate = rate(t.winHits, races)
	s.PlaceHitRate = rate(t.placeHits, races)
	s.QuinellaHitRate = rate(t.quiHits, races)
	s.TrioHitRate = rate(t.trioHits, races)

	s.WinROI = roi(t.winReturn, races)
	s.QuinellaROI = roi(t.quiReturn, races*cfg.QuinellaUnit)
	s.TrioROI = roi(t.trioReturn, races*cfg.TrioUnit)

	s.VetoTotal = t.vetoTotal
	s.VetoCorrect = t.vetoCorrect
	s.VetoAccuracy = rate(t.vetoCorrect, t.vetoTotal)

	s.WideBonusTotal = t.wideTotal
	s.WideBonusHit = t.wideHit
	s.WideBonusHitRate = rate(t.wideHit, t.wideTotal)

	return s
}

// rate returns hits/total as a percentage, 0 when total is 0.
func rate(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

// roi returns total returns over total unit cost as a percentage.
func roi(returns decimal.Decimal, unitCost int) float64 {
	if unitCost == 0 {
		return 0
	}
	pct := returns.Div(decimal.NewFromInt(int64(unitCost))).Mul(decimal.NewFromInt(100))
	f, _ := pct.Float64()
	return f
}
