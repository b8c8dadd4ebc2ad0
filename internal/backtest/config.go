package backtest

import (
	"fmt"
	"time"

	"github.com/yourusername/paddock-edge/internal/config"
)

// BacktestConfig carries the simulation window and wagering cost settings.
type BacktestConfig struct {
	StartDate    time.Time
	EndDate      time.Time
	Track        string
	Demo         bool
	QuinellaUnit int
	TrioUnit     int
}

// FromConfig converts app config to backtest config
func FromConfig(cfg *config.BacktestConfig) (BacktestConfig, error) {
	if cfg == nil {
		return BacktestConfig{}, fmt.Errorf("backtest config is required")
	}
	start, err := time.Parse("20060102", cfg.StartDate)
	if err != nil {
		return BacktestConfig{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("20060102", cfg.EndDate)
	if err != nil {
		return BacktestConfig{}, fmt.Errorf("invalid end date: %w", err)
	}

	bt := BacktestConfig{
		StartDate:    start,
		EndDate:      end,
		Track:        cfg.Track,
		Demo:         cfg.Demo,
		QuinellaUnit: cfg.QuinellaUnit,
		TrioUnit:     cfg.TrioUnit,
	}

	return bt, bt.Validate()
}

// Validate validates backtest config parameters
func (b BacktestConfig) Validate() error {
	if b.StartDate.After(b.EndDate) {
		return fmt.Errorf("start date must be before end date")
	}
	if b.Track == "" {
		return fmt.Errorf("track is required")
	}
	if b.QuinellaUnit <= 0 {
		return fmt.Errorf("quinella unit must be positive")
	}
	if b.TrioUnit <= 0 {
		return fmt.Errorf("trio unit must be positive")
	}
	return nil
}

// RaceDates returns the Friday/Saturday/Sunday dates inside the window as
// YYYYMMDD strings. Seoul races Sat/Sun, Busan Fri/Sun and Jeju Fri/Sat, so
// the union of all three race days is checked; non-race days simply collect
// empty and are skipped.
func (b BacktestConfig) RaceDates() []string {
	var dates []string
	for d := b.StartDate; !d.After(b.EndDate); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Friday, time.Saturday, time.Sunday:
			dates = append(dates, d.Format("20060102"))
		}
	}
	return dates
}
