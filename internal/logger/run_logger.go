// Package logger provides backtest run logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RunLogger provides dedicated structured logging for backtest runs.
type RunLogger struct {
	*logrus.Entry
}

// NewRunLogger creates a new backtest run logger.
func NewRunLogger(baseLogger *logrus.Logger) *RunLogger {
	return &RunLogger{
		Entry: baseLogger.WithField("component", "backtest"),
	}
}

// LogRunStart logs the beginning of a backtest run.
func (rl *RunLogger) LogRunStart(runID, startDate, endDate, track string, demo bool) {
	rl.WithFields(logrus.Fields{
		"run_id":     runID,
		"start_date": startDate,
		"end_date":   endDate,
		"track":      track,
		"demo":       demo,
	}).Info("Backtest run started")
}

// LogDaySkipped logs a race day excluded from the run.
func (rl *RunLogger) LogDaySkipped(date, track, reason string) {
	rl.WithFields(logrus.Fields{
		"date":   date,
		"track":  track,
		"reason": reason,
	}).Debug("Race day skipped")
}

// LogRaceEvaluated logs one simulated race with its wagering outcome.
func (rl *RunLogger) LogRaceEvaluated(date string, raceNo string, axis string, numBets int, trioHit bool) {
	rl.WithFields(logrus.Fields{
		"date":     date,
		"race_no":  raceNo,
		"axis":     axis,
		"num_bets": numBets,
		"trio_hit": trioHit,
	}).Debug("Race evaluated")
}

// LogRunComplete logs run completion with headline counts.
func (rl *RunLogger) LogRunComplete(runID string, races int, elapsed time.Duration) {
	rl.WithFields(logrus.Fields{
		"run_id":     runID,
		"races":      races,
		"elapsed_ms": elapsed.Milliseconds(),
	}).Info("Backtest run complete")
}

// LogTunerCandidate logs one parameter-grid candidate result.
func (rl *RunLogger) LogTunerCandidate(label string, placeHitRate, winHitRate float64, races int) {
	rl.WithFields(logrus.Fields{
		"candidate":      label,
		"place_hit_rate": placeHitRate,
		"win_hit_rate":   winHitRate,
		"races":          races,
	}).Info("Tuner candidate evaluated")
}
