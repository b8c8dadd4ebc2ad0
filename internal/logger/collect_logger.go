// Package logger provides data collection logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// CollectLogger provides dedicated structured logging for day collection
// and the flat-file cache.
type CollectLogger struct {
	*logrus.Entry
}

// NewCollectLogger creates a new collection logger.
func NewCollectLogger(baseLogger *logrus.Logger) *CollectLogger {
	return &CollectLogger{
		Entry: baseLogger.WithField("component", "collect"),
	}
}

// LogCacheHit logs a day served from the flat-file cache.
func (cl *CollectLogger) LogCacheHit(date, track string) {
	cl.WithFields(logrus.Fields{
		"date":  date,
		"track": track,
	}).Debug("Day cache hit")
}

// LogDayCollected logs a day fetched from the remote source and cached.
func (cl *CollectLogger) LogDayCollected(date, track string, entries, results int) {
	cl.WithFields(logrus.Fields{
		"date":    date,
		"track":   track,
		"entries": entries,
		"results": results,
	}).Info("Race day collected")
}

// LogCollectionFailure logs a failed collection attempt. The day is skipped,
// never fatal to callers.
func (cl *CollectLogger) LogCollectionFailure(date, track string, err error) {
	cl.WithFields(logrus.Fields{
		"date":  date,
		"track": track,
		"error": err.Error(),
	}).Warn("Day collection failed")
}

// LogEmptyDay logs a day the source returned no entries for.
func (cl *CollectLogger) LogEmptyDay(date, track string) {
	cl.WithFields(logrus.Fields{
		"date":  date,
		"track": track,
	}).Debug("No race data for day")
}
