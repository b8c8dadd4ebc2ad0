package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/paddock-edge/internal/cache"
	"github.com/yourusername/paddock-edge/internal/datasource"
	"github.com/yourusername/paddock-edge/internal/logger"
	"github.com/yourusername/paddock-edge/internal/metrics"
	"github.com/yourusername/paddock-edge/internal/models"
)

// CollectService fetches race days through the file cache: cached days are
// served from disk, misses go to the configured data source and are written
// back. A day that collects empty is returned as-is but never cached, so a
// later run can retry it once the portal has data.
type CollectService struct {
	source    datasource.Collector
	cache     *cache.DayCache
	validator *SheetValidator
	stats     *CollectStats
	log       *logger.CollectLogger
	baseLog   *logrus.Logger
}

// NewCollectService creates a new collect service.
func NewCollectService(source datasource.Collector, dayCache *cache.DayCache, baseLogger *logrus.Logger) *CollectService {
	return &CollectService{
		source:    source,
		cache:     dayCache,
		validator: NewSheetValidator(),
		stats:     NewCollectStats(),
		log:       logger.NewCollectLogger(baseLogger),
		baseLog:   baseLogger,
	}
}

// FetchDay returns the race day for (date, track), from cache when present.
func (s *CollectService) FetchDay(ctx context.Context, date, track string) (*models.RaceDay, error) {
	s.stats.RecordRequest()

	if s.cache.Has(date, track) {
		day, err := s.cache.Load(date, track)
		if err == nil {
			metrics.RecordCacheHit()
			s.stats.RecordCacheHit()
			s.log.LogCacheHit(date, track)
			return day, nil
		}
		// unreadable cache entry, re-collect
		s.baseLog.WithError(err).WithField("date", date).Warn("Discarding unreadable cache entry")
	}
	metrics.RecordCacheMiss()

	start := time.Now()
	day, err := s.source.CollectDay(ctx, date, track)
	if err != nil {
		metrics.RecordCollectionFailure()
		s.stats.RecordFailure()
		s.log.LogCollectionFailure(date, track, err)
		return nil, fmt.Errorf("collecting %s/%s from %s: %w", date, track, s.source.Name(), err)
	}

	for _, warning := range s.validator.ValidateDay(day) {
		s.baseLog.WithField("date", date).WithField("track", track).Warn(warning)
	}

	// Upcoming days legitimately have entries but no results yet, so only a
	// missing entry sheet counts as empty here.
	if len(day.Entries) == 0 {
		metrics.RecordEmptyDay()
		s.stats.RecordEmptyDay()
		s.log.LogEmptyDay(date, track)
		return day, nil
	}

	if err := s.cache.Store(day); err != nil {
		s.baseLog.WithError(err).WithField("date", date).Warn("Failed to cache collected day")
	}

	metrics.RecordDayCollected(time.Since(start).Seconds())
	s.stats.RecordDayCollected(len(day.Entries))
	s.log.LogDayCollected(date, track, len(day.Entries), len(day.Results))
	return day, nil
}

// FetchRange fetches a list of race days, skipping days that fail to collect.
// Backtests over long periods must survive individual portal outages.
func (s *CollectService) FetchRange(ctx context.Context, dates []string, track string) []*models.RaceDay {
	days := make([]*models.RaceDay, 0, len(dates))
	for _, date := range dates {
		if err := ctx.Err(); err != nil {
			s.baseLog.WithError(err).Warn("Range collection aborted")
			break
		}
		day, err := s.FetchDay(ctx, date, track)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	return days
}

// SourceName returns the name of the underlying data source.
func (s *CollectService) SourceName() string {
	return s.source.Name()
}

// Stats returns the running collection statistics.
func (s *CollectService) Stats() *CollectStats {
	return s.stats
}
