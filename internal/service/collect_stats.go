package service

import (
	"fmt"
	"sync"
	"time"
)

// CollectStats tracks statistics about race day collection
type CollectStats struct {
	mu            sync.RWMutex
	StartTime     time.Time
	DaysRequested int
	CacheHits     int
	DaysCollected int
	EmptyDays     int
	Failures      int
	TotalEntries  int
}

// NewCollectStats creates a new stats tracker
func NewCollectStats() *CollectStats {
	return &CollectStats{
		StartTime: time.Now(),
	}
}

// Reset resets all counters
func (s *CollectStats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.StartTime = time.Now()
	s.DaysRequested = 0
	s.CacheHits = 0
	s.DaysCollected = 0
	s.EmptyDays = 0
	s.Failures = 0
	s.TotalEntries = 0
}

// RecordRequest increments the requested-day count
func (s *CollectStats) RecordRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DaysRequested++
}

// RecordCacheHit increments the cache hit count
func (s *CollectStats) RecordCacheHit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CacheHits++
}

// RecordDayCollected increments the collected-day count
func (s *CollectStats) RecordDayCollected(entries int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DaysCollected++
	s.TotalEntries += entries
}

// RecordEmptyDay increments the empty-day count
func (s *CollectStats) RecordEmptyDay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.EmptyDays++
}

// RecordFailure increments the failure count
func (s *CollectStats) RecordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failures++
}

// String returns a formatted string representation of the stats
func (s *CollectStats) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hitRate := float64(0)
	if s.DaysRequested > 0 {
		hitRate = float64(s.CacheHits) / float64(s.DaysRequested) * 100
	}

	return fmt.Sprintf(
		"CollectStats{Requested=%d, CacheHits=%d (%.1f%%), Collected=%d, Empty=%d, Failures=%d, Entries=%d, Elapsed=%v}",
		s.DaysRequested,
		s.CacheHits,
		hitRate,
		s.DaysCollected,
		s.EmptyDays,
		s.Failures,
		s.TotalEntries,
		time.Since(s.StartTime).Round(time.Millisecond),
	)
}
