// Package backtest replays historical race days through the scoring engine
// and measures how the axis-centric wagering strategy would have performed.
package backtest

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/paddock-edge/internal/datasource"
	"github.com/yourusername/paddock-edge/internal/logger"
	"github.com/yourusername/paddock-edge/internal/metrics"
	"github.com/yourusername/paddock-edge/internal/models"
	"github.com/yourusername/paddock-edge/internal/scoring"
)

// DaySource loads one race day for simulation. The collect service satisfies
// this in live mode; demo mode wraps the synthetic source directly so no
// generated data ends up in the on-disk cache.
type DaySource interface {
	FetchDay(ctx context.Context, date, track string) (*models.RaceDay, error)
}

// CollectorSource adapts a raw data collector into a DaySource, bypassing
// the file cache.
type CollectorSource struct {
	Collector datasource.Collector
}

// FetchDay collects the day straight from the underlying source.
func (s CollectorSource) FetchDay(ctx context.Context, date, track string) (*models.RaceDay, error) {
	return s.Collector.CollectDay(ctx, date, track)
}

// Engine orchestrates backtesting runs
type Engine struct {
	config   BacktestConfig
	analyzer *scoring.Analyzer
	source   DaySource
	runLog   *logger.RunLogger
	logger   *logrus.Logger
}

// NewEngine creates a new backtesting engine
func NewEngine(cfg BacktestConfig, scoringCfg scoring.Config, source DaySource, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
	}
	return &Engine{
		config:   cfg,
		analyzer: scoring.NewAnalyzer(scoringCfg),
		source:   source,
		runLog:   logger.NewRunLogger(log),
		logger:   log,
	}
}

// Config returns the backtest configuration
func (e *Engine) Config() BacktestConfig {
	return e.config
}

// Run replays every race day in the configured window and returns the
// aggregated summary. A window with no usable data yields an insufficient
// summary, not an error.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	runID := uuid.NewString()
	start := time.Now()
	startDate := e.config.StartDate.Format("20060102")
	endDate := e.config.EndDate.Format("20060102")
	e.runLog.LogRunStart(runID, startDate, endDate, e.config.Track, e.config.Demo)

	tally := newTally()
	for _, date := range e.config.RaceDates() {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		if err := e.processDay(ctx, date, tally); err != nil {
			e.runLog.LogDaySkipped(date, e.config.Track, err.Error())
		}
	}

	elapsed := time.Since(start)
	summary := tally.summarize(runID, e.config, elapsed)

	metrics.RecordBacktestDuration(elapsed.Seconds())
	if !summary.Insufficient {
		metrics.UpdatePlaceHitRate(summary.PlaceHitRate)
		metrics.UpdateTrioROI(summary.TrioROI)
	}
	e.runLog.LogRunComplete(runID, summary.TotalRaces, elapsed)

	return summary, nil
}

// processDay loads one date and simulates every race on it.
func (e *Engine) processDay(ctx context.Context, date string, tally *tally) error {
	day, err := e.source.FetchDay(ctx, date, e.config.Track)
	if err != nil {
		return err
	}
	if day.Empty() {
		return models.ErrNoData
	}

	groups := datasource.GroupEntriesByRace(day.Entries)
	resultsByRace := datasource.ResultsByRace(day.Results)

	for _, raceNo := range datasource.RaceNumbers(groups) {
		results := resultsByRace[raceNo]
		if len(results) == 0 {
			continue
		}

		ranked := e.rankRace(groups[raceNo], day.Training)
		if len(ranked) == 0 {
			continue
		}

		outcome := evaluateRace(date, e.config.Track, raceNo, ranked, results, tally)
		tally.record(outcome)

		metrics.RecordRaceEvaluated()
		numBets := e.config.QuinellaUnit + e.config.TrioUnit
		e.runLog.LogRaceEvaluated(date, strconv.Itoa(raceNo), outcome.AxisHorse, numBets, outcome.TrioHit)
	}

	return nil
}

// rankRace analyzes every entry row of one race and ranks the field. Each
// analysis is independent, so the field order never affects scores.
func (e *Engine) rankRace(rows models.Table, training models.Table) []models.HorseAnalysis {
	analyses := make([]models.HorseAnalysis, 0, len(rows))
	for _, row := range rows {
		entry := datasource.BuildEntry(row, training)
		analyses = append(analyses, e.analyzer.AnalyzeHorse(entry))
	}
	return scoring.RankHorses(analyses)
}
