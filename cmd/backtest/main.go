// Package main provides the entry point for the backtesting CLI tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/paddock-edge/internal/backtest"
	"github.com/yourusername/paddock-edge/internal/cache"
	"github.com/yourusername/paddock-edge/internal/config"
	"github.com/yourusername/paddock-edge/internal/datasource"
	applogger "github.com/yourusername/paddock-edge/internal/logger"
	"github.com/yourusername/paddock-edge/internal/scoring"
	"github.com/yourusername/paddock-edge/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		startDate  = flag.String("start", "", "Override start date (YYYYMMDD)")
		endDate    = flag.String("end", "", "Override end date (YYYYMMDD)")
		track      = flag.String("track", "", "Override track (서울/제주/부산)")
		tune       = flag.Bool("tune", false, "Run the parameter grid search instead of a single backtest")
		demo       = flag.Bool("demo", false, "Use synthetic race data instead of the portal")
		noAPI      = flag.Bool("no-api", false, "Only use already-cached data, never call the portal")
	)
	flag.Parse()

	cfg := loadConfig(*configPath, *startDate, *endDate, *track, *demo, *noAPI)
	logger := applogger.NewLogger(cfg.App.LogLevel)

	btConfig, err := backtest.FromConfig(&cfg.Backtest)
	if err != nil {
		logger.Fatalf("Invalid backtest config: %v", err)
	}

	source := buildSource(cfg, logger)
	ctx := context.Background()

	if *tune {
		runTuner(ctx, btConfig, source, logger)
		return
	}
	runBacktest(ctx, btConfig, source, logger)
}

func loadConfig(path, startDate, endDate, track string, demo, noAPI bool) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if startDate != "" {
		cfg.Backtest.StartDate = startDate
	}
	if endDate != "" {
		cfg.Backtest.EndDate = endDate
	}
	if track != "" {
		cfg.Backtest.Track = track
	}
	if demo {
		cfg.Backtest.Demo = true
	}
	if noAPI {
		cfg.Backtest.NoAPI = true
	}

	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// buildSource picks where simulated days come from: the synthetic generator
// in demo mode, the cached collect pipeline otherwise.
func buildSource(cfg *config.Config, logger *logrus.Logger) backtest.DaySource {
	if cfg.Backtest.Demo {
		return backtest.CollectorSource{Collector: datasource.NewSyntheticSource(time.Now().UnixNano())}
	}
	collector := datasource.NewCollector(cfg, logger)
	return service.NewCollectService(collector, cache.New(cfg.Cache.Root), logger)
}

func runBacktest(ctx context.Context, btConfig backtest.BacktestConfig, source backtest.DaySource, logger *logrus.Logger) {
	engine := backtest.NewEngine(btConfig, scoring.DefaultConfig(), source, logger)
	summary, err := engine.Run(ctx)
	if err != nil {
		logger.Fatalf("Backtest failed: %v", err)
	}
	fmt.Print(backtest.GenerateConsoleReport(summary))
}

func runTuner(ctx context.Context, btConfig backtest.BacktestConfig, source backtest.DaySource, logger *logrus.Logger) {
	tuner := backtest.NewTuner(btConfig, source, logger)
	result, err := tuner.Run(ctx)
	if err != nil {
		logger.Fatalf("Tuning failed: %v", err)
	}
	fmt.Print(backtest.GenerateTunerReport(result))
}
