// Package main provides the data collection CLI: one-shot race day
// collection into the file cache, or a cron daemon that pre-warms upcoming
// days and serves Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/paddock-edge/internal/cache"
	"github.com/yourusername/paddock-edge/internal/config"
	"github.com/yourusername/paddock-edge/internal/datasource"
	"github.com/yourusername/paddock-edge/internal/health"
	applogger "github.com/yourusername/paddock-edge/internal/logger"
	"github.com/yourusername/paddock-edge/internal/metrics"
	"github.com/yourusername/paddock-edge/internal/scheduler"
	"github.com/yourusername/paddock-edge/internal/service"
)

var (
	configFile string
	raceDate   string
	track      string

	logger   *logrus.Logger
	cfg      *config.Config
	dayCache *cache.DayCache
	collect  *service.CollectService
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")
	dayCmd.Flags().StringVarP(&raceDate, "date", "d", time.Now().Format("20060102"), "Race date (YYYYMMDD)")
	dayCmd.Flags().StringVarP(&track, "track", "t", "서울", "Track (서울/제주/부산)")
}

var rootCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect KRA race data into the file cache",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
			if err := loadAWSSecrets(cmd.Context()); err != nil {
				return err
			}
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		logger = applogger.NewLogger(cfg.App.LogLevel)
		collector := datasource.NewCollector(cfg, logger)
		dayCache = cache.New(cfg.Cache.Root)
		collect = service.NewCollectService(collector, dayCache, logger)
		return nil
	},
}

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Collect a single race day",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := collect.FetchDay(cmd.Context(), raceDate, track)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s: entries=%d training=%d results=%d\n",
			raceDate, track, len(day.Entries), len(day.Training), len(day.Results))
		return nil
	},
}

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the scheduled cache pre-warmer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon(cmd.Context())
	},
}

func main() {
	rootCmd.AddCommand(dayCmd, daemonCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadAWSSecrets(ctx context.Context) error {
	region := os.Getenv("AWS_REGION")
	secretName := os.Getenv("AWS_SECRET_NAME")
	if region == "" || secretName == "" {
		return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
	}
	return config.LoadSecretsFromAWS(ctx, cfg, region, secretName)
}

func runDaemon(ctx context.Context) error {
	sched := scheduler.NewScheduler(collect, logger)
	if err := sched.SchedulePrewarm(cfg.Collector.Schedule, cfg.Collector.Tracks, cfg.Collector.DaysAhead); err != nil {
		return fmt.Errorf("failed to schedule pre-warm job: %w", err)
	}
	if err := sched.Start(); err != nil {
		return err
	}

	healthSrv := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Logger:      logger,
		Cache:       dayCache,
	})
	if err := healthSrv.Start(ctx); err != nil {
		return fmt.Errorf("failed to start health server: %w", err)
	}
	healthSrv.SetReady(true)

	if cfg.Metrics.Enabled {
		go serveMetrics()
	}

	logger.WithField("next_run", sched.GetNextRun()).Info("Collector daemon running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-ctx.Done():
	case <-stop:
	}

	logger.Info("Shutting down collector daemon")
	healthSrv.SetReady(false)
	return sched.Stop()
}

func serveMetrics() {
	metrics.InitRegistry()
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())

	addr := cfg.MetricsAddress()
	logger.WithField("addr", addr).Info("Serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.WithError(err).Error("Metrics server stopped")
	}
}
