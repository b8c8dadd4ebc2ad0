// Package main provides the race-day analysis CLI: collect one day, score
// every runner, print rankings, wagering picks and the optional narrative.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/paddock-edge/internal/cache"
	"github.com/yourusername/paddock-edge/internal/config"
	"github.com/yourusername/paddock-edge/internal/datasource"
	applogger "github.com/yourusername/paddock-edge/internal/logger"
	"github.com/yourusername/paddock-edge/internal/models"
	"github.com/yourusername/paddock-edge/internal/narrative"
	"github.com/yourusername/paddock-edge/internal/patterns"
	"github.com/yourusername/paddock-edge/internal/scoring"
	"github.com/yourusername/paddock-edge/internal/service"
)

var (
	configFile    string
	raceDate      string
	track         string
	raceNo        int
	withNarrative bool
	scanStart     string
	scanEnd       string

	logger *logrus.Logger
	cfg    *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&raceDate, "date", "d", time.Now().Format("20060102"), "Race date (YYYYMMDD)")
	rootCmd.Flags().StringVarP(&track, "track", "t", "서울", "Track (서울/제주/부산)")
	rootCmd.Flags().IntVarP(&raceNo, "race", "r", 0, "Race number, 0 analyzes the whole card")
	rootCmd.Flags().BoolVar(&withNarrative, "narrative", false, "Request a generated narrative per race")
	scanCmd.Flags().StringVar(&scanStart, "start", time.Now().AddDate(0, -1, 0).Format("20060102"), "Scan window start (YYYYMMDD)")
	scanCmd.Flags().StringVar(&scanEnd, "end", time.Now().Format("20060102"), "Scan window end (YYYYMMDD)")
	rootCmd.AddCommand(scanCmd)
}

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score and rank one race day",
	Long:  `Collect a race day from the KRA portal (or cache), run the quantitative handicapping engine and print rankings and trio picks per race.`,
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
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyzeDay(cmd.Context())
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan past results for high-dividend upset races",
	RunE: func(cmd *cobra.Command, args []string) error {
		return scanPatterns(cmd.Context())
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func scanPatterns(ctx context.Context) error {
	start, err := time.Parse("20060102", scanStart)
	if err != nil {
		return fmt.Errorf("invalid scan start date %q: %w", scanStart, err)
	}
	end, err := time.Parse("20060102", scanEnd)
	if err != nil {
		return fmt.Errorf("invalid scan end date %q: %w", scanEnd, err)
	}
	if start.After(end) {
		return fmt.Errorf("scan start date is after end date")
	}

	collector := datasource.NewCollector(cfg, logger)
	collect := service.NewCollectService(collector, cache.New(cfg.Cache.Root), logger)
	result := patterns.NewAnalyzer(collect, logger).Scan(ctx, start, end)

	fmt.Printf("고배당 경주 스캔: %s ~ %s (%d일 분석)\n", scanStart, scanEnd, result.Summary.DaysAnalyzed)
	if len(result.Races) == 0 {
		fmt.Println("고배당 경주 없음")
		return nil
	}
	for _, race := range result.Races {
		fmt.Printf("  %s %s %d경주: 복승 %s배 / 삼복 %s배, 우승마 %s (배당 %s, 인기 %d위), 1인기마 %d착\n",
			race.Date, race.Track, race.RaceNo,
			race.QuinellaDiv.StringFixed(1), race.TrioDiv.StringFixed(1),
			race.WinnerName, race.WinnerOdds.StringFixed(1), race.WinnerOddsRank, race.FavoriteOrd)
	}
	s := result.Summary
	fmt.Printf("요약: %d경주 적발, 평균 복승 %.1f배 / 삼복 %.1f배, 우승마 평균 인기 %.1f위, 1인기 착외율 %.1f%%\n",
		s.RacesFlagged, s.AvgQuinellaDiv, s.AvgTrioDiv, s.AvgWinnerRank, s.FavoriteOut)
	return nil
}

func loadAWSSecrets(ctx context.Context) error {
	region := os.Getenv("AWS_REGION")
	secretName := os.Getenv("AWS_SECRET_NAME")
	if region == "" || secretName == "" {
		return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
	}
	return config.LoadSecretsFromAWS(ctx, cfg, region, secretName)
}

func analyzeDay(ctx context.Context) error {
	collector := datasource.NewCollector(cfg, logger)
	collect := service.NewCollectService(collector, cache.New(cfg.Cache.Root), logger)

	day, err := collect.FetchDay(ctx, raceDate, track)
	if err != nil {
		return err
	}
	if len(day.Entries) == 0 {
		fmt.Printf("%s %s: 출전표 없음\n", raceDate, track)
		return nil
	}

	analyzer := scoring.NewAnalyzer(scoring.DefaultConfig())
	narrator := narrative.NewNarrator(cfg, logger)

	groups := datasource.GroupEntriesByRace(day.Entries)
	for _, no := range datasource.RaceNumbers(groups) {
		if raceNo != 0 && no != raceNo {
			continue
		}
		analyzeRace(ctx, analyzer, narrator, no, groups[no], day.Training)
	}
	return nil
}

func analyzeRace(ctx context.Context, analyzer *scoring.Analyzer, narrator *narrative.Narrator, no int, rows models.Table, training models.Table) {
	analyses := make([]models.HorseAnalysis, 0, len(rows))
	for _, row := range rows {
		entry := datasource.BuildEntry(row, training)
		analyses = append(analyses, analyzer.AnalyzeHorse(entry))
	}
	ranked := scoring.RankHorses(analyses)
	pick := scoring.GenerateTrioPicks(ranked)

	fmt.Printf("\n━━━ %d경주 (%s %s) ━━━\n", no, raceDate, track)
	for _, h := range ranked {
		marker := fmt.Sprintf("%2d.", h.Rank)
		if h.Rank == models.RankVeto {
			marker = "🚫 "
		}
		fmt.Printf("%s %s (%s) %.1f점", marker, h.HorseName, h.HorseNo, h.TotalScore)
		if h.DarkHorse {
			fmt.Printf(" ★복병")
		}
		if h.Veto {
			fmt.Printf(" [%s]", h.VetoReason)
		}
		fmt.Println()
	}

	if pick.Insufficient {
		fmt.Println("베팅 조합: 출전마 부족")
	} else {
		fmt.Printf("베팅 조합 (%d건): %s\n", pick.NumBets, pick.Summary)
	}

	if withNarrative && narrator.Enabled() {
		if text := narrator.RaceNarrative(ctx, raceDate, track, no, ranked); text != "" {
			fmt.Printf("\n[해설]\n%s\n", text)
		}
	}
}
