// Package patterns scans historical results for the high-dividend signature:
// races whose quinella or trio dividend blew past the upset thresholds, and
// what the winner and the betting favorite did in them.
package patterns

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/paddock-edge/internal/datasource"
	"github.com/yourusername/paddock-edge/internal/models"
)

// Upset thresholds on recorded dividends, in payout units.
var (
	quinellaThreshold = decimal.NewFromInt(50)
	trioThreshold     = decimal.NewFromInt(100)
)

// DaySource loads one race day, typically the collect service.
type DaySource interface {
	FetchDay(ctx context.Context, date, track string) (*models.RaceDay, error)
}

// HighDividendRace is one flagged race.
type HighDividendRace struct {
	Date   string `json:"date"`
	Track  string `json:"track"`
	RaceNo int    `json:"race_no"`

	QuinellaDiv decimal.Decimal `json:"quinella_div"`
	TrioDiv     decimal.Decimal `json:"trio_div"`

	WinnerName     string          `json:"winner_name"`
	WinnerOdds     decimal.Decimal `json:"winner_odds"`
	WinnerOddsRank int             `json:"winner_odds_rank"` // popularity rank by win odds, 0 = unknown
	FavoriteOrd    int             `json:"favorite_ord"`     // finish of the lowest-odds horse
	EntryCount     int             `json:"entry_count"`
}

// ScanSummary aggregates the flagged races.
type ScanSummary struct {
	DaysAnalyzed   int     `json:"days_analyzed"`
	RacesFlagged   int     `json:"races_flagged"`
	AvgQuinellaDiv float64 `json:"avg_quinella_div"`
	AvgTrioDiv     float64 `json:"avg_trio_div"`
	AvgWinnerRank  float64 `json:"avg_winner_rank"`   // mean popularity rank of upset winners
	FavoriteOut    float64 `json:"favorite_out_rate"` // percent of flagged races with the favorite off the podium
}

// ScanResult is the full high-dividend scan output.
type ScanResult struct {
	Races   []HighDividendRace `json:"races"`
	Summary ScanSummary        `json:"summary"`
}

// Analyzer runs the high-dividend sweep over a date window.
type Analyzer struct {
	source DaySource
	logger *logrus.Logger
}

// NewAnalyzer creates a new pattern analyzer
func NewAnalyzer(source DaySource, log *logrus.Logger) *Analyzer {
	if log == nil {
		log = logrus.New()
	}
	return &Analyzer{source: source, logger: log}
}

// Scan sweeps every race day between start and end, newest first. Days that
// fail to load are skipped.
func (a *Analyzer) Scan(ctx context.Context, start, end time.Time) ScanResult {
	var result ScanResult

	for d := end; !d.Before(start); d = d.AddDate(0, 0, -1) {
		tracks := tracksRacing(d.Weekday())
		if len(tracks) == 0 {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		date := d.Format("20060102")
		for _, track := range tracks {
			day, err := a.source.FetchDay(ctx, date, track)
			if err != nil || day == nil || len(day.Results) == 0 {
				continue
			}
			result.Summary.DaysAnalyzed++
			result.Races = append(result.Races, a.scanDay(date, track, day.Results)...)
		}
	}

	result.Summary.RacesFlagged = len(result.Races)
	summarize(&result)
	return result
}

// scanDay flags every race of one result sheet whose dividends cross a
// threshold.
func (a *Analyzer) scanDay(date, track string, results models.Table) []HighDividendRace {
	var flagged []HighDividendRace

	for raceNo, rows := range datasource.ResultsByRace(results) {
		quiMax, trioMax := maxDividends(rows)
		if quiMax.LessThan(quinellaThreshold) && trioMax.LessThan(trioThreshold) {
			continue
		}

		race := HighDividendRace{
			Date:        date,
			Track:       track,
			RaceNo:      raceNo,
			QuinellaDiv: quiMax,
			TrioDiv:     trioMax,
			EntryCount:  len(rows),
			FavoriteOrd: models.OrdUnknown,
		}

		byOdds := sortedByOdds(rows)
		if len(byOdds) > 0 {
			race.FavoriteOrd = byOdds[0].Ord
		}
		for _, row := range rows {
			if row.Ord != 1 {
				continue
			}
			race.WinnerName = row.HorseName
			race.WinnerOdds = row.WinOdds
			if row.WinOdds.IsPositive() {
				race.WinnerOddsRank = oddsRank(byOdds, row.HorseName)
			}
			break
		}

		flagged = append(flagged, race)
	}

	sort.Slice(flagged, func(i, j int) bool { return flagged[i].RaceNo < flagged[j].RaceNo })
	return flagged
}

func maxDividends(rows []models.RaceResultRow) (decimal.Decimal, decimal.Decimal) {
	quiMax, trioMax := decimal.Zero, decimal.Zero
	for _, row := range rows {
		if row.QuinellaDiv.GreaterThan(quiMax) {
			quiMax = row.QuinellaDiv
		}
		if row.TrioDiv.GreaterThan(trioMax) {
			trioMax = row.TrioDiv
		}
	}
	return quiMax, trioMax
}

// sortedByOdds orders rows by ascending win odds, dropping rows without a
// recorded price.
func sortedByOdds(rows []models.RaceResultRow) []models.RaceResultRow {
	priced := make([]models.RaceResultRow, 0, len(rows))
	for _, row := range rows {
		if row.WinOdds.IsPositive() {
			priced = append(priced, row)
		}
	}
	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].WinOdds.LessThan(priced[j].WinOdds)
	})
	return priced
}

func oddsRank(byOdds []models.RaceResultRow, name string) int {
	for i, row := range byOdds {
		if row.HorseName == name {
			return i + 1
		}
	}
	return 0
}

// tracksRacing maps a weekday to the tracks that race on it: Jeju and Busan
// on Friday, Seoul and Busan on Saturday, Seoul and Jeju on Sunday.
func tracksRacing(day time.Weekday) []string {
	switch day {
	case time.Friday:
		return []string{"제주", "부산"}
	case time.Saturday:
		return []string{"서울", "부산"}
	case time.Sunday:
		return []string{"서울", "제주"}
	default:
		return nil
	}
}

func summarize(result *ScanResult) {
	if len(result.Races) == 0 {
		return
	}

	quis := make([]float64, 0, len(result.Races))
	trios := make([]float64, 0, len(result.Races))
	ranks := make([]float64, 0, len(result.Races))
	favOut := 0
	for _, race := range result.Races {
		q, _ := race.QuinellaDiv.Float64()
		t, _ := race.TrioDiv.Float64()
		quis = append(quis, q)
		trios = append(trios, t)
		if race.WinnerOddsRank > 0 {
			ranks = append(ranks, float64(race.WinnerOddsRank))
		}
		if race.FavoriteOrd > 3 {
			favOut++
		}
	}

	result.Summary.AvgQuinellaDiv = stat.Mean(quis, nil)
	result.Summary.AvgTrioDiv = stat.Mean(trios, nil)
	if len(ranks) > 0 {
		result.Summary.AvgWinnerRank = stat.Mean(ranks, nil)
	}
	result.Summary.FavoriteOut = float64(favOut) / float64(len(result.Races)) * 100
}
