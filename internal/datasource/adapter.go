package datasource

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/paddock-edge/internal/models"
)

// Ordered alias tables for the logical fields of collected sheets. Upstream
// schemas vary (API, scraped, cached); resolution tries each alias in order
// and falls back to empty, never to an error.
var (
	raceNoAliases    = []string{"rcno", "rc_no", "raceno"}
	horseNameAliases = []string{"hrname", "hr_name", "hrnm"}
	horseNoAliases   = []string{"hrno", "hr_no"}
	ordAliases       = []string{"ord", "ranking", "rcord", "rk"}
	weightAliases    = []string{"wghr", "weight", "wg"}

	trainTypeAliases = []string{"trgbn", "trtype", "type"}
	trainDistAliases = []string{"trdist", "distance"}

	winOddsAliases = []string{"winodds", "win_odds"}
	plcOddsAliases = []string{"plcodds", "plc_odds"}
	quiDivAliases  = []string{"qui_div", "quidiv"}
	trioDivAliases = []string{"trio_div", "triodiv"}
)

// historyDepth is how many enriched past-race column groups the entry sheet
// carries per horse.
const historyDepth = 5

// lookup resolves a row value through an ordered alias list, matching column
// names case-insensitively.
func lookup(row models.Row, aliases []string) string {
	for _, alias := range aliases {
		for key, val := range row {
			if strings.EqualFold(key, alias) {
				return val
			}
		}
	}
	return ""
}

func lookupOne(row models.Row, aliases ...string) string {
	return lookup(row, aliases)
}

// GroupEntriesByRace splits the entry sheet into per-race tables keyed by
// race number. Rows without a recognizable race number land under race 1,
// mirroring single-race sheets.
func GroupEntriesByRace(entries models.Table) map[int]models.Table {
	groups := make(map[int]models.Table)
	for _, row := range entries {
		raceNo := parseInt(lookup(row, raceNoAliases), 1)
		groups[raceNo] = append(groups[raceNo], row)
	}
	return groups
}

// RaceNumbers returns the sorted race numbers of a grouped entry sheet.
func RaceNumbers(groups map[int]models.Table) []int {
	nos := make([]int, 0, len(groups))
	for no := range groups {
		nos = append(nos, no)
	}
	sort.Ints(nos)
	return nos
}

// BuildEntry assembles the full analyzer input for one entry row: identity,
// current weight with published delta, five-deep race history, the week's
// training sessions and any attached steward reports.
func BuildEntry(row models.Row, training models.Table) models.HorseEntry {
	name := lookup(row, horseNameAliases)
	weight, diff := ParseWeight(lookup(row, weightAliases))

	return models.HorseEntry{
		HorseNo:       lookup(row, horseNoAliases),
		HorseName:     name,
		CurrentWeight: weight,
		WeightDiff:    diff,
		History:       BuildHistory(row),
		Training:      BuildTraining(name, training),
		Reports:       buildReports(row),
	}
}

// BuildHistory reconstructs the most-recent-first race history from the
// enriched flat columns (s1f_1, g1f_1, ord_1, ...). A history slot exists
// only when its early-sectional column does.
func BuildHistory(row models.Row) []models.RaceHistoryEntry {
	var history []models.RaceHistoryEntry
	for i := 1; i <= historyDepth; i++ {
		s1f := lookupIndexed(row, i, "s1f_%d", "s1f%d")
		if s1f == "" {
			continue
		}

		entry := models.RaceHistoryEntry{
			Date:           lookupIndexed(row, i, "rcdate_%d", "date_%d"),
			RaceNo:         parseInt(lookupIndexed(row, i, "rcno_%d", "rcno%d"), 0),
			FinishOrd:      parseInt(lookupIndexed(row, i, "ord_%d", "ord%d", "rank_%d"), models.OrdUnknown),
			EarlySectional: parseFloat(s1f),
			LateSectional:  parseFloat(lookupIndexed(row, i, "g1f_%d", "g1f%d")),
			Position:       lookupIndexed(row, i, "pos_%d", "pos%d"),
			Corner:         lookupIndexed(row, i, "corner_%d", "corner%d"),
			BodyWeight:     parseFloat(lookupIndexed(row, i, "wg_%d", "wg%d", "weight_%d")),
			RaceTime:       lookupIndexed(row, i, "rctime_%d", "rctime%d"),
		}
		if i == 1 {
			entry.StewardNote = row["steward_report_1"]
		}
		history = append(history, entry)
	}
	return history
}

// BuildTraining matches the week's training sheet rows against one horse by
// name.
func BuildTraining(horseName string, training models.Table) []models.TrainingRecord {
	if horseName == "" {
		return nil
	}

	var records []models.TrainingRecord
	for _, row := range training {
		if lookup(row, horseNameAliases) != horseName {
			continue
		}
		intensity := lookup(row, trainTypeAliases)
		if intensity == "" {
			intensity = models.TrainingNormal
		}
		records = append(records, models.TrainingRecord{
			Intensity: intensity,
			Distance:  parseFloat(lookup(row, trainDistAliases)),
		})
	}
	return records
}

// buildReports extracts the steward report attached to the most recent run,
// if the enrichment produced one.
func buildReports(row models.Row) []models.StewardReport {
	report := row["steward_report_1"]
	if report == "" {
		return nil
	}
	return []models.StewardReport{{
		Date:   lookupOne(row, "rcdate_1", "date_1"),
		Report: report,
	}}
}

// ResultsByRace resolves the results sheet into typed rows grouped by race
// number. Rows whose rank cannot be parsed are dropped, mirroring cancelled
// or withdrawn runners.
func ResultsByRace(results models.Table) map[int][]models.RaceResultRow {
	grouped := make(map[int][]models.RaceResultRow)
	for _, row := range results {
		ord, err := strconv.Atoi(strings.TrimSpace(lookup(row, ordAliases)))
		if err != nil {
			continue
		}
		name := lookup(row, horseNameAliases)
		if name == "" {
			continue
		}
		raceNo := parseInt(lookup(row, raceNoAliases), 0)

		grouped[raceNo] = append(grouped[raceNo], models.RaceResultRow{
			RaceNo:      raceNo,
			HorseName:   name,
			Ord:         ord,
			WinOdds:     parseDecimal(lookup(row, winOddsAliases)),
			PlaceOdds:   parseDecimal(lookup(row, plcOddsAliases)),
			QuinellaDiv: parseDecimal(lookup(row, quiDivAliases)),
			TrioDiv:     parseDecimal(lookup(row, trioDivAliases)),
		})
	}
	return grouped
}

// ParseWeight splits a published weight string such as "480(+10)" or
// "480(-5)" into the body weight and the signed delta. Malformed input
// yields zeros, never an error.
func ParseWeight(raw string) (weight, diff float64) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, 0
	}

	valPart := s
	if open := strings.Index(s, "("); open >= 0 {
		valPart = s[:open]
		if end := strings.Index(s, ")"); end > open {
			diff = parseFloat(strings.TrimPrefix(s[open+1:end], "+"))
		}
	}
	weight = parseFloat(valPart)
	return weight, diff
}

// lookupIndexed resolves numbered history columns like s1f_3, trying each
// pattern in order.
func lookupIndexed(row models.Row, i int, patterns ...string) string {
	for _, pattern := range patterns {
		alias := fmt.Sprintf(pattern, i)
		for key, val := range row {
			if strings.EqualFold(key, alias) {
				return val
			}
		}
	}
	return ""
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
