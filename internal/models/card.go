package models

import "github.com/shopspring/decimal"

// HorseEntry is the full per-horse input to the analyzer, assembled by the
// datasource adapter from collected tabular rows. The engine never parses
// markup; it consumes these already-extracted records.
type HorseEntry struct {
	HorseNo       string             `json:"horse_no"`
	HorseName     string             `json:"horse_name"`
	CurrentWeight float64            `json:"current_weight"` // kg, 0 = unknown
	WeightDiff    float64            `json:"weight_diff"`    // published signed delta, 0 = unknown
	History       []RaceHistoryEntry `json:"history"`        // most-recent-first
	Training      []TrainingRecord   `json:"training"`
	Reports       []StewardReport    `json:"reports"`
}

// RaceCard is one race worth of entries on a given day.
type RaceCard struct {
	Date    string       `json:"date"`
	Track   string       `json:"track"`
	RaceNo  int          `json:"race_no"`
	Entries []HorseEntry `json:"entries"`
}

// RaceResultRow is one row of the historical results sheet: finishing order
// plus the recorded odds and dividends used for return computation. Dividends
// are replayed as recorded, never predicted.
type RaceResultRow struct {
	RaceNo      int             `json:"race_no"`
	HorseName   string          `json:"horse_name"`
	Ord         int             `json:"ord"`
	WinOdds     decimal.Decimal `json:"win_odds"`
	PlaceOdds   decimal.Decimal `json:"place_odds"`
	QuinellaDiv decimal.Decimal `json:"quinella_div"`
	TrioDiv     decimal.Decimal `json:"trio_div"`
}
