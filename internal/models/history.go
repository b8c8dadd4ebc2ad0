package models

import (
	"strconv"
	"strings"
)

// RaceHistoryEntry represents one past race for a horse. Entries are produced
// by the data collector ordered most-recent-first and are immutable once built.
type RaceHistoryEntry struct {
	Date           string  `json:"date"` // YYYYMMDD
	RaceNo         int     `json:"race_no"`
	FinishOrd      int     `json:"finish_ord"`      // 99 = unknown/unplaced
	EarlySectional float64 `json:"early_sectional"` // seconds over the opening segment, 0 = missing
	LateSectional  float64 `json:"late_sectional"`  // seconds over the closing segment, 0 = missing
	Position       string  `json:"position"`        // running position code (F/M/C/W)
	Corner         string  `json:"corner"`          // corner-passing code (e.g. "4M")
	BodyWeight     float64 `json:"body_weight"`     // kg, 0 = missing
	RaceTime       string  `json:"race_time"`       // raw total time, fallback when sectionals absent
	StewardNote    string  `json:"steward_note"`    // free-text note attached to this run
}

// OrdUnknown is the finish-order sentinel for unknown or unplaced runs.
const OrdUnknown = 99

// Placed reports whether the horse finished in the money (top 3).
func (e RaceHistoryEntry) Placed() bool {
	return e.FinishOrd >= 1 && e.FinishOrd <= 3
}

// ParseRaceTime converts a raw total race time such as "1:13.4", "73.4" or
// "1:13.4(3)" into seconds. Anything that is not a digit, dot or colon is
// stripped before parsing. Returns 0 when no usable time remains.
func ParseRaceTime(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ':' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return 0
	}

	if strings.Contains(clean, ":") {
		parts := strings.SplitN(clean, ":", 2)
		mins, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0
		}
		secs, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0
		}
		total := mins*60 + secs
		if total <= 0 {
			return 0
		}
		return total
	}

	val, err := strconv.ParseFloat(clean, 64)
	if err != nil || val <= 0 {
		return 0
	}
	return val
}
