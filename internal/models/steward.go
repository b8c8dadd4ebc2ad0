package models

import "strings"

// StewardReport represents one free-text steward/interference report. Reports
// are independent of RaceHistoryEntry but correlate by date and race number.
type StewardReport struct {
	Date   string `json:"date"` // may carry formatting noise, e.g. "2025/01/11-5R"
	RaceNo int    `json:"race_no"`
	Report string `json:"report"`
}

// NormalizedDate strips separators and any trailing race suffix so the report
// date can be compared against RaceHistoryEntry.Date (YYYYMMDD).
func (r StewardReport) NormalizedDate() string {
	date := strings.ReplaceAll(r.Date, "/", "")
	if idx := strings.Index(date, "-"); idx >= 0 {
		date = date[:idx]
	}
	return date
}
