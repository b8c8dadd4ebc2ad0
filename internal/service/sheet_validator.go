package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/paddock-edge/internal/models"
)

// SheetValidator checks collected race day sheets for structural problems.
// Problems are reported as warnings: the portal's sheets are messy and a
// partial day is still worth caching and scoring.
type SheetValidator struct{}

// NewSheetValidator creates a new sheet validator
func NewSheetValidator() *SheetValidator {
	return &SheetValidator{}
}

// ValidateDay validates a collected race day and returns a list of warnings
func (v *SheetValidator) ValidateDay(day *models.RaceDay) []string {
	var warnings []string

	if day.Date != "" {
		if _, err := time.Parse("20060102", day.Date); err != nil {
			warnings = append(warnings, fmt.Sprintf("date %q is not YYYYMMDD", day.Date))
		}
	} else {
		warnings = append(warnings, "race day has no date")
	}

	warnings = append(warnings, v.validateEntries(day.Entries)...)
	warnings = append(warnings, v.validateResults(day.Results)...)

	return warnings
}

// validateEntries checks the entry sheet for rows missing identity columns
func (v *SheetValidator) validateEntries(entries models.Table) []string {
	var warnings []string

	missingName := 0
	missingRace := 0
	for _, row := range entries {
		if !hasColumn(row, "hrName", "hr_name", "hrNm") {
			missingName++
		}
		if !hasColumn(row, "rcNo", "rc_no", "raceNo") {
			missingRace++
		}
	}

	if missingName > 0 {
		warnings = append(warnings, fmt.Sprintf("%d entry rows have no horse name", missingName))
	}
	if missingRace > 0 {
		warnings = append(warnings, fmt.Sprintf("%d entry rows have no race number", missingRace))
	}

	return warnings
}

// validateResults checks the result sheet for rows missing a finishing order
func (v *SheetValidator) validateResults(results models.Table) []string {
	missingOrd := 0
	for _, row := range results {
		if !hasColumn(row, "ord", "ranking", "rcOrd", "rk") {
			missingOrd++
		}
	}

	if missingOrd > 0 {
		return []string{fmt.Sprintf("%d result rows have no finishing order", missingOrd)}
	}
	return nil
}

// hasColumn reports whether the row carries a non-empty value under any of
// the given column aliases, compared case-insensitively.
func hasColumn(row map[string]string, aliases ...string) bool {
	for key, value := range row {
		if value == "" {
			continue
		}
		for _, alias := range aliases {
			if strings.EqualFold(key, alias) {
				return true
			}
		}
	}
	return false
}
