package models

import "sort"

// Row is one flat tabular record as collected from an external source. Column
// names vary across sources; the datasource adapter resolves them through
// ordered alias tables, never the scoring code.
type Row map[string]string

// Table is an ordered list of rows sharing (roughly) one schema.
type Table []Row

// Columns returns the sorted union of column names across the table. Used
// when persisting a table to the flat-file cache.
func (t Table) Columns() []string {
	seen := make(map[string]bool)
	cols := []string{}
	for _, row := range t {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

// RaceDay bundles everything collected for one (date, track): the entry sheet
// with enriched history columns, the weekly training sheet, the results sheet
// and the body-weight sheet.
type RaceDay struct {
	Date     string `json:"date"` // YYYYMMDD
	Track    string `json:"track"`
	Entries  Table  `json:"entries"`
	Training Table  `json:"training"`
	Results  Table  `json:"results"`
	Weights  Table  `json:"weights"`
}

// Empty reports whether the day has no usable entry or result data. Days with
// either sheet missing are skipped by the simulator.
func (d *RaceDay) Empty() bool {
	return d == nil || len(d.Entries) == 0 || len(d.Results) == 0
}
