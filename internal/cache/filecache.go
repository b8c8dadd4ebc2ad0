// Package cache persists collected race days as flat CSV files, one
// directory per (date, track).
package cache

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourusername/paddock-edge/internal/models"
)

// Sheet file names inside a day directory.
const (
	entriesFile  = "entries.csv"
	trainingFile = "training.csv"
	resultsFile  = "results.csv"
	weightsFile  = "weights.csv"
)

// DayCache is the flat-file day cache. The entries sheet doubles as the
// existence check: a directory without entries.csv is treated as a miss and
// re-collected.
type DayCache struct {
	root string
}

// New creates a day cache rooted at the given directory.
func New(root string) *DayCache {
	return &DayCache{root: root}
}

// Ping verifies the cache root exists and is writable. Used by the
// collector daemon's readiness probe.
func (c *DayCache) Ping() error {
	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return fmt.Errorf("cache root unavailable: %w", err)
	}
	probe, err := os.CreateTemp(c.root, ".probe-*")
	if err != nil {
		return fmt.Errorf("cache root not writable: %w", err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}

// dayDir is `<root>/<date>_<track>`.
func (c *DayCache) dayDir(date, track string) string {
	return filepath.Join(c.root, fmt.Sprintf("%s_%s", date, track))
}

// Has reports whether the day is cached.
func (c *DayCache) Has(date, track string) bool {
	_, err := os.Stat(filepath.Join(c.dayDir(date, track), entriesFile))
	return err == nil
}

// Load reads a cached day. A missing entries sheet is a cache miss reported
// as models.ErrNoData; other sheets may be absent and come back empty.
func (c *DayCache) Load(date, track string) (*models.RaceDay, error) {
	dir := c.dayDir(date, track)

	entries, err := readTable(filepath.Join(dir, entriesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no cached entries for %s %s", models.ErrNoData, date, track)
		}
		return nil, fmt.Errorf("load cached entries: %w", err)
	}

	day := &models.RaceDay{Date: date, Track: track, Entries: entries}
	if day.Training, err = readOptionalTable(filepath.Join(dir, trainingFile)); err != nil {
		return nil, fmt.Errorf("load cached training: %w", err)
	}
	if day.Results, err = readOptionalTable(filepath.Join(dir, resultsFile)); err != nil {
		return nil, fmt.Errorf("load cached results: %w", err)
	}
	if day.Weights, err = readOptionalTable(filepath.Join(dir, weightsFile)); err != nil {
		return nil, fmt.Errorf("load cached weights: %w", err)
	}
	return day, nil
}

// Store writes a collected day. Empty sheets are skipped so a later Load
// distinguishes "collected, nothing published" from "never collected".
func (c *DayCache) Store(day *models.RaceDay) error {
	if day == nil || len(day.Entries) == 0 {
		return fmt.Errorf("%w: refusing to cache day without entries", models.ErrNoData)
	}

	dir := c.dayDir(day.Date, day.Track)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	sheets := map[string]models.Table{
		entriesFile:  day.Entries,
		trainingFile: day.Training,
		resultsFile:  day.Results,
		weightsFile:  day.Weights,
	}
	for name, table := range sheets {
		if len(table) == 0 {
			continue
		}
		if err := writeTable(filepath.Join(dir, name), table); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// writeTable persists one table as CSV with the sorted column union as
// header. Cells absent from a row are written empty.
func writeTable(path string, table models.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	cols := table.Columns()
	if err := w.Write(cols); err != nil {
		return err
	}

	record := make([]string, len(cols))
	for _, row := range table {
		for i, col := range cols {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// readTable loads one CSV sheet back into a table.
func readTable(path string) (models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return models.Table{}, nil
	}

	cols := records[0]
	table := make(models.Table, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.Row, len(cols))
		for i, col := range cols {
			if i < len(record) && record[i] != "" {
				row[col] = record[i]
			}
		}
		table = append(table, row)
	}
	return table, nil
}

// readOptionalTable treats a missing sheet as empty.
func readOptionalTable(path string) (models.Table, error) {
	table, err := readTable(path)
	if os.IsNotExist(err) {
		return models.Table{}, nil
	}
	return table, err
}
