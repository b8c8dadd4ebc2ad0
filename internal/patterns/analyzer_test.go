package patterns

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/paddock-edge/internal/models"
)

func decimalFrom(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// stubDays serves canned result sheets keyed by "date/track".
type stubDays struct {
	days map[string]*models.RaceDay
}

func (s *stubDays) FetchDay(_ context.Context, date, track string) (*models.RaceDay, error) {
	if day, ok := s.days[date+"/"+track]; ok {
		return day, nil
	}
	return nil, errors.New("no data")
}

func resultRow(raceNo, name, ord, winOdds, quiDiv, trioDiv string) models.Row {
	return models.Row{
		"rcNo":     raceNo,
		"hrName":   name,
		"ord":      ord,
		"winOdds":  winOdds,
		"qui_div":  quiDiv,
		"trio_div": trioDiv,
	}
}

func testLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestScanFlagsHighDividendRaces(t *testing.T) {
	// Saturday 2025-01-04: race 1 is a quiet favorite win, race 2 a blowout.
	day := &models.RaceDay{
		Date:  "20250104",
		Track: "서울",
		Results: models.Table{
			resultRow("1", "번개", "1", "2.1", "4.2", "12.0"),
			resultRow("1", "질주", "2", "3.5", "4.2", "12.0"),
			resultRow("1", "바람", "3", "8.0", "4.2", "12.0"),

			resultRow("2", "복병", "1", "42.0", "88.5", "310.2"),
			resultRow("2", "인기", "4", "1.8", "88.5", "310.2"),
			resultRow("2", "중위", "2", "6.3", "88.5", "310.2"),
		},
	}
	source := &stubDays{days: map[string]*models.RaceDay{"20250104/서울": day}}

	a := NewAnalyzer(source, testLog())
	window := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	result := a.Scan(context.Background(), window, window)

	require.Len(t, result.Races, 1)
	race := result.Races[0]
	assert.Equal(t, 2, race.RaceNo)
	assert.Equal(t, "복병", race.WinnerName)
	assert.Equal(t, 3, race.WinnerOddsRank, "42.0 is the longest of the three prices")
	assert.Equal(t, 4, race.FavoriteOrd)
	assert.Equal(t, 3, race.EntryCount)
	assert.True(t, race.QuinellaDiv.Equal(decimalFrom("88.5")))

	assert.Equal(t, 1, result.Summary.RacesFlagged)
	assert.InDelta(t, 88.5, result.Summary.AvgQuinellaDiv, 0.001)
	assert.InDelta(t, 100.0, result.Summary.FavoriteOut, 0.001, "the favorite missed the podium")
}

func TestScanTrioThresholdAlone(t *testing.T) {
	day := &models.RaceDay{
		Date:  "20250104",
		Track: "서울",
		Results: models.Table{
			resultRow("1", "가", "1", "5.0", "20.0", "150.0"),
			resultRow("1", "나", "2", "3.0", "20.0", "150.0"),
		},
	}
	source := &stubDays{days: map[string]*models.RaceDay{"20250104/서울": day}}

	a := NewAnalyzer(source, testLog())
	window := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	result := a.Scan(context.Background(), window, window)

	require.Len(t, result.Races, 1, "trio dividend over 100 flags on its own")
}

func TestScanSkipsWeekdaysAndFailedDays(t *testing.T) {
	a := NewAnalyzer(&stubDays{}, testLog())

	// Monday through Thursday: no tracks race, nothing is even fetched
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	result := a.Scan(context.Background(), start, end)

	assert.Empty(t, result.Races)
	assert.Zero(t, result.Summary.DaysAnalyzed)

	// a racing weekend where every fetch fails is still an empty result
	start = time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	end = time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	result = a.Scan(context.Background(), start, end)
	assert.Empty(t, result.Races)
}

func TestTracksRacing(t *testing.T) {
	assert.Equal(t, []string{"제주", "부산"}, tracksRacing(time.Friday))
	assert.Equal(t, []string{"서울", "부산"}, tracksRacing(time.Saturday))
	assert.Equal(t, []string{"서울", "제주"}, tracksRacing(time.Sunday))
	assert.Nil(t, tracksRacing(time.Wednesday))
}
