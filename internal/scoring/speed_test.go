package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/paddock-edge/internal/models"
)

func history(entries ...models.RaceHistoryEntry) []models.RaceHistoryEntry {
	return entries
}

func TestSpeedScoreEmptyHistory(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	detail := a.SpeedScore(nil)

	assert.Equal(t, 0.0, detail.Score)
	assert.Equal(t, models.VectorNA, detail.Vector)
}

func TestSpeedScoreVectorClassification(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	tests := []struct {
		name   string
		early  float64
		late   float64
		vector string
	}{
		{"strong at boundary", 12.5, 12.75, models.VectorStrong},
		{"maintaining", 12.0, 12.6, models.VectorMaintaining},
		{"fading", 12.0, 13.2, models.VectorFading},
		{"undefined when early missing", 0, 12.5, models.VectorNA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := a.SpeedScore(history(
				models.RaceHistoryEntry{EarlySectional: tt.early, LateSectional: tt.late, FinishOrd: 1},
			))
			assert.Equal(t, tt.vector, detail.Vector)
		})
	}
}

func TestSpeedScoreClampedToHundred(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	// Unrealistically fast sectionals saturate both legs plus all bonuses.
	detail := a.SpeedScore(history(
		models.RaceHistoryEntry{EarlySectional: 0.1, LateSectional: 0.1},
		models.RaceHistoryEntry{EarlySectional: 0.1, LateSectional: 0.1},
	))
	assert.Equal(t, 100.0, detail.Score)
}

func TestSpeedScoreConsistencyBonus(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	steady := a.SpeedScore(history(
		models.RaceHistoryEntry{EarlySectional: 12.2, LateSectional: 12.4},
		models.RaceHistoryEntry{EarlySectional: 12.2, LateSectional: 12.4},
	))
	erratic := a.SpeedScore(history(
		models.RaceHistoryEntry{EarlySectional: 11.5, LateSectional: 11.7},
		models.RaceHistoryEntry{EarlySectional: 12.9, LateSectional: 13.1},
	))
	assert.Greater(t, steady.Score, erratic.Score)
	assert.Less(t, steady.EarlyStd, 0.3)
	assert.GreaterOrEqual(t, erratic.EarlyStd, 0.3)
}

func TestSpeedScoreRecordFallback(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	detail := a.SpeedScore(history(
		models.RaceHistoryEntry{RaceTime: "1:13.4"},
		models.RaceHistoryEntry{RaceTime: "73.4"},
	))
	require.Equal(t, models.VectorRecordBased, detail.Vector)
	// mean 73.4s maps to (80-73.4)/20*100 = 33 points.
	assert.InDelta(t, 33.0, detail.Score, 0.1)
}

func TestSpeedScoreWindowCapsHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RecentRaces = 2
	a := NewAnalyzer(cfg)

	// The slow third entry must fall outside the window.
	detail := a.SpeedScore(history(
		models.RaceHistoryEntry{EarlySectional: 12.0, LateSectional: 12.0},
		models.RaceHistoryEntry{EarlySectional: 12.0, LateSectional: 12.0},
		models.RaceHistoryEntry{EarlySectional: 30.0, LateSectional: 30.0},
	))
	assert.InDelta(t, 12.0, detail.EarlyAvg, 0.001)
}

func TestParseRaceTime(t *testing.T) {
	assert.InDelta(t, 73.4, models.ParseRaceTime("1:13.4"), 0.001)
	assert.InDelta(t, 73.4, models.ParseRaceTime("73.4"), 0.001)
	assert.Equal(t, 0.0, models.ParseRaceTime(""))
	assert.Equal(t, 0.0, models.ParseRaceTime("abc"))
}
