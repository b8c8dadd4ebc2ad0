package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/paddock-edge/internal/models"
)

func TestPositionScorePlacedRunsOnly(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	detail := a.PositionScore(history(
		models.RaceHistoryEntry{FinishOrd: 1, Position: "F", Corner: "4M"},
		models.RaceHistoryEntry{FinishOrd: 8, Position: "F", Corner: "4M"},
		models.RaceHistoryEntry{FinishOrd: models.OrdUnknown, Position: "F", Corner: "4M"},
	))

	// 4M corner (50) + front position (20); non-placed runs contribute zero.
	assert.Equal(t, 70.0, detail.Score)
	assert.Equal(t, 0.0, detail.Entries[1].Score)
	assert.Equal(t, 0.0, detail.Entries[2].Score)
}

func TestPositionScoreFirstMatchingCornerKeyWins(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	detail := a.PositionScore(history(
		models.RaceHistoryEntry{FinishOrd: 2, Corner: "4M-3M"},
	))
	// 4M is listed before 3M in the weight table.
	assert.Equal(t, 50.0, detail.Score)
}

func TestPositionScoreWideBonus(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	detail := a.PositionScore(history(
		models.RaceHistoryEntry{FinishOrd: 2, Position: "W", Corner: "2M"},
	))
	// 2M corner (30) + wide position (0) + wide bonus (30).
	assert.Equal(t, 60.0, detail.Score)
	assert.Equal(t, 1, detail.WideBonusCount)
}

func TestPositionScoreLowercaseCodes(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	detail := a.PositionScore(history(
		models.RaceHistoryEntry{FinishOrd: 1, Position: "f", Corner: "4m"},
	))
	assert.Equal(t, 70.0, detail.Score)
}
