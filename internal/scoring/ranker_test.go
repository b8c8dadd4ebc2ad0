package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/paddock-edge/internal/models"
)

func TestRankHorsesVetoSunkToBottom(t *testing.T) {
	ranked := RankHorses([]models.HorseAnalysis{
		{HorseName: "a", TotalScore: 50},
		{HorseName: "b", TotalScore: 90, Veto: true},
		{HorseName: "c", TotalScore: 70},
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "c", ranked[0].HorseName)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "a", ranked[1].HorseName)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "b", ranked[2].HorseName)
	assert.Equal(t, models.RankVeto, ranked[2].Rank)
}

func TestRankHorsesStableOnTies(t *testing.T) {
	ranked := RankHorses([]models.HorseAnalysis{
		{HorseName: "first", TotalScore: 60},
		{HorseName: "second", TotalScore: 60},
	})

	assert.Equal(t, "first", ranked[0].HorseName)
	assert.Equal(t, "second", ranked[1].HorseName)
}

func TestRankHorsesScoreDescending(t *testing.T) {
	ranked := RankHorses([]models.HorseAnalysis{
		{HorseName: "a", TotalScore: 10},
		{HorseName: "b", TotalScore: 30},
		{HorseName: "c", TotalScore: 20},
		{HorseName: "d", TotalScore: 40, Veto: true},
	})

	for i := 0; i+1 < len(ranked); i++ {
		if ranked[i+1].Rank == models.RankVeto {
			break
		}
		assert.GreaterOrEqual(t, ranked[i].TotalScore, ranked[i+1].TotalScore)
		assert.Less(t, ranked[i].Rank, ranked[i+1].Rank)
	}
}
