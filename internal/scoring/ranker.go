package scoring

import (
	"sort"

	"github.com/yourusername/paddock-edge/internal/models"
)

// RankHorses orders analyzed horses into the canonical ranking: non-vetoed
// horses sorted descending by total score (stable, so equal scores keep input
// order) with ranks 1..K, followed by vetoed horses in input order carrying
// the veto sentinel rank. A vetoed horse is never placed among ranked horses.
func RankHorses(analyses []models.HorseAnalysis) []models.HorseAnalysis {
	valid := make([]models.HorseAnalysis, 0, len(analyses))
	vetoed := make([]models.HorseAnalysis, 0)
	for _, a := range analyses {
		if a.Veto {
			vetoed = append(vetoed, a)
		} else {
			valid = append(valid, a)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].TotalScore > valid[j].TotalScore
	})
	for i := range valid {
		valid[i].Rank = i + 1
	}
	for i := range vetoed {
		vetoed[i].Rank = models.RankVeto
	}

	return append(valid, vetoed...)
}
