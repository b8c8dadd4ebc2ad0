package backtest

import (
	"github.com/yourusername/paddock-edge/internal/models"
)

// Pick sizes of the axis-centric strategy: one axis, two challengers and
// three outsiders, six horses total.
const (
	numChallengers = 2
	numDarkPicks   = 3
)

// selectPicks applies the wagering selection to a ranked field: the top horse
// is the axis, dark-horse flagged runners fill up to three outsider slots,
// the best two of the rest become challengers, and remaining slots are topped
// up by rank. Returns the axis analysis plus the set of all six picked names.
func selectPicks(ranked []models.HorseAnalysis) (models.HorseAnalysis, map[string]bool) {
	axis := ranked[0]
	others := ranked[1:]

	darks := make([]models.HorseAnalysis, 0, numDarkPicks)
	remaining := make([]models.HorseAnalysis, 0, len(others))
	for _, h := range others {
		if h.DarkHorse && len(darks) < numDarkPicks {
			darks = append(darks, h)
		} else {
			remaining = append(remaining, h)
		}
	}

	challengers := remaining
	if len(challengers) > numChallengers {
		challengers = challengers[:numChallengers]
	}
	for i := numChallengers; i < len(remaining) && len(darks) < numDarkPicks; i++ {
		darks = append(darks, remaining[i])
	}

	picks := map[string]bool{axis.HorseName: true}
	for _, h := range challengers {
		picks[h.HorseName] = true
	}
	for _, h := range darks {
		picks[h.HorseName] = true
	}
	return axis, picks
}

// evaluateRace scores one simulated race against its actual result sheet and
// feeds the veto and wide-bonus verification stats.
func evaluateRace(date, track string, raceNo int, ranked []models.HorseAnalysis, results []models.RaceResultRow, t *tally) models.BacktestOutcome {
	axis, picks := selectPicks(ranked)

	byName := make(map[string]models.RaceResultRow, len(results))
	for _, row := range results {
		byName[row.HorseName] = row
	}

	axisRow, axisRan := byName[axis.HorseName]
	actualRank := models.OrdUnknown
	if axisRan {
		actualRank = axisRow.Ord
	}

	outcome := models.BacktestOutcome{
		Date:       date,
		Track:      track,
		RaceNo:     raceNo,
		AxisHorse:  axis.HorseName,
		PredScore:  axis.TotalScore,
		ActualRank: actualRank,
		AxisVetoed: axis.Veto,
	}

	if actualRank == 1 {
		outcome.WinHit = true
		outcome.WinReturn = axisRow.WinOdds
	}
	if actualRank <= 3 {
		outcome.PlaceHit = true
	}

	first := nameAtRank(results, 1)
	second := nameAtRank(results, 2)
	third := nameAtRank(results, 3)

	// Quinella pays when the axis takes a top-2 spot and the other top-2
	// horse is among the picks.
	if axis.HorseName == first || axis.HorseName == second {
		partner := first
		if axis.HorseName == first {
			partner = second
		}
		if partner != "" && picks[partner] {
			outcome.QuinellaHit = true
			outcome.QuinellaReturn = axisRow.QuinellaDiv
		}
	}

	// Trio pays when the axis finishes top-3 and both remaining podium
	// horses are among the picks.
	podium := []string{first, second, third}
	if contains(podium, axis.HorseName) {
		partnersHit := 0
		for _, name := range podium {
			if name != "" && name != axis.HorseName && picks[name] {
				partnersHit++
			}
		}
		if partnersHit == 2 {
			outcome.TrioHit = true
			outcome.TrioReturn = axisRow.TrioDiv
		}
	}

	// A veto is verified when the vetoed horse indeed misses the podium.
	for _, h := range ranked {
		if !h.Veto {
			continue
		}
		t.vetoTotal++
		rank := models.OrdUnknown
		if row, ok := byName[h.HorseName]; ok {
			rank = row.Ord
		}
		if rank > 3 {
			t.vetoCorrect++
		}
	}

	if axis.Position.WideBonusCount > 0 {
		t.wideTotal++
		if outcome.PlaceHit {
			t.wideHit++
		}
	}

	return outcome
}

func nameAtRank(results []models.RaceResultRow, ord int) string {
	for _, row := range results {
		if row.Ord == ord {
			return row.HorseName
		}
	}
	return ""
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
