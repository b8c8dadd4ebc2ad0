package scoring

import (
	"strings"

	"github.com/yourusername/paddock-edge/internal/models"
)

// PositionScore accumulates position-weight points over placed runs in the
// recent-race window. Only runs that finished in the money score: the corner
// code contributes the first matching table weight, the running-position code
// its exact weight, and a placed run carrying the wide marker earns the wide
// bonus on top, since finishing placed despite running outside signals
// above-average ability.
func (a *Analyzer) PositionScore(history []models.RaceHistoryEntry) models.PositionDetail {
	recent := window(history, a.cfg.RecentRaces)

	detail := models.PositionDetail{Entries: make([]models.PositionEntryDetail, 0, len(recent))}
	for _, e := range recent {
		pos := strings.ToUpper(e.Position)
		corner := strings.ToUpper(e.Corner)

		raceScore := 0.0
		if e.Placed() {
			raceScore += a.cfg.cornerPoints(corner)
			raceScore += a.cfg.positionPoints(pos)
			if strings.Contains(pos, "W") || strings.Contains(corner, "W") {
				raceScore += a.cfg.WideBonus
				detail.WideBonusCount++
			}
		}

		detail.Score += raceScore
		detail.Entries = append(detail.Entries, models.PositionEntryDetail{
			Ord:    e.FinishOrd,
			Pos:    pos,
			Corner: corner,
			Score:  raceScore,
		})
	}

	return detail
}
