package scoring

import (
	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/paddock-edge/internal/models"
)

// Endurance vector classification thresholds on late/early sectional ratio.
const (
	vectorStrongRatio      = 1.02
	vectorMaintainingRatio = 1.08
)

// SpeedScore analyzes early and late sectional times across the recent-race
// window and produces the speed/endurance sub-score.
//
// Each sectional mean maps linearly from 14s (0 points) to 0s (50 points),
// summed to a 100-point base, plus an endurance-vector bonus and a
// consistency bonus for low spread. When no sectionals are recorded at all,
// the score falls back to the raw total race time (60s = 100, 80s = 0) so the
// ranking keeps a speed signal for horses without sectional timing.
func (a *Analyzer) SpeedScore(history []models.RaceHistoryEntry) models.SpeedDetail {
	recent := window(history, a.cfg.RecentRaces)

	var early, late []float64
	for _, e := range recent {
		if e.EarlySectional > 0 {
			early = append(early, e.EarlySectional)
		}
		if e.LateSectional > 0 {
			late = append(late, e.LateSectional)
		}
	}

	earlyAvg, earlyStd := meanAndStd(early)
	lateAvg, lateStd := meanAndStd(late)

	vector := models.VectorNA
	if earlyAvg > 0 && lateAvg > 0 {
		switch ratio := lateAvg / earlyAvg; {
		case ratio <= vectorStrongRatio:
			vector = models.VectorStrong
		case ratio <= vectorMaintainingRatio:
			vector = models.VectorMaintaining
		default:
			vector = models.VectorFading
		}
	}

	score := 0.0
	if earlyAvg == 0 && lateAvg == 0 {
		var times []float64
		for _, e := range recent {
			if t := models.ParseRaceTime(e.RaceTime); t > 0 {
				times = append(times, t)
			}
		}
		if len(times) > 0 {
			avg := stat.Mean(times, nil)
			score = max0((80 - avg) / 20 * 100)
			vector = models.VectorRecordBased
		}
	} else {
		if earlyAvg > 0 {
			score += max0((14 - earlyAvg) / 14 * 50)
		}
		if lateAvg > 0 {
			score += max0((14 - lateAvg) / 14 * 50)
		}
		switch vector {
		case models.VectorStrong:
			score += 15
		case models.VectorMaintaining:
			score += 8
		}
		if len(early) > 0 && earlyStd < 0.3 {
			score += 5
		}
		if len(late) > 0 && lateStd < 0.3 {
			score += 5
		}
	}

	if score > 100 {
		score = 100
	}

	return models.SpeedDetail{
		EarlyAvg: roundTo(earlyAvg, 3),
		EarlyStd: roundTo(earlyStd, 3),
		LateAvg:  roundTo(lateAvg, 3),
		LateStd:  roundTo(lateStd, 3),
		Vector:   vector,
		Score:    roundTo(score, 1),
	}
}

// meanAndStd returns the mean and population standard deviation of vals. The
// deviation is 0 with fewer than two samples.
func meanAndStd(vals []float64) (float64, float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	mean := stat.Mean(vals, nil)
	if len(vals) < 2 {
		return mean, 0
	}
	return mean, stat.PopStdDev(vals, nil)
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func window(history []models.RaceHistoryEntry, n int) []models.RaceHistoryEntry {
	if n > 0 && len(history) > n {
		return history[:n]
	}
	return history
}
