package scoring

import (
	"fmt"

	"github.com/yourusername/paddock-edge/internal/models"
)

// WeightVeto decides whether an abnormal body-weight change disqualifies the
// horse. The officially published delta (the parenthesised figure on the entry
// sheet) is authoritative when present; otherwise the delta is inferred from
// the most recent non-zero recorded weight. Missing data never vetoes.
func (a *Analyzer) WeightVeto(currentWeight float64, history []models.RaceHistoryEntry, weightDiff float64) models.WeightDetail {
	if currentWeight == 0 {
		return models.WeightDetail{Note: "데이터 없음"}
	}

	if weightDiff != 0 {
		veto := abs(weightDiff) >= a.cfg.WeightThreshold
		note := fmt.Sprintf("체중 변동 %+.1fkg (정상 범위)", weightDiff)
		if veto {
			direction := "증가"
			if weightDiff < 0 {
				direction = "감소"
			}
			note = fmt.Sprintf("VETO: 체중 %.1fkg %s (임계치 %.0fkg 초과)", abs(weightDiff), direction, a.cfg.WeightThreshold)
		}
		return models.WeightDetail{
			Veto:        veto,
			Diff:        weightDiff,
			PriorWeight: currentWeight - weightDiff,
			Note:        note,
		}
	}

	prevWeight := 0.0
	for _, e := range history {
		if e.BodyWeight > 0 {
			prevWeight = e.BodyWeight
			break
		}
	}
	if prevWeight == 0 {
		return models.WeightDetail{Note: "과거 체중 데이터 없음"}
	}

	diff := currentWeight - prevWeight
	veto := abs(diff) >= a.cfg.WeightThreshold
	note := fmt.Sprintf("체중 변동 %+.1fkg (전주 %.0fkg)", diff, prevWeight)
	if veto {
		note = "VETO: " + note + " - 급변동"
	}

	return models.WeightDetail{
		Veto:        veto,
		Diff:        diff,
		PriorWeight: prevWeight,
		Note:        note,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
