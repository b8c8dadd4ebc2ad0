package scoring

import (
	"fmt"

	"github.com/yourusername/paddock-edge/internal/models"
)

// TrainingScore converts the trailing week of training sessions into a
// 0-100 score: a per-session base plus tiered bonuses for sufficient volume
// and the presence of at least one strong workout.
func (a *Analyzer) TrainingScore(records []models.TrainingRecord) models.TrainingDetail {
	if len(records) == 0 {
		return models.TrainingDetail{Note: "조교 데이터 없음"}
	}

	count := len(records)
	strongCount := 0
	for _, r := range records {
		if r.IsStrong() {
			strongCount++
		}
	}

	score := float64(count) * a.cfg.TrainingBasePerSession

	var note string
	switch {
	case count >= a.cfg.TrainingMinCount && strongCount > 0:
		score += a.cfg.TrainingStrongBonus
		note = fmt.Sprintf("충분한 조교 (%d회, 강조교 %d회)", count, strongCount)
	case count >= a.cfg.TrainingMinCount:
		score += 15
		note = fmt.Sprintf("조교 횟수 충분(%d회)이나 강조교 없음", count)
	case strongCount > 0:
		score += 10
		note = fmt.Sprintf("강조교 포함(%d회)이나 횟수 부족(%d회)", strongCount, count)
	default:
		note = fmt.Sprintf("조교 부족 (%d회, 강조교 없음)", count)
	}

	if score > 100 {
		score = 100
	}

	return models.TrainingDetail{
		Score:       score,
		Count:       count,
		StrongCount: strongCount,
		Note:        note,
	}
}
