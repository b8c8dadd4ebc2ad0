// Package narrative formats quantitative rankings into prompts for an
// external text-generation endpoint and relays the generated race narrative
// back. No handicapping reasoning happens here; a missing or failed narrative
// degrades to an empty string.
package narrative

import (
	"fmt"
	"strings"

	"github.com/yourusername/paddock-edge/internal/models"
)

// FormatQuantitative renders a ranked field into the per-horse text block the
// generation endpoint receives.
func FormatQuantitative(raceNo int, ranked []models.HorseAnalysis) string {
	lines := []string{fmt.Sprintf("[%d경주 출전마 정량 분석]\n", raceNo)}

	for _, h := range ranked {
		rank := fmt.Sprintf("%d", h.Rank)
		if h.Rank == models.RankVeto {
			rank = "VETO"
		}
		lines = append(lines, fmt.Sprintf("■ %s (종합: %.1f점, 순위: %s)", h.HorseName, h.TotalScore, rank))

		if h.Speed.Vector == models.VectorRecordBased {
			lines = append(lines, fmt.Sprintf("  속도: S1F/G1F 부재로 '총 주파기록' 기반 분석. 속도점수=%.1f", h.Speed.Score))
		} else {
			lines = append(lines, fmt.Sprintf("  속도: S1F평균=%.1f, G1F평균=%.1f, G1F벡터=%s, 속도점수=%.1f",
				h.Speed.EarlyAvg, h.Speed.LateAvg, h.Speed.Vector, h.Speed.Score))
		}
		lines = append(lines, fmt.Sprintf("  포지션: 점수=%.1f, W보너스=%d회", h.Position.Score, h.Position.WideBonusCount))
		lines = append(lines, fmt.Sprintf("  체중: %s", orDefault(h.Weight.Note, "정보없음")))
		lines = append(lines, fmt.Sprintf("  조교: %s", orDefault(h.Training.Note, "정보없음")))

		if h.Veto {
			lines = append(lines, fmt.Sprintf("  🚫 VETO: %s", h.VetoReason))
		}
		if h.DarkHorse {
			lines = append(lines, fmt.Sprintf("  ★ 복병: %s", h.DarkHorseReason))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// BuildPrompt wraps the quantitative block into the full analysis request.
func BuildPrompt(raceNo int, trackCondition string, ranked []models.HorseAnalysis) string {
	if trackCondition == "" {
		trackCondition = "정보 없음"
	}

	var b strings.Builder
	b.WriteString("[분석 대상 경주 데이터]\n")
	b.WriteString(fmt.Sprintf("경주 번호: %d경주\n", raceNo))
	b.WriteString(fmt.Sprintf("주로 상태: %s\n\n", trackCondition))
	b.WriteString("[정량 분석 결과 (점수순)]\n")
	b.WriteString(FormatQuantitative(raceNo, ranked))
	b.WriteString("\n위 데이터를 바탕으로 우승마와 복병을 분석해주세요.\n")
	b.WriteString("축마, 복병, VETO 마필을 명시하고 최종 마권 구성 추천을 작성하세요.\n")
	return b.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
