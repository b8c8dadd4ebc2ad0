package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/paddock-edge/internal/models"
)

func sampleRanked() []models.HorseAnalysis {
	return []models.HorseAnalysis{
		{
			HorseName:  "번개호",
			TotalScore: 78.5,
			Rank:       1,
			Speed:      models.SpeedDetail{EarlyAvg: 13.1, LateAvg: 12.3, Vector: models.VectorStrong, Score: 72},
			Position:   models.PositionDetail{Score: 90, WideBonusCount: 1},
			Weight:     models.WeightDetail{Note: "적정 범위"},
			Training:   models.TrainingDetail{Note: "충분한 조교 (16회, 강조교 3회)"},
		},
		{
			HorseName:  "질주왕",
			TotalScore: 40,
			Rank:       models.RankVeto,
			Veto:       true,
			VetoReason: "체중 급증 +12.0kg",
			Speed:      models.SpeedDetail{Vector: models.VectorRecordBased, Score: 30},
		},
	}
}

func TestFormatQuantitative(t *testing.T) {
	text := FormatQuantitative(3, sampleRanked())

	assert.Contains(t, text, "[3경주 출전마 정량 분석]")
	assert.Contains(t, text, "■ 번개호 (종합: 78.5점, 순위: 1)")
	assert.Contains(t, text, "S1F평균=13.1, G1F평균=12.3, G1F벡터=Strong")
	assert.Contains(t, text, "W보너스=1회")
	assert.Contains(t, text, "조교: 충분한 조교 (16회, 강조교 3회)")

	// record-based fallback swaps the sectional line entirely
	assert.Contains(t, text, "'총 주파기록' 기반 분석")
	assert.NotContains(t, text, "S1F평균=0.0")

	// vetoed horse is marked with the sentinel rank and reason
	assert.Contains(t, text, "순위: VETO")
	assert.Contains(t, text, "🚫 VETO: 체중 급증 +12.0kg")
}

func TestFormatQuantitativeMissingNotes(t *testing.T) {
	ranked := []models.HorseAnalysis{{HorseName: "무명", Rank: 1}}

	text := FormatQuantitative(1, ranked)
	assert.Contains(t, text, "체중: 정보없음")
	assert.Contains(t, text, "조교: 정보없음")
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(5, "", sampleRanked())

	assert.True(t, strings.HasPrefix(prompt, "[분석 대상 경주 데이터]"))
	assert.Contains(t, prompt, "경주 번호: 5경주")
	assert.Contains(t, prompt, "주로 상태: 정보 없음")
	assert.Contains(t, prompt, "[정량 분석 결과 (점수순)]")
	assert.Contains(t, prompt, "최종 마권 구성 추천")
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "축마는 번개호.", "축마는 번개호."},
		{"fenced", "```\n축마는 번개호.\n```", "축마는 번개호."},
		{"fenced with tag", "```json\n{\"axis\":\"번개호\"}\n```", `{"axis":"번개호"}`},
		{"leading prose then fence", "결과:\n```\n본문\n```", "본문"},
		{"whitespace", "  답변  ", "답변"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractText(tt.in))
		})
	}
}
