package backtest

import (
	"fmt"
	"strings"
	"time"
)

// GenerateConsoleReport formats a run summary for terminal output
func GenerateConsoleReport(s Summary) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Backtest Report (%s ~ %s, %s)\n", s.StartDate, s.EndDate, s.Track))
	builder.WriteString("==========================================\n")

	if s.Insufficient {
		builder.WriteString("데이터가 충분하지 않습니다.\n")
		return builder.String()
	}

	builder.WriteString(fmt.Sprintf("총 경주 수: %d\n", s.TotalRaces))
	builder.WriteString(fmt.Sprintf("[단승] 적중률: %.1f%% | ROI: %.1f%%\n", s.WinHitRate, s.WinROI))
	builder.WriteString(fmt.Sprintf("[연승] 적중률: %.1f%% (3위 내)\n", s.PlaceHitRate))
	builder.WriteString(fmt.Sprintf("[복승] 적중률: %.1f%% | ROI: %.1f%%\n", s.QuinellaHitRate, s.QuinellaROI))
	builder.WriteString(fmt.Sprintf("[삼복] 적중률: %.1f%% | ROI: %.1f%%\n", s.TrioHitRate, s.TrioROI))
	builder.WriteString(fmt.Sprintf("[VETO] 정확도: %.1f%% (총 %d마리 중 %d마리 입상 실패)\n",
		s.VetoAccuracy, s.VetoTotal, s.VetoCorrect))
	builder.WriteString(fmt.Sprintf("W보너스 적중률: %.1f%%\n", s.WideBonusHitRate))
	builder.WriteString(fmt.Sprintf("실행 시간: %s (run %s)\n", s.Elapsed.Round(time.Millisecond), s.RunID))
	return builder.String()
}

// GenerateTunerReport formats a grid-search result for terminal output
func GenerateTunerReport(r TunerResult) string {
	var builder strings.Builder
	builder.WriteString("Parameter Tuning Report\n")
	builder.WriteString("==========================================\n")

	for _, c := range r.Candidates {
		marker := " "
		if c.Candidate.Label == r.Best.Candidate.Label {
			marker = "*"
		}
		builder.WriteString(fmt.Sprintf("%s %-18s score=%.1f%% races=%d\n",
			marker, c.Candidate.Label, c.Score, c.Summary.TotalRaces))
	}

	builder.WriteString(fmt.Sprintf("\n최적 파라미터: %s (적중률 %.1f%%)\n",
		r.Best.Candidate.Label, r.Best.Score))
	return builder.String()
}
