package scoring

import (
	"fmt"
	"strings"

	"github.com/yourusername/paddock-edge/internal/models"
)

// Late-sectional bonus tiers: a fast closing sectional despite being blocked
// indicates suppressed true ability.
const (
	lateSectionalBest = 12.5
	lateSectionalGood = 13.0
	lateSectionalFair = 13.5

	perReportCap = 15
	totalCap     = 25
)

// InterferenceBonus cross-references steward reports against the interference
// keyword taxonomy and the matching run's late sectional. Reports containing a
// penalty keyword are excluded entirely: the horse was the disruptor, not the
// disrupted, and must not earn a sympathy bonus.
func (a *Analyzer) InterferenceBonus(reports []models.StewardReport, history []models.RaceHistoryEntry) models.InterferenceDetail {
	if len(reports) == 0 {
		return models.InterferenceDetail{}
	}

	detail := models.InterferenceDetail{}
	total := 0.0

	for _, rpt := range reports {
		if a.isPenaltyReport(rpt.Report) {
			continue
		}

		var matched []string
		keywordScore := 0.0
		for _, kw := range a.cfg.InterferenceKeywords {
			if strings.Contains(rpt.Report, kw.Keyword) {
				matched = append(matched, kw.Keyword)
				keywordScore += kw.Weight
			}
		}
		if len(matched) == 0 {
			continue
		}

		detail.Count++
		late := lateSectionalAt(rpt, history)

		bonus := 0.0
		switch {
		case late <= 0:
		case late <= lateSectionalBest:
			bonus = 8
		case late <= lateSectionalGood:
			bonus = 5
		case late <= lateSectionalFair:
			bonus = 3
		}

		reportScore := keywordScore + bonus
		if reportScore > perReportCap {
			reportScore = perReportCap
		}
		total += reportScore

		detail.Reports = append(detail.Reports, models.InterferenceReportDetail{
			Date:          rpt.Date,
			Keywords:      matched,
			LateSectional: late,
			Score:         reportScore,
		})
	}

	if total > totalCap {
		total = totalCap
	}
	detail.Score = total

	// Dark-horse call: one blocked run with a live closing sectional, or
	// repeated interference even without sectional corroboration.
	fastClosers := 0
	for _, r := range detail.Reports {
		if r.LateSectional > 0 && r.LateSectional <= lateSectionalGood {
			fastClosers++
		}
	}
	switch {
	case fastClosers >= 1:
		detail.DarkHorse = true
		detail.DarkHorseReason = fmt.Sprintf("방해 %d회 + 끝걸음 살아있음 (G1F≤13.0)", detail.Count)
	case detail.Count >= 2:
		detail.DarkHorse = true
		detail.DarkHorseReason = fmt.Sprintf("방해 %d회, 실력 이상으로 순위 하락 가능성", detail.Count)
	}

	return detail
}

func (a *Analyzer) isPenaltyReport(text string) bool {
	for _, kw := range a.cfg.PenaltyKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// lateSectionalAt finds the late sectional of the run the report refers to,
// matched by normalized date and, when both sides carry one, race number.
func lateSectionalAt(rpt models.StewardReport, history []models.RaceHistoryEntry) float64 {
	date := rpt.NormalizedDate()
	for _, e := range history {
		if e.Date != date {
			continue
		}
		if rpt.RaceNo > 0 && e.RaceNo > 0 && rpt.RaceNo != e.RaceNo {
			continue
		}
		return e.LateSectional
	}
	return 0
}
