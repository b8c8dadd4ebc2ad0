package scoring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yourusername/paddock-edge/internal/models"
)

// Supplementary dark-horse heuristics applied on top of the interference flag:
// a strong closer ranked below the podium, or a closer profile (slow early,
// fast late sectional).
const (
	strongCloserLateMax = 13.3
	closerEarlyMin      = 14.0
	closerLateMax       = 13.0
)

// GenerateTrioPicks turns a ranking into the axis/challenger/dark-horse
// wagering structure and enumerates the trio combinations. Requires at least
// 3 non-vetoed horses; otherwise an insufficient result is returned, never an
// error.
func GenerateTrioPicks(ranked []models.HorseAnalysis) models.TrioPick {
	valid := make([]models.HorseAnalysis, 0, len(ranked))
	for _, h := range ranked {
		if h.Rank != models.RankVeto {
			valid = append(valid, h)
		}
	}
	if len(valid) < 3 {
		return models.TrioPick{Insufficient: true, Summary: "출전마 부족"}
	}

	axis := horseID(valid[0])
	challengers := []string{horseID(valid[1]), horseID(valid[2])}

	partnerSet := make(map[string]bool)
	for i := 3; i < len(valid) && i < 6; i++ {
		partnerSet[horseID(valid[i])] = true
	}

	var darkHorses []models.DarkHorseDetail
	for _, h := range valid {
		reasons := darkHorseReasons(h)
		if len(reasons) == 0 {
			continue
		}
		id := horseID(h)
		darkHorses = append(darkHorses, models.DarkHorseDetail{
			HorseNo:    id,
			HorseName:  h.HorseName,
			Reasons:    reasons,
			TotalScore: h.TotalScore,
			LateAvg:    h.Speed.LateAvg,
		})
		if id != axis && id != challengers[0] && id != challengers[1] {
			partnerSet[id] = true
		}
	}

	partners := make([]string, 0, len(partnerSet))
	for id := range partnerSet {
		partners = append(partners, id)
	}
	sortIDs(partners)

	combos := make(map[string]bool)
	for _, chal := range challengers {
		for _, part := range partners {
			combos[comboKey(axis, chal, part)] = true
		}
	}
	combos[comboKey(axis, challengers[0], challengers[1])] = true

	combinations := make([]string, 0, len(combos))
	for c := range combos {
		combinations = append(combinations, c)
	}
	sort.Strings(combinations)

	return models.TrioPick{
		Axis:         []string{axis},
		Challengers:  challengers,
		Partners:     partners,
		Combinations: combinations,
		NumBets:      len(combinations),
		DarkHorses:   darkHorses,
		Summary: fmt.Sprintf("축 [%s] / 도전 [%s] / 복병 [%s]",
			axis, strings.Join(challengers, ","), strings.Join(partners, ",")),
	}
}

func darkHorseReasons(h models.HorseAnalysis) []string {
	var reasons []string
	if h.DarkHorse {
		reasons = append(reasons, h.DarkHorseReason)
	}
	if h.Speed.Vector == models.VectorStrong && h.Rank > 3 && h.Speed.LateAvg > 0 && h.Speed.LateAvg <= strongCloserLateMax {
		reasons = append(reasons, fmt.Sprintf("끝걸음 Strong (G1F=%.1fs) 순위 대비 저평가", h.Speed.LateAvg))
	}
	if h.Speed.EarlyAvg > closerEarlyMin && h.Speed.LateAvg > 0 && h.Speed.LateAvg <= closerLateMax {
		reasons = append(reasons, fmt.Sprintf("추입형 (S1F=%.1f->G1F=%.1f)", h.Speed.EarlyAvg, h.Speed.LateAvg))
	}
	return reasons
}

func horseID(h models.HorseAnalysis) string {
	if h.HorseNo != "" {
		return h.HorseNo
	}
	return h.HorseName
}

// comboKey builds the canonical sorted "a-b-c" key used to de-duplicate
// combinations across generation paths.
func comboKey(ids ...string) string {
	sorted := append([]string{}, ids...)
	sortIDs(sorted)
	return strings.Join(sorted, "-")
}

// sortIDs orders identifiers numerically when they parse as horse numbers,
// pushing non-numeric identifiers last.
func sortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		ki, kj := idSortKey(ids[i]), idSortKey(ids[j])
		if ki != kj {
			return ki < kj
		}
		return ids[i] < ids[j]
	})
}

func idSortKey(id string) int {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	return 1 << 30
}
