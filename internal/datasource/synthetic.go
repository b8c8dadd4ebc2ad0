package datasource

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/yourusername/paddock-edge/internal/models"
)

// SyntheticSource generates plausible race days for demo mode. The shape
// matches what the live collector produces (same columns, same alias
// families), so the rest of the pipeline runs unchanged.
type SyntheticSource struct {
	rng *rand.Rand
}

// NewSyntheticSource creates a demo data source. The seed fixes the generated
// field so runs are reproducible.
func NewSyntheticSource(seed int64) *SyntheticSource {
	return &SyntheticSource{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the data source name
func (s *SyntheticSource) Name() string {
	return "synthetic"
}

var syntheticPositions = []string{"1-1", "2-2", "8-7", "5-5"}

// CollectDay fabricates 10 races of 8-12 horses each, with shuffled finish
// orders, five-race history columns, weekly training rows and dividend
// columns on the results sheet.
func (s *SyntheticSource) CollectDay(ctx context.Context, date, track string) (*models.RaceDay, error) {
	if _, err := TrackCode(track); err != nil {
		return nil, err
	}

	day := &models.RaceDay{Date: date, Track: track}

	for raceNo := 1; raceNo <= 10; raceNo++ {
		numHorses := 8 + s.rng.Intn(5)
		rankPool := s.rng.Perm(numHorses)

		quiDiv := s.fmtFloat(2+s.rng.Float64()*120, 1)
		trioDiv := s.fmtFloat(5+s.rng.Float64()*400, 1)

		for i := 0; i < numHorses; i++ {
			horseNo := i + 1
			horseName := fmt.Sprintf("가상마%d_%d", raceNo, horseNo)

			entry := models.Row{
				"rcNo":   strconv.Itoa(raceNo),
				"hrNo":   strconv.Itoa(horseNo),
				"hrName": horseName,
				"jkName": fmt.Sprintf("기수%d", 1+s.rng.Intn(50)),
				"trName": fmt.Sprintf("조교사%d", 1+s.rng.Intn(30)),
				"rating": strconv.Itoa(20 + s.rng.Intn(81)),
				"wgHr":   strconv.Itoa(450 + s.rng.Intn(101)),
			}
			for h := 1; h <= 5; h++ {
				entry[fmt.Sprintf("s1f_%d", h)] = s.fmtFloat(13.0+s.rng.Float64()*1.5, 2)
				entry[fmt.Sprintf("g1f_%d", h)] = s.fmtFloat(12.0+s.rng.Float64()*2.0, 2)
				entry[fmt.Sprintf("ord_%d", h)] = strconv.Itoa(1 + s.rng.Intn(14))
				entry[fmt.Sprintf("pos_%d", h)] = syntheticPositions[s.rng.Intn(len(syntheticPositions))]
				entry[fmt.Sprintf("wg_%d", h)] = strconv.Itoa(450 + s.rng.Intn(71))
			}
			day.Entries = append(day.Entries, entry)

			day.Results = append(day.Results, models.Row{
				"rcNo":     strconv.Itoa(raceNo),
				"hrName":   horseName,
				"ord":      strconv.Itoa(rankPool[i] + 1),
				"winOdds":  s.fmtFloat(1.5+s.rng.Float64()*20, 1),
				"plcOdds":  s.fmtFloat(1.1+s.rng.Float64()*5, 1),
				"qui_div":  quiDiv,
				"trio_div": trioDiv,
			})

			if s.rng.Float64() > 0.5 {
				day.Training = append(day.Training, models.Row{
					"hrName": horseName,
					"trGbn":  "강",
					"trDist": strconv.Itoa(600 + s.rng.Intn(800)),
					"trDate": date,
				})
			}
		}
	}

	day.Weights = weightsFromEntries(day.Entries)
	return day, nil
}

func (s *SyntheticSource) fmtFloat(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}
