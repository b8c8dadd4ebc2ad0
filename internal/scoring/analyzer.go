package scoring

import "github.com/yourusername/paddock-edge/internal/models"

// Composite aggregation weights over the sub-scores. The tunable surface is
// Config; these coefficients define the model itself.
const (
	speedWeight        = 0.30
	positionWeight     = 0.30
	trainingWeight     = 0.25
	interferenceWeight = 0.15

	cleanWeightBonus = 15  // not vetoed
	vetoPenalty      = -10 // vetoed
)

// Analyzer runs the full quantitative evaluation for single horses. It holds
// only immutable configuration; every method is a pure function of its
// arguments and the analyzer is safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with the given scoring configuration.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Config returns the analyzer's scoring configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// AnalyzeHorse produces the composite analysis for one entry. Missing or zero
// inputs degrade each sub-score to its documented default; no input
// combination fails.
func (a *Analyzer) AnalyzeHorse(entry models.HorseEntry) models.HorseAnalysis {
	speed := a.SpeedScore(entry.History)
	position := a.PositionScore(entry.History)
	weight := a.WeightVeto(entry.CurrentWeight, entry.History, entry.WeightDiff)
	training := a.TrainingScore(entry.Training)
	interference := a.InterferenceBonus(entry.Reports, entry.History)

	weightTerm := float64(cleanWeightBonus)
	if weight.Veto {
		weightTerm = vetoPenalty
	}

	total := speed.Score*speedWeight +
		position.Score*positionWeight +
		training.Score*trainingWeight +
		interference.Score*interferenceWeight +
		weightTerm

	analysis := models.HorseAnalysis{
		HorseNo:         entry.HorseNo,
		HorseName:       entry.HorseName,
		TotalScore:      roundTo(total, 1),
		Veto:            weight.Veto,
		DarkHorse:       interference.DarkHorse,
		DarkHorseReason: interference.DarkHorseReason,
		Speed:           speed,
		Position:        position,
		Weight:          weight,
		Training:        training,
		Interference:    interference,
	}
	if weight.Veto {
		analysis.VetoReason = weight.Note
	}

	return analysis
}
