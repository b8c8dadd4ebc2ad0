package models

// Endurance vector labels produced by the speed scorer.
const (
	VectorStrong      = "Strong"
	VectorMaintaining = "Maintaining"
	VectorFading      = "Fading"
	VectorNA          = "N/A"
	VectorRecordBased = "기록기반" // fallback score derived from total race time
)

// RankVeto is the rank sentinel assigned to vetoed horses. Vetoed horses are
// never ordered among the ranked field.
const RankVeto = -1

// SpeedDetail holds the speed/endurance sub-score and its inputs.
type SpeedDetail struct {
	EarlyAvg float64 `json:"early_avg"`
	EarlyStd float64 `json:"early_std"`
	LateAvg  float64 `json:"late_avg"`
	LateStd  float64 `json:"late_std"`
	Vector   string  `json:"vector"`
	Score    float64 `json:"score"`
}

// PositionEntryDetail is the per-run breakdown of the position score.
type PositionEntryDetail struct {
	Ord    int     `json:"ord"`
	Pos    string  `json:"pos"`
	Corner string  `json:"corner"`
	Score  float64 `json:"score"`
}

// PositionDetail holds the placement-history sub-score.
type PositionDetail struct {
	Score          float64               `json:"score"`
	WideBonusCount int                   `json:"wide_bonus_count"`
	Entries        []PositionEntryDetail `json:"entries"`
}

// WeightDetail holds the body-weight veto decision.
type WeightDetail struct {
	Veto        bool    `json:"veto"`
	Diff        float64 `json:"diff"` // signed kg
	PriorWeight float64 `json:"prior_weight"`
	Note        string  `json:"note"`
}

// TrainingDetail holds the training-load sub-score.
type TrainingDetail struct {
	Score       float64 `json:"score"`
	Count       int     `json:"count"`
	StrongCount int     `json:"strong_count"`
	Note        string  `json:"note"`
}

// InterferenceReportDetail is the per-report breakdown of interference scoring.
type InterferenceReportDetail struct {
	Date          string   `json:"date"`
	Keywords      []string `json:"keywords"`
	LateSectional float64  `json:"late_sectional"`
	Score         float64  `json:"score"`
}

// InterferenceDetail holds the unlucky-horse bonus and dark-horse flag derived
// from steward reports.
type InterferenceDetail struct {
	Score           float64                    `json:"score"`
	Count           int                        `json:"count"`
	DarkHorse       bool                       `json:"dark_horse"`
	DarkHorseReason string                     `json:"dark_horse_reason"`
	Reports         []InterferenceReportDetail `json:"reports"`
}

// HorseAnalysis is the composite evaluation of one horse. It is created fresh
// on every analysis call and never mutated afterwards except for rank
// assignment by the ranker.
type HorseAnalysis struct {
	HorseNo    string  `json:"horse_no"`
	HorseName  string  `json:"horse_name"`
	TotalScore float64 `json:"total_score"`
	Rank       int     `json:"rank"` // 1..K, or RankVeto

	Veto            bool   `json:"veto"`
	VetoReason      string `json:"veto_reason"`
	DarkHorse       bool   `json:"dark_horse"`
	DarkHorseReason string `json:"dark_horse_reason"`

	Speed        SpeedDetail        `json:"speed"`
	Position     PositionDetail     `json:"position"`
	Weight       WeightDetail       `json:"weight"`
	Training     TrainingDetail     `json:"training"`
	Interference InterferenceDetail `json:"interference"`
}
