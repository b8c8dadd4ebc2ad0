package models

// DarkHorseDetail describes one dark-horse candidate attached to a TrioPick.
type DarkHorseDetail struct {
	HorseNo    string   `json:"horse_no"`
	HorseName  string   `json:"horse_name"`
	Reasons    []string `json:"reasons"`
	TotalScore float64  `json:"total_score"`
	LateAvg    float64  `json:"late_avg"`
}

// TrioPick is the wagering-combination recommendation for one race: a single
// axis horse, up to two challengers, a partner pool, and the enumerated trio
// combinations. Insufficient is set when fewer than 3 non-vetoed horses were
// available; in that case all other fields are empty.
type TrioPick struct {
	Axis         []string          `json:"axis"`
	Challengers  []string          `json:"challengers"`
	Partners     []string          `json:"partners"`
	Combinations []string          `json:"combinations"` // sorted "a-b-c" keys
	NumBets      int               `json:"num_bets"`
	DarkHorses   []DarkHorseDetail `json:"dark_horses"`
	Summary      string            `json:"summary"`
	Insufficient bool              `json:"insufficient"`
}
