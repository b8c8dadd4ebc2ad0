package models

import "github.com/shopspring/decimal"

// BacktestOutcome is one row per simulated race: the predicted axis horse
// against the actual finish, with per-bet-type hit flags and recorded returns.
type BacktestOutcome struct {
	Date       string  `json:"date"`
	Track      string  `json:"track"`
	RaceNo     int     `json:"race_no"`
	AxisHorse  string  `json:"axis_horse"`
	PredScore  float64 `json:"pred_score"`
	ActualRank int     `json:"actual_rank"` // OrdUnknown when the axis never finished

	WinHit      bool `json:"win_hit"`
	PlaceHit    bool `json:"place_hit"`
	QuinellaHit bool `json:"quinella_hit"`
	TrioHit     bool `json:"trio_hit"`
	AxisVetoed  bool `json:"axis_vetoed"`

	WinReturn      decimal.Decimal `json:"win_return"`
	QuinellaReturn decimal.Decimal `json:"quinella_return"`
	TrioReturn     decimal.Decimal `json:"trio_return"`
}
