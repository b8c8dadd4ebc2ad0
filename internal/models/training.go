package models

import "strings"

// Training intensity categories as published by the KRA daily training sheet.
const (
	TrainingStrong = "강" // strong workout
	TrainingNormal = "보" // normal workout
	TrainingLight  = "가" // light workout
)

// TrainingRecord represents one training session in the trailing week.
type TrainingRecord struct {
	Intensity string  `json:"intensity"`
	Distance  float64 `json:"distance"` // meters
}

// IsStrong reports whether the session was a strong workout.
func (t TrainingRecord) IsStrong() bool {
	return strings.Contains(t.Intensity, TrainingStrong)
}
