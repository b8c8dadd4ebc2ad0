package models

import "errors"

// Custom errors
var (
	ErrNoData              = errors.New("no race data available")
	ErrInsufficientRunners = errors.New("fewer than 3 non-vetoed runners")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrUnknownTrack        = errors.New("unknown track code")
)
