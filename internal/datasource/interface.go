package datasource

import (
	"context"
	"fmt"

	"github.com/yourusername/paddock-edge/internal/models"
)

// Collector defines the interface for fetching one race day worth of data
// from an external provider (or a synthetic substitute).
type Collector interface {
	// CollectDay retrieves entries, training, results and weights for the
	// given YYYYMMDD date and racecourse name.
	CollectDay(ctx context.Context, date, track string) (*models.RaceDay, error)

	// Name returns the name of the data source
	Name() string
}

// trackCodes maps racecourse names to the open-API meet codes.
var trackCodes = map[string]string{
	"서울":    "1",
	"제주":    "2",
	"부산":    "3",
	"부산경남":  "3",
	"seoul": "1",
	"jeju":  "2",
	"busan": "3",
}

// TrackCode resolves a racecourse name to its meet code.
func TrackCode(track string) (string, error) {
	if code, ok := trackCodes[track]; ok {
		return code, nil
	}
	return "", fmt.Errorf("%w: %s", models.ErrUnknownTrack, track)
}

// DataSourceError represents errors from data source operations
type DataSourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e DataSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e DataSourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
)

// NewDataSourceError creates a new data source error
func NewDataSourceError(source, code, message string, err error) DataSourceError {
	return DataSourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
