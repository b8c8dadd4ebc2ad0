package datasource

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/paddock-edge/internal/config"
)

// NewCollector creates the collector the configuration asks for: the
// synthetic generator in demo mode, the open-API client otherwise.
func NewCollector(cfg *config.Config, logger *logrus.Logger) Collector {
	if cfg.Backtest.Demo {
		return NewSyntheticSource(time.Now().UnixNano())
	}

	httpCfg := DefaultHTTPClientConfig()
	httpCfg.Timeout = cfg.KRATimeout()
	httpCfg.MaxRetries = cfg.KRA.RetryAttempts
	if cfg.KRA.RequestsPerSec > 0 {
		httpCfg.RateLimit = cfg.KRA.RequestsPerSec
	}

	apiKey := cfg.KRA.APIKey
	if cfg.Backtest.NoAPI {
		apiKey = ""
	}

	httpClient := NewRateLimitedHTTPClient(httpCfg, logger)
	return NewKRAClient(httpClient, cfg.KRA.BaseURL, apiKey, cfg.KRA.RowsPerPage, logger)
}
