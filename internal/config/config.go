// Package config provides configuration management for the Paddock Edge application.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	KRA       KRAConfig       `mapstructure:"kra" validate:"required"`
	Narrative NarrativeConfig `mapstructure:"narrative"`
	Cache     CacheConfig     `mapstructure:"cache" validate:"required"`
	Backtest  BacktestConfig  `mapstructure:"backtest" validate:"required"`
	Collector CollectorConfig `mapstructure:"collector"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// KRAConfig represents the racing open-API collector configuration
type KRAConfig struct {
	BaseURL        string  `mapstructure:"base_url" validate:"required,url"`
	APIKey         string  `mapstructure:"api_key"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryAttempts  int     `mapstructure:"retry_attempts" validate:"gte=0"`
	RequestsPerSec float64 `mapstructure:"requests_per_sec" validate:"required,gt=0"`
	RowsPerPage    int     `mapstructure:"rows_per_page" validate:"required,gt=0"`
}

// NarrativeConfig represents the text-generation collaborator configuration.
// Disabled by default; the engine never depends on it.
type NarrativeConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	URL             string  `mapstructure:"url" validate:"omitempty,url"`
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	Temperature     float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	MaxTokens       int     `mapstructure:"max_tokens" validate:"gte=0"`
	TimeoutSeconds  int     `mapstructure:"timeout_seconds" validate:"gte=0"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// CacheConfig represents the flat-file day cache configuration
type CacheConfig struct {
	Root string `mapstructure:"root" validate:"required"`
}

// BacktestConfig represents backtesting configuration
type BacktestConfig struct {
	StartDate    string `mapstructure:"start_date" validate:"required,raceday"`
	EndDate      string `mapstructure:"end_date" validate:"required,raceday"`
	Track        string `mapstructure:"track" validate:"required,track"`
	Demo         bool   `mapstructure:"demo"`
	NoAPI        bool   `mapstructure:"no_api"`
	QuinellaUnit int    `mapstructure:"quinella_unit" validate:"required,gt=0"`
	TrioUnit     int    `mapstructure:"trio_unit" validate:"required,gt=0"`
}

// CollectorConfig represents cache pre-warming configuration
type CollectorConfig struct {
	Schedule  string   `mapstructure:"schedule"`
	Tracks    []string `mapstructure:"tracks" validate:"omitempty,dive,track"`
	DaysAhead int      `mapstructure:"days_ahead" validate:"gte=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// KRATimeout returns the collector HTTP timeout as a duration
func (c *Config) KRATimeout() time.Duration {
	return time.Duration(c.KRA.TimeoutSeconds) * time.Second
}

// NarrativeTimeout returns the narrative client timeout as a duration
func (c *Config) NarrativeTimeout() time.Duration {
	return time.Duration(c.Narrative.TimeoutSeconds) * time.Second
}

// MetricsAddress returns the listen address for the metrics endpoint
func (c *Config) MetricsAddress() string {
	return fmt.Sprintf(":%d", c.Metrics.Port)
}
