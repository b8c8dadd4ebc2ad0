// Package config provides configuration management for the Paddock Edge application.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	// Read the configuration file
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Environment variables override file values (PADDOCK_EDGE_APP_LOG_LEVEL etc.)
	v.SetEnvPrefix("PADDOCK_EDGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional fields.
// A missing config file is not an error; defaults plus environment variables
// are enough to run demo mode.
func LoadWithDefaults(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")

	v.SetEnvPrefix("PADDOCK_EDGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "paddock-edge")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("kra.base_url", "https://apis.data.go.kr/B551015")
	v.SetDefault("kra.timeout_seconds", 10)
	v.SetDefault("kra.retry_attempts", 3)
	v.SetDefault("kra.requests_per_sec", 2.0)
	v.SetDefault("kra.rows_per_page", 500)
	v.SetDefault("narrative.temperature", 0.3)
	v.SetDefault("narrative.max_tokens", 2048)
	v.SetDefault("narrative.timeout_seconds", 30)
	v.SetDefault("narrative.cache_ttl_seconds", 3600)
	v.SetDefault("cache.root", "data/cache")
	v.SetDefault("backtest.start_date", time.Now().AddDate(0, -3, 0).Format("20060102"))
	v.SetDefault("backtest.end_date", time.Now().Format("20060102"))
	v.SetDefault("backtest.track", "서울")
	v.SetDefault("backtest.quinella_unit", 5)
	v.SetDefault("backtest.trio_unit", 10)
	v.SetDefault("collector.days_ahead", 2)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
