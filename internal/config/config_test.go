// Package config provides configuration management for the Paddock Edge application.
package config

import (
	"os"
	"strings"
	"testing"
)

const (
	validConfigPath              = "testdata/valid_config.yaml"
	expansionConfigPath          = "testdata/expansion_config.yaml"
	nonexistentConfigPath        = "testdata/nonexistent_config.yaml"
	expectedNoErrorLoadingConfig = "expected no error loading config, got %v"
	expectedNoErrorMsg           = "expected no error, got %v"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.App.Name != "paddock-edge" {
		t.Errorf("expected app name 'paddock-edge', got '%s'", cfg.App.Name)
	}

	if cfg.Backtest.Track != "서울" {
		t.Errorf("expected track '서울', got '%s'", cfg.Backtest.Track)
	}

	if cfg.KRA.TimeoutSeconds != 10 {
		t.Errorf("expected kra timeout 10, got %d", cfg.KRA.TimeoutSeconds)
	}
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadConfigEnvironmentVariables tests environment variable override
func TestLoadConfigEnvironmentVariables(t *testing.T) {
	os.Setenv("PADDOCK_EDGE_APP_NAME", "test-app")
	defer os.Unsetenv("PADDOCK_EDGE_APP_NAME")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != "test-app" {
		t.Errorf("expected app name 'test-app' from environment, got '%s'", cfg.App.Name)
	}
}

// TestLoadConfigEnvironmentVariableExpansion tests ${VAR} expansion in the file
func TestLoadConfigEnvironmentVariableExpansion(t *testing.T) {
	os.Setenv("TEST_KRA_API_KEY", "expanded-secret-value")
	defer os.Unsetenv("TEST_KRA_API_KEY")

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config with expansion, got %v", err)
	}

	if cfg.KRA.APIKey != "expanded-secret-value" {
		t.Errorf("expected api key from environment expansion, got '%s'", cfg.KRA.APIKey)
	}
}

// TestLoadWithDefaultsNoFile tests that defaults alone produce a usable config
func TestLoadWithDefaultsNoFile(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got '%s'", cfg.App.LogLevel)
	}

	if cfg.Backtest.TrioUnit != 10 {
		t.Errorf("expected default trio unit 10, got %d", cfg.Backtest.TrioUnit)
	}

	if cfg.Cache.Root != "data/cache" {
		t.Errorf("expected default cache root, got '%s'", cfg.Cache.Root)
	}

	// The rolling backtest window default must satisfy validation on its own.
	if err := Validate(cfg); err != nil && !strings.Contains(err.Error(), "api_key") {
		t.Errorf("expected defaults to validate (modulo api key), got %v", err)
	}
}

// TestValidateSuccess tests validation of a valid configuration
func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected no validation error, got %v", err)
	}
}

// TestValidateInvalidEnvironment tests validation of invalid environment
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = "invalid"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
}

// TestValidateInvalidTrack tests validation of unknown racecourse names
func TestValidateInvalidTrack(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Backtest.Track = "ascot"
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for unknown track")
	}
	if !strings.Contains(err.Error(), "Track") {
		t.Errorf("expected track validation error, got: %v", err)
	}
}

// TestValidateInvalidDate tests validation of malformed race-day dates
func TestValidateInvalidDate(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Backtest.StartDate = "2025-01-04"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for non-YYYYMMDD date")
	}
}

// TestValidateDateOrdering tests the start/end cross-field rule
func TestValidateDateOrdering(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Backtest.StartDate = "20250201"
	cfg.Backtest.EndDate = "20250104"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for start after end")
	}
}

// TestValidateAPIKeyRequiredForLiveCollection tests the demo/no_api escape hatch
func TestValidateAPIKeyRequiredForLiveCollection(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.KRA.APIKey = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for live collection without api key")
	}

	cfg.Backtest.Demo = true
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected demo mode to pass without api key, got %v", err)
	}
}

// TestValidateNarrativeURLRequired tests the enabled-narrative cross-field rule
func TestValidateNarrativeURLRequired(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Narrative.Enabled = true
	cfg.Narrative.URL = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for enabled narrative without url")
	}
}

// TestIsDevelopment tests environment check function
func TestIsDevelopment(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "development"},
	}

	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return true")
	}

	if cfg.IsProduction() {
		t.Error("expected IsProduction() to return false")
	}
}
