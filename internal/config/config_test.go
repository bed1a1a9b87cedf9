// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Run from a directory without a config file so only defaults apply.
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Model.Path != DefaultModelPath {
		t.Errorf("Model.Path = %q, want %q", cfg.Model.Path, DefaultModelPath)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("MODEL_PATH", "/data/models/forecast.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Model.Path != "/data/models/forecast.json" {
		t.Errorf("Model.Path = %q, want env override", cfg.Model.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadConfigFileAndEnvPrecedence(t *testing.T) {
	dir := chdirTemp(t)

	configYAML := "model:\n  path: /from/file.json\nlogging:\n  level: warn\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configYAML), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// Env beats file, file beats defaults.
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Model.Path != "/from/file.json" {
		t.Errorf("Model.Path = %q, want file value", cfg.Model.Path)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want env to win over file", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := Load(); err == nil {
		t.Error("Load() accepted invalid log level")
	}
}

func TestValidateRejectsEmptyModelPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.Model.Path = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted empty model path")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"MODEL_PATH", "model.path"},
		{"LOG_LEVEL", "logging.level"},
		{"LOG_FORMAT", "logging.format"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// chdirTemp moves the test into a fresh temp dir so config file discovery
// is hermetic, and restores the working directory on cleanup.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
	return dir
}
