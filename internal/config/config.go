// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

// Package config loads the forecast CLI configuration via Koanf v2 with
// layered sources (highest priority wins): environment variables, an
// optional YAML config file, built-in defaults.
//
// The trained-model artifact path resolved here is handed to the pipeline
// explicitly at construction time; nothing below the entrypoint reads the
// environment.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration for the forecast CLI.
type Config struct {
	Model   ModelConfig   `koanf:"model"`
	Logging LoggingConfig `koanf:"logging"`
}

// ModelConfig locates the trained estimator artifact.
type ModelConfig struct {
	// Path is the filesystem path of the serialized estimator document.
	// Overridable via MODEL_PATH.
	Path string `koanf:"path" validate:"required"`
}

// LoggingConfig configures diagnostic output on stderr.
type LoggingConfig struct {
	// Level is the minimum log level. Overridable via LOG_LEVEL.
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`

	// Format is json or console. Overridable via LOG_FORMAT.
	Format string `koanf:"format" validate:"oneof=json console"`
}

// DefaultModelPath is used when neither MODEL_PATH nor a config file
// provides one. Relative to the working directory, matching where the
// training export drops the artifact.
const DefaultModelPath = "models/uniform_forecast.json"

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Path: DefaultModelPath,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// singleton validator instance; validator.Validate caches struct metadata
// and is safe for concurrent use.
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid configuration: %s failed %q validation (value %v)",
				fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
