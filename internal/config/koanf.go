// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/geckofeed/config.yaml",
	"/etc/geckofeed/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Geckoboard: GeckoboardConfig{
			APIKey:       "", // No key: every poll is accepted
			Password:     "",
			EncryptFeeds: false,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf with layered sources:
//  1. Built-in defaults
//  2. Config file (config.yaml, or the path in CONFIG_PATH)
//  3. Environment variables (highest priority)
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file that exists, or "" when
// there is none. CONFIG_PATH wins over the default locations.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths lists keys that may arrive as comma-separated strings
// from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated string values into slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config keys.
var envMappings = map[string]string{
	"geckoboard_api_key":       "geckoboard.api_key",
	"geckoboard_password":      "geckoboard.password",
	"geckoboard_encrypt_feeds": "geckoboard.encrypt_feeds",

	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps known environment variables to config keys.
// Unmapped variables return "" and are skipped, so unrelated environment
// variables never reach the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
