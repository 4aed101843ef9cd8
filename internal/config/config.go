// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Geckoboard GeckoboardConfig `koanf:"geckoboard"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// GeckoboardConfig holds the credentials shared with the Geckoboard account.
//
// Environment Variables:
//   - GECKOBOARD_API_KEY: API key expected as the Basic auth username (empty disables the check)
//   - GECKOBOARD_PASSWORD: passphrase for encrypted feeds
//   - GECKOBOARD_ENCRYPT_FEEDS: encrypt the built-in feeds (default: false)
type GeckoboardConfig struct {
	APIKey       string `koanf:"api_key"`
	Password     string `koanf:"password" validate:"required_if=EncryptFeeds true"`
	EncryptFeeds bool   `koanf:"encrypt_feeds"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins" validate:"dive,cors_origin"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// String renders the configuration for startup logs with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("geckoboard{api_key=%s password=%s encrypt_feeds=%t} server{%s read=%s write=%s} security{rate_limit=%d/%s disabled=%t cors=%v} logging{%s %s}",
		MaskSecret(c.Geckoboard.APIKey), MaskSecret(c.Geckoboard.Password), c.Geckoboard.EncryptFeeds,
		c.Server.Addr(), c.Server.ReadTimeout, c.Server.WriteTimeout,
		c.Security.RateLimitReqs, c.Security.RateLimitWindow, c.Security.RateLimitDisabled, c.Security.CORSOrigins,
		c.Logging.Level, c.Logging.Format)
}

// MaskSecret returns a masked version of a secret for display purposes.
// Shows only the last 4 characters preceded by asterisks.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****..." + secret[len(secret)-4:]
}
