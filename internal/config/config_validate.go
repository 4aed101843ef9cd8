// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package config

import (
	"fmt"

	"github.com/tomtom215/geckofeed/internal/encryption"
	"github.com/tomtom215/geckofeed/internal/validation"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if err := c.validateGeckoboard(); err != nil {
		return err
	}

	return c.validateSecurity()
}

// validateGeckoboard checks settings the struct tags cannot express.
func (c *Config) validateGeckoboard() error {
	if c.Geckoboard.EncryptFeeds && !encryption.Available {
		return fmt.Errorf("GECKOBOARD_ENCRYPT_FEEDS=true but this build has no encryption support")
	}
	return nil
}

// validateSecurity validates rate limiting (only if enabled)
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive when rate limiting is enabled")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}
