// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

// Package validation wraps a singleton go-playground/validator instance.
//
// Rules are declared with validate tags; the package adds a "cors_origin"
// rule accepting "*" or an http(s) origin. ValidateStruct returns an *Error
// whose messages name the failing field by its namespace without the root
// struct:
//
//	type ServerConfig struct {
//	    Port int `validate:"min=1,max=65535"`
//	}
//
//	if err := validation.ValidateStruct(&cfg); err != nil {
//	    return fmt.Errorf("invalid configuration: %w", err)
//	}
package validation
