// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package feed

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the sentinel matched by every ConfigurationError.
var ErrConfiguration = errors.New("feed configuration error")

// ConfigurationError reports a feed that cannot be built as requested. It
// is returned by the constructors, never while serving.
type ConfigurationError struct {
	// Widget is the widget kind being constructed.
	Widget string
	// Reason describes what is wrong.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s feed: %s", e.Widget, e.Reason)
}

// Unwrap returns ErrConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
