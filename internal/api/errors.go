// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package api

import "errors"

// Feed mounting errors
var (
	// ErrInvalidFeedName indicates a feed name that cannot be used as a path segment
	ErrInvalidFeedName = errors.New("invalid feed name")

	// ErrDuplicateFeed indicates a feed name that is already mounted
	ErrDuplicateFeed = errors.New("feed already mounted")

	// ErrNilHandler indicates a feed mounted without a handler
	ErrNilHandler = errors.New("feed handler is nil")
)
