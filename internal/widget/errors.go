// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

import (
	"errors"
	"fmt"
)

// ErrShape is matched by every *ShapeError.
var ErrShape = errors.New("unexpected widget result shape")

// ShapeError reports a view result that does not have the structure its
// widget type requires.
type ShapeError struct {
	// Kind is the widget type whose normalizer rejected the result.
	Kind Kind

	// Reason describes the missing or malformed part.
	Reason string
}

// Error implements error.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s widget: %s", e.Kind, e.Reason)
}

// Unwrap lets errors.Is(err, ErrShape) match.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}

func shapeErrorf(kind Kind, format string, args ...any) *ShapeError {
	return &ShapeError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
