// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

// NormalizeCustom passes a prebuilt payload through unchanged, for widget
// shapes this package does not model. A nil payload becomes an empty one.
func NormalizeCustom(p *Payload) (*Payload, error) {
	if p == nil {
		return NewPayload(), nil
	}
	return p, nil
}
