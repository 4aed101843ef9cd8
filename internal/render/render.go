// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

// Package render turns widget payloads into response bodies.
package render

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geckofeed/internal/encryption"
	"github.com/tomtom215/geckofeed/internal/widget"
)

// ContentTypeJSON is the content type of every feed response, encrypted or not.
const ContentTypeJSON = "application/json"

// JSON serializes p as UTF-8 JSON, keeping key order. A nil payload
// renders as "{}".
func JSON(p *widget.Payload) ([]byte, string, error) {
	if p == nil {
		p = widget.NewPayload()
	}
	body, err := json.Marshal(p)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal payload: %w", err)
	}
	return body, ContentTypeJSON, nil
}

// Encrypted wraps a serialized body in the salted AES envelope. The result
// is the base64 text Geckoboard expects as the whole response body.
func Encrypted(body []byte, passphrase string) ([]byte, error) {
	envelope, err := encryption.Encrypt(body, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt payload: %w", err)
	}
	return []byte(envelope), nil
}
