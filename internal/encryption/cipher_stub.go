// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

//go:build noencryption

package encryption

// Available reports whether this build can encrypt feeds.
// This stub is compiled when encryption is disabled via build tags.
const Available = false

// Encrypt always returns ErrUnavailable in this build.
func Encrypt(_ []byte, _ string) (string, error) {
	return "", ErrUnavailable
}

// Decrypt always returns ErrUnavailable in this build.
func Decrypt(_, _ string) ([]byte, error) {
	return nil, ErrUnavailable
}
