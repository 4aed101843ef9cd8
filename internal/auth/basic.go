// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
)

// APIKeyPassword is the fixed password Geckoboard sends alongside the API key.
const APIKeyPassword = "X"

// parseBasicCredentials decodes an "Authorization: Basic ..." header value.
func parseBasicCredentials(authHeader string) (username, password string, err error) {
	// Check for "Basic " prefix
	scheme, encoded, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Basic") {
		return "", "", fmt.Errorf("invalid authorization header format")
	}

	credentials, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", fmt.Errorf("failed to decode credentials")
	}

	username, password, ok = strings.Cut(string(credentials), ":")
	if !ok {
		return "", "", fmt.Errorf("invalid credentials format")
	}
	return username, password, nil
}

// matchAPIKey performs constant-time comparison of the presented credentials
// against the configured key and the fixed password. Both comparisons always
// run.
func matchAPIKey(apiKey, username, password string) bool {
	keyMatch := subtle.ConstantTimeCompare([]byte(username), []byte(apiKey))
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(APIKeyPassword))
	return keyMatch&passwordMatch == 1
}
