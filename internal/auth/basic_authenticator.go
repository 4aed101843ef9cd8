// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package auth

import (
	"net/http"
)

// APIKeyAuthenticator checks Geckoboard's API key, sent as the Basic auth
// username with the password "X". The zero value (no key) accepts every
// request.
type APIKeyAuthenticator struct {
	apiKey string
}

// NewAPIKeyAuthenticator creates an authenticator for apiKey. An empty key
// disables the check.
func NewAPIKeyAuthenticator(apiKey string) *APIKeyAuthenticator {
	return &APIKeyAuthenticator{apiKey: apiKey}
}

// Enabled reports whether an API key is configured.
func (a *APIKeyAuthenticator) Enabled() bool {
	return a != nil && a.apiKey != ""
}

// Authenticate validates the request credentials. It returns nil on success,
// ErrNoCredentials when the request has no usable Basic header and
// ErrInvalidCredentials when the key or password do not match.
func (a *APIKeyAuthenticator) Authenticate(r *http.Request) error {
	if !a.Enabled() {
		return nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ErrNoCredentials
	}

	username, password, err := parseBasicCredentials(authHeader)
	if err != nil {
		return ErrNoCredentials
	}

	if !matchAPIKey(a.apiKey, username, password) {
		return ErrInvalidCredentials
	}
	return nil
}

// Check reports whether r is authorized for apiKey. An empty apiKey always
// succeeds.
func Check(apiKey string, r *http.Request) bool {
	return NewAPIKeyAuthenticator(apiKey).Authenticate(r) == nil
}
