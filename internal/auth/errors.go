// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package auth

import "errors"

// Authentication errors
var (
	// ErrAuthentication is the parent of every authentication failure.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNoCredentials is returned when the request carries no Basic credentials.
	ErrNoCredentials = &AuthenticationError{Reason: "no credentials provided"}

	// ErrInvalidCredentials is returned when the credentials do not match the API key.
	ErrInvalidCredentials = &AuthenticationError{Reason: "invalid credentials"}
)

// AuthenticationError describes why a request was rejected.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}

// Unwrap allows errors.Is(err, ErrAuthentication).
func (e *AuthenticationError) Unwrap() error {
	return ErrAuthentication
}
