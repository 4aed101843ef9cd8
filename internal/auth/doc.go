// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package auth implements the API key check Geckoboard performs when it polls a
custom widget feed.

Geckoboard sends the account API key as the HTTP Basic username and the
literal "X" as the password:

	Authorization: Basic base64("<api key>:X")

Key Components:

  - APIKeyAuthenticator: validates a request against a configured key
  - Check: one-shot helper returning a bool
  - AuthenticationError: ErrNoCredentials and ErrInvalidCredentials, both
    matching ErrAuthentication with errors.Is

When no key is configured every request is accepted. Comparisons are
constant time.

Usage Example:

	authenticator := auth.NewAPIKeyAuthenticator(cfg.Geckoboard.APIKey)
	if err := authenticator.Authenticate(r); err != nil {
	    w.WriteHeader(http.StatusForbidden)
	    return
	}
*/
package auth
