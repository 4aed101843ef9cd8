// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package feed turns data-retrieval functions into Geckoboard custom widget
feeds.

A view is any func(*http.Request) (T, error) returning one of the result
types of package widget. Each constructor on Feeds wraps a view in an
http.Handler that, per request:

 1. checks the Geckoboard API key (403 with an empty body on failure; the
    view is not called)
 2. calls the view
 3. normalizes the result into the widget payload
 4. merges static keys given with With
 5. serializes to JSON and, for Encrypted feeds, wraps it in the salted
    AES envelope
 6. writes 200 with Content-Type application/json

View and normalizer errors are logged and answered with a 500 JSON error
envelope; no partial body is written.

Example:

	feeds := feed.New(feed.Config{APIKey: cfg.Geckoboard.APIKey})

	h, err := feeds.Number(func(r *http.Request) (widget.NumberResult, error) {
	    n, err := store.CountVisitors(r.Context())
	    if err != nil {
	        return nil, err
	    }
	    return widget.NumberScalar(n), nil
	})
	if err != nil {
	    return err // *ConfigurationError
	}

Encrypted feeds need Config.Password and a build without the noencryption
tag; otherwise the constructor returns a ConfigurationError.
*/
package feed
