// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package feed

import "github.com/tomtom215/geckofeed/internal/widget"

// Options is the static configuration of one feed. It is built once by
// the constructor and never changes afterwards.
type Options struct {
	encrypted bool
	format    string
	extras    *widget.Payload
}

// Option configures a feed.
type Option func(*Options)

// Encrypted encrypts the response body with the configured password.
func Encrypted() Option {
	return func(o *Options) {
		o.encrypted = true
	}
}

// Format records a requested output format. Responses are always JSON, so
// the value is kept for logging only.
func Format(format string) Option {
	return func(o *Options) {
		o.format = format
	}
}

// With adds a static key to every response. Keys produced by the view win
// over static keys of the same name; static keys come first in the output.
// Repeating a key keeps its first position and the last value.
func With(key string, value any) Option {
	return func(o *Options) {
		if o.extras == nil {
			o.extras = widget.NewPayload()
		}
		o.extras.Set(key, value)
	}
}

func buildOptions(defaults, opts []Option) Options {
	var o Options
	for _, opt := range defaults {
		if opt != nil {
			opt(&o)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// IsEncrypted reports whether responses are encrypted.
func (o Options) IsEncrypted() bool {
	return o.encrypted
}

// Extras returns the static keys merged into every response, in order.
func (o Options) Extras() []string {
	return widget.Keys(o.extras)
}
