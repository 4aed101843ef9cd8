// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

// GaugeBound is the minimum or maximum of a Geck-O-Meter, with optional
// text displayed next to it.
type GaugeBound struct {
	value   any
	text    string
	hasText bool
}

// Bound returns a bound without text.
func Bound(v any) GaugeBound {
	return GaugeBound{value: v}
}

// BoundText returns a bound with text.
func BoundText(v any, text string) GaugeBound {
	return GaugeBound{value: v, text: text, hasText: true}
}

func (b GaugeBound) payload() *Payload {
	p := PayloadOf(Field{"value", b.value})
	if b.hasText {
		p.Set("text", b.text)
	}
	return p
}

// GeckOMeter is the current value of a gauge between Min and Max.
type GeckOMeter struct {
	Value any
	Min   GaugeBound
	Max   GaugeBound
}

// NormalizeGeckOMeter builds a "Geck-O-Meter" payload.
func NormalizeGeckOMeter(result GeckOMeter) (*Payload, error) {
	return PayloadOf(
		Field{"item", result.Value},
		Field{"min", result.Min.payload()},
		Field{"max", result.Max.payload()},
	), nil
}
