// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

// TextType tells Geckoboard how to annotate a text message. The values are
// fixed codes of the Geckoboard API, not an ordering by severity.
type TextType int

// Text annotation codes
const (
	TextNone TextType = 0
	TextWarn TextType = 1
	TextInfo TextType = 2
)

// TextItem is a single message. The zero Type is TextNone.
type TextItem struct {
	Text string
	Type TextType
}

// TextResult is the list of messages shown by a text widget.
type TextResult []TextItem

// TextMessage is a result with a single plain message.
func TextMessage(text string) TextResult {
	return TextResult{{Text: text}}
}

// NormalizeText builds a "Text" payload.
func NormalizeText(result TextResult) (*Payload, error) {
	items := make([]any, 0, len(result))
	for _, it := range result {
		items = append(items, PayloadOf(
			Field{"text", it.Text},
			Field{"type", int(it.Type)},
		))
	}

	return PayloadOf(Field{"item", items}), nil
}
