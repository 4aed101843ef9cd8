// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

// RAGItem is a value shown in one RAG column, with optional text.
type RAGItem struct {
	value   any
	text    string
	hasText bool
}

// RAGValue returns an item without text. A nil value renders as "".
func RAGValue(v any) RAGItem {
	return RAGItem{value: v}
}

// RAGText returns an item with text shown next to the value.
func RAGText(v any, text string) RAGItem {
	return RAGItem{value: v, text: text, hasText: true}
}

// RAGResult holds the red, amber and green items, in that order.
type RAGResult [3]RAGItem

// NormalizeRAG builds a "RAG Column & Numbers" payload.
func NormalizeRAG(result RAGResult) (*Payload, error) {
	items := make([]any, 0, len(result))
	for _, it := range result {
		value := it.value
		if value == nil {
			// Geckoboard shows an empty cell for "", but 0 for a number.
			value = ""
		}
		item := PayloadOf(Field{"value", value})
		if it.hasText {
			item.Set("text", it.text)
		}
		items = append(items, item)
	}

	return PayloadOf(Field{"item", items}), nil
}
