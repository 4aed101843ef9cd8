// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

// NumberItem is one entry of a number widget: either a plain value, which
// is emitted as {value: v}, or a prebuilt mapping emitted as is.
type NumberItem struct {
	value  any
	fields *Payload
}

// NumberValue returns an item that renders as {value: v}. A *Payload value
// is treated like NumberFields.
func NumberValue(v any) NumberItem {
	if p, ok := v.(*Payload); ok {
		return NumberItem{fields: p}
	}
	return NumberItem{value: v}
}

// NumberFields returns an item that is emitted verbatim.
func NumberFields(p *Payload) NumberItem {
	return NumberItem{fields: p}
}

// NumberResult holds the current value followed by the optional previous
// value and prefix, in that order.
type NumberResult []NumberItem

// NumberScalar is a result with only a current value.
func NumberScalar(current any) NumberResult {
	return NumberResult{NumberValue(current)}
}

// NumberPair is a result with current and previous values.
func NumberPair(current, previous any) NumberResult {
	return NumberResult{NumberValue(current), NumberValue(previous)}
}

// NumberTriple is a result with current value, previous value and prefix.
func NumberTriple(current, previous, prefix any) NumberResult {
	return NumberResult{NumberValue(current), NumberValue(previous), NumberValue(prefix)}
}

// NormalizeNumber builds a "Number & Secondary Stat" payload.
func NormalizeNumber(result NumberResult) (*Payload, error) {
	if len(result) == 0 || len(result) > 3 {
		return nil, shapeErrorf(KindNumber, "expected 1 to 3 items, got %d", len(result))
	}

	items := make([]any, 0, len(result))
	for _, it := range result {
		if it.fields != nil {
			items = append(items, it.fields)
			continue
		}
		items = append(items, valueItem(it.value))
	}

	return PayloadOf(Field{"item", items}), nil
}
