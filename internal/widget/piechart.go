// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

// PieSlice is one segment of a pie chart. Colour is "RRGGBB" with an
// optional two digit transparency suffix; it is passed through unchecked.
// Empty Label and Colour are omitted.
type PieSlice struct {
	Value  any
	Label  string
	Colour string
}

// PieChartResult is the list of slices of a pie chart.
type PieChartResult []PieSlice

// NormalizePieChart builds a "Pie chart" payload.
func NormalizePieChart(result PieChartResult) (*Payload, error) {
	items := make([]any, 0, len(result))
	for _, s := range result {
		item := PayloadOf(Field{"value", s.Value})
		if s.Label != "" {
			item.Set("label", s.Label)
		}
		if s.Colour != "" {
			item.Set("colour", s.Colour)
		}
		items = append(items, item)
	}

	return PayloadOf(Field{"item", items}), nil
}
