// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

// LineChartLegacy is the result of the original line chart widget.
//
// XAxis and YAxis hold the axis labels, placed evenly along the axis.
// A nil axis is left out of the settings; a single label is given as a
// one element slice. Colour is "RRGGBB[TT]" and is omitted when empty.
type LineChartLegacy struct {
	Values []float64
	XAxis  []string
	YAxis  []string
	Colour string
}

// NormalizeLineChartLegacy builds a legacy "Line chart" payload.
func NormalizeLineChartLegacy(result LineChartLegacy) (*Payload, error) {
	values := result.Values
	if values == nil {
		values = []float64{}
	}

	settings := NewPayload()
	if result.XAxis != nil {
		settings.Set("axisx", result.XAxis)
	}
	if result.YAxis != nil {
		settings.Set("axisy", result.YAxis)
	}
	if result.Colour != "" {
		settings.Set("colour", result.Colour)
	}

	return PayloadOf(
		Field{"item", values},
		Field{"settings", settings},
	), nil
}

// Series is one line (or one set of bars) of a chart. Data is required;
// see https://developer.geckoboard.com/#line-chart for the optional keys.
type Series struct {
	Name           string `json:"name,omitempty"`
	Data           []any  `json:"data"`
	IncompleteFrom string `json:"incomplete_from,omitempty"`
	Type           string `json:"type,omitempty"`
}

// Axis describes an x or y axis of a chart.
type Axis struct {
	Labels []string `json:"labels,omitempty"`
	Type   string   `json:"type,omitempty"`
	Format string   `json:"format,omitempty"`
	Unit   string   `json:"unit,omitempty"`
}

// LineChart is the result of the current line chart widget.
type LineChart struct {
	Series []Series
	XAxis  *Axis
	YAxis  *Axis
}

// BarChart is the result of the bar chart widget. It shares the line
// chart contract.
type BarChart struct {
	Series []Series
	XAxis  *Axis
	YAxis  *Axis
}

// NormalizeLineChart builds a "Line chart" payload. It fails when Series is
// nil or when any series has nil Data.
func NormalizeLineChart(result LineChart) (*Payload, error) {
	return normalizeSeriesChart(KindLineChart, result.Series, result.XAxis, result.YAxis)
}

// NormalizeBarChart builds a "Bar chart" payload with the same rules as
// NormalizeLineChart.
func NormalizeBarChart(result BarChart) (*Payload, error) {
	return normalizeSeriesChart(KindBarChart, result.Series, result.XAxis, result.YAxis)
}

func normalizeSeriesChart(kind Kind, series []Series, xAxis, yAxis *Axis) (*Payload, error) {
	if series == nil {
		return nil, shapeErrorf(kind, `key "series" (list) is required`)
	}
	for i := range series {
		if series[i].Data == nil {
			return nil, shapeErrorf(kind, `series %d must contain "data" entry`, i)
		}
	}

	data := PayloadOf(Field{"series", series})
	if xAxis != nil {
		data.Set("x_axis", xAxis)
	}
	if yAxis != nil {
		data.Set("y_axis", yAxis)
	}
	return data, nil
}
