// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

// Kind names a widget type. The value is used in log fields and metric labels.
type Kind string

// Widget kinds
const (
	KindCustom          Kind = "custom"
	KindNumber          Kind = "number"
	KindRAG             Kind = "rag"
	KindText            Kind = "text"
	KindPieChart        Kind = "pie_chart"
	KindLineChartLegacy Kind = "line_chart_legacy"
	KindLineChart       Kind = "line_chart"
	KindBarChart        Kind = "bar_chart"
	KindGeckOMeter      Kind = "geck_o_meter"
	KindFunnel          Kind = "funnel"
	KindBullet          Kind = "bullet"
	KindLeaderboard     Kind = "leaderboard"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
