// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

import (
	"slices"
	"strings"
)

// Funnel types and percentage modes
const (
	FunnelStandard = "standard"
	FunnelReverse  = "reverse"

	PercentageShow = "show"
	PercentageHide = "hide"
)

// FunnelItem is one stage of a funnel.
type FunnelItem struct {
	Value float64
	Label string
}

// Funnel is the result of a funnel widget.
//
// Type is FunnelStandard (default) or FunnelReverse and sets the order of
// the colours. Percentage is PercentageShow (default) or PercentageHide.
// When Sort is set the stages are ordered by value, largest first.
type Funnel struct {
	Items      []FunnelItem
	Type       string
	Percentage string
	Sort       bool
}

// NormalizeFunnel builds a "Funnel" payload. Items is required; the input
// slice is never reordered in place.
func NormalizeFunnel(result Funnel) (*Payload, error) {
	if result.Items == nil {
		return nil, shapeErrorf(KindFunnel, `key "items" is required`)
	}

	stages := result.Items
	if result.Sort {
		stages = slices.Clone(result.Items)
		// Descending by value, then by label, like a reversed tuple sort.
		slices.SortStableFunc(stages, func(a, b FunnelItem) int {
			switch {
			case a.Value > b.Value:
				return -1
			case a.Value < b.Value:
				return 1
			}
			return -strings.Compare(a.Label, b.Label)
		})
	}

	items := make([]any, 0, len(stages))
	for _, s := range stages {
		items = append(items, PayloadOf(
			Field{"value", s.Value},
			Field{"label", s.Label},
		))
	}

	funnelType := result.Type
	if funnelType == "" {
		funnelType = FunnelStandard
	}
	percentage := result.Percentage
	if percentage == "" {
		percentage = PercentageShow
	}

	return PayloadOf(
		Field{"item", items},
		Field{"type", funnelType},
		Field{"percentage", percentage},
	), nil
}
