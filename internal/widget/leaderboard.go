// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

import (
	"cmp"
	"slices"
)

// LeaderboardItem is one row of a leaderboard. PreviousRank is omitted
// when zero (ranks start at 1).
type LeaderboardItem struct {
	Label        string
	Value        float64
	PreviousRank int
}

// Leaderboard is the result of a leaderboard widget. Rows are sorted by
// value, largest first unless Ascending is set. Rows with equal values
// keep their relative order.
type Leaderboard struct {
	Items     []LeaderboardItem
	Ascending bool
}

// NormalizeLeaderboard builds a "Leaderboard" payload.
func NormalizeLeaderboard(result Leaderboard) (*Payload, error) {
	rows := slices.Clone(result.Items)
	slices.SortStableFunc(rows, func(a, b LeaderboardItem) int {
		if result.Ascending {
			return cmp.Compare(a.Value, b.Value)
		}
		return cmp.Compare(b.Value, a.Value)
	})

	items := make([]any, 0, len(rows))
	for _, row := range rows {
		item := PayloadOf(
			Field{"label", row.Label},
			Field{"value", row.Value},
		)
		if row.PreviousRank != 0 {
			item.Set("previous_rank", row.PreviousRank)
		}
		items = append(items, item)
	}

	return PayloadOf(Field{"items", items}), nil
}
