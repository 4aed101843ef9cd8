// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Bullet orientations
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

// BulletMeasure is a value range drawn on a bullet chart.
type BulletMeasure struct {
	Start float64
	End   float64
}

// BulletValue expands a single value v to the range [0, v].
func BulletValue(v float64) *BulletMeasure {
	return &BulletMeasure{Start: 0, End: v}
}

// BulletSpan returns the range [start, end].
func BulletSpan(start, end float64) *BulletMeasure {
	return &BulletMeasure{Start: start, End: end}
}

// BulletRange is a coloured performance band.
type BulletRange struct {
	Color string  `json:"color"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Bullet is one bullet chart.
//
// Label, AxisPoints and Current are required. An empty Label counts as
// missing, as does a nil AxisPoints; an empty AxisPoints is accepted. When
// Range is empty, red, amber and green bands are derived from the axis
// points. Unless DisableAutoScale is set, axis points, current, projected
// and comparative are scaled down by thousands, millions or billions when
// the largest axis point is at least 1000, and the sublabel records the
// scale. Range bands, given or derived, are never scaled and stay in the
// original units.
type Bullet struct {
	Label            string
	Sublabel         string
	AxisPoints       []float64
	Current          *BulletMeasure
	Projected        *BulletMeasure
	Comparative      *float64
	Range            []BulletRange
	Orientation      string
	DisableAutoScale bool
}

// BulletResult holds one or more bullet charts.
type BulletResult []Bullet

type bulletScale struct {
	factor float64
	name   string
}

// bulletScales are checked largest first.
var bulletScales = []bulletScale{
	{factor: 1e9, name: "billions"},
	{factor: 1e6, name: "millions"},
	{factor: 1e3, name: "thousands"},
}

// NormalizeBullet builds a "Bullet graph" payload. The orientation of the
// last bullet applies to the whole widget.
func NormalizeBullet(result BulletResult) (*Payload, error) {
	if len(result) == 0 {
		return nil, shapeErrorf(KindBullet, "at least one bullet is required")
	}

	items := make([]any, 0, len(result))
	for i := range result {
		item, err := normalizeBulletItem(&result[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	orientation := result[len(result)-1].Orientation
	if orientation == "" {
		orientation = OrientationHorizontal
	}

	return PayloadOf(
		Field{"item", items},
		Field{"orientation", orientation},
	), nil
}

func normalizeBulletItem(b *Bullet) (*Payload, error) {
	switch {
	case b.Label == "":
		return nil, shapeErrorf(KindBullet, "key label is required")
	case b.AxisPoints == nil:
		return nil, shapeErrorf(KindBullet, "key axis_points is required")
	case b.Current == nil:
		return nil, shapeErrorf(KindBullet, "key current is required")
	}

	ranges := b.Range
	if len(ranges) == 0 {
		ranges = defaultBulletRanges(b.AxisPoints)
	}

	points := slices.Clone(b.AxisPoints)
	current := *b.Current
	var projected *BulletMeasure
	if b.Projected != nil {
		p := *b.Projected
		projected = &p
	}
	var comparative *float64
	if b.Comparative != nil {
		c := *b.Comparative
		comparative = &c
	}
	sublabel := b.Sublabel

	if !b.DisableAutoScale && len(points) > 0 {
		if scale, ok := scaleFor(slices.Max(points)); ok {
			for i, v := range points {
				points[i] = scaled(v, scale.factor)
			}
			current = scaledMeasure(current, scale.factor)
			if projected != nil {
				*projected = scaledMeasure(*projected, scale.factor)
			}
			if comparative != nil {
				*comparative = scaled(*comparative, scale.factor)
			}
			if sublabel != "" {
				sublabel = fmt.Sprintf("%s (%s)", sublabel, scale.name)
			} else {
				sublabel = strings.ToUpper(scale.name[:1]) + scale.name[1:]
			}
		}
	}

	measure := PayloadOf(Field{"current", measurePayload(current)})
	if projected != nil {
		measure.Set("projected", measurePayload(*projected))
	}

	item := PayloadOf(
		Field{"label", b.Label},
		Field{"axis", PayloadOf(Field{"point", points})},
		Field{"range", ranges},
		Field{"measure", measure},
	)
	if comparative != nil {
		item.Set("comparative", PayloadOf(Field{"point", *comparative}))
	}
	if sublabel != "" {
		item.Set("sublabel", sublabel)
	}
	return item, nil
}

// defaultBulletRanges splits [min, max] of the axis points into thirds:
// red is the lowest, amber the middle and green the highest.
func defaultBulletRanges(points []float64) []BulletRange {
	if len(points) == 0 {
		return []BulletRange{
			{Color: "red", Start: 0, End: 0},
			{Color: "amber", Start: 0, End: 0},
			{Color: "green", Start: 0, End: 0},
		}
	}

	lo, hi := slices.Min(points), slices.Max(points)
	third := (hi - lo) / 3
	return []BulletRange{
		{Color: "red", Start: lo, End: lo + third - 1},
		{Color: "amber", Start: lo + third, End: hi - third - 1},
		{Color: "green", Start: hi - third, End: hi},
	}
}

func scaleFor(maxPoint float64) (bulletScale, bool) {
	for _, s := range bulletScales {
		if maxPoint >= s.factor {
			return s, true
		}
	}
	return bulletScale{}, false
}

// scaled divides v by factor and rounds to two decimals the way "%.2f" does.
func scaled(v, factor float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v/factor, 'f', 2, 64), 64)
	if err != nil {
		return v / factor
	}
	return rounded
}

func scaledMeasure(m BulletMeasure, factor float64) BulletMeasure {
	return BulletMeasure{Start: scaled(m.Start, factor), End: scaled(m.End, factor)}
}

func measurePayload(m BulletMeasure) *Payload {
	return PayloadOf(
		Field{"start", m.Start},
		Field{"end", m.End},
	)
}
