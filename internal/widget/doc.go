// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

// Package widget converts view results into Geckoboard custom widget payloads.
//
// Geckoboard polls a custom widget URL and expects a JSON document whose
// keys and nesting are fixed per widget type. This package holds one
// normalizer per widget type. Each normalizer takes a typed result (the
// closed set of shapes a view may return for that widget) and produces a
// Payload, an insertion-ordered map that serializes with its keys in the
// order Geckoboard documents them.
//
// # Widget Types
//
//	Number          NormalizeNumber          {item:[{value},...]}
//	RAG             NormalizeRAG             {item:[{value,text?} x3]}
//	Text            NormalizeText            {item:[{text,type}]}
//	Pie chart       NormalizePieChart        {item:[{value,label?,colour?}]}
//	Line (legacy)   NormalizeLineChartLegacy {item:[...], settings:{axisx?,axisy?,colour?}}
//	Line chart      NormalizeLineChart       {series, x_axis?, y_axis?}
//	Bar chart       NormalizeBarChart        {series, x_axis?, y_axis?}
//	Geck-O-Meter    NormalizeGeckOMeter      {item, min:{value,text?}, max:{value,text?}}
//	Funnel          NormalizeFunnel          {item:[{value,label}], type, percentage}
//	Bullet          NormalizeBullet          {item:[...], orientation}
//	Leaderboard     NormalizeLeaderboard     {items:[{label,value,previous_rank?}]}
//
// # Shapes
//
// Views that returned loosely typed tuples in other frameworks build the
// equivalent typed value here through small constructors:
//
//	widget.NumberPair(42, 40)
//	widget.RAGResult{widget.RAGValue(5), widget.RAGText(3, "pending"), widget.RAGValue(nil)}
//	widget.BulletResult{{Label: "Revenue", AxisPoints: pts, Current: widget.BulletValue(500)}}
//
// When a required part of a result is missing the normalizer returns a
// *ShapeError, which also matches ErrShape with errors.Is.
//
// # Thread Safety
//
// Normalizers are pure functions. They never modify their input and keep
// no state between calls, so they are safe for concurrent use.
package widget
