// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package widget

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Payload is the canonical widget document: a string-keyed map that keeps
// insertion order when serialized to JSON. Values must be JSON-representable
// (scalars, slices, structs with json tags, or nested *Payload).
type Payload = orderedmap.OrderedMap[string, any]

// Field is a single key/value pair used to build payloads in order.
type Field struct {
	Key   string
	Value any
}

// NewPayload returns an empty payload.
func NewPayload() *Payload {
	return orderedmap.New[string, any]()
}

// PayloadOf builds a payload from fields, keeping their order. A repeated
// key keeps its first position and takes the last value.
func PayloadOf(fields ...Field) *Payload {
	p := orderedmap.New[string, any](len(fields))
	for _, f := range fields {
		p.Set(f.Key, f.Value)
	}
	return p
}

// Merge returns a new payload holding base overlaid with over. Keys of base
// come first in their original order; keys present in both take the value
// from over without moving, and keys only in over are appended. Neither
// argument is modified. Nil arguments are treated as empty.
func Merge(base, over *Payload) *Payload {
	size := 0
	if base != nil {
		size += base.Len()
	}
	if over != nil {
		size += over.Len()
	}

	merged := orderedmap.New[string, any](size)
	for _, src := range []*Payload{base, over} {
		if src == nil {
			continue
		}
		for pair := src.Oldest(); pair != nil; pair = pair.Next() {
			merged.Set(pair.Key, pair.Value)
		}
	}
	return merged
}

// Keys returns the payload keys in order.
func Keys(p *Payload) []string {
	if p == nil {
		return nil
	}
	keys := make([]string, 0, p.Len())
	for pair := p.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Ptr returns a pointer to v. It is a convenience for optional result fields.
func Ptr[T any](v T) *T {
	return &v
}

// valueItem wraps a scalar as {value: v}.
func valueItem(v any) *Payload {
	return PayloadOf(Field{"value", v})
}
