// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// SlogHandler implements slog.Handler on top of zerolog so that libraries
// which only speak slog (sutureslog) end up in the same log stream.
type SlogHandler struct {
	logger zerolog.Logger
	attrs  []groupedAttr
	groups []string
}

// groupedAttr remembers the groups open when an attribute was added.
type groupedAttr struct {
	attr   slog.Attr
	groups []string
}

// NewSlogHandler creates a slog.Handler writing to logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogHandler(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	zl := slogToZerologLevel(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// Handle writes the record as one zerolog event.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(slogToZerologLevel(record.Level))

	for _, ga := range h.attrs {
		event = addAttr(event, ga.attr, ga.groups)
	}
	record.Attrs(func(attr slog.Attr) bool {
		event = addAttr(event, attr, h.groups)
		return true
	})

	event.Msg(record.Message)
	return nil
}

// WithAttrs returns a new Handler with the given attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]groupedAttr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, groupedAttr{attr: attr, groups: h.groups})
	}
	return &next
}

// WithGroup returns a new Handler with the given group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string(nil), h.groups...), name)
	return &next
}

// addAttr adds a slog attribute to a zerolog event. Groups become dotted
// key prefixes.
func addAttr(event *zerolog.Event, attr slog.Attr, groups []string) *zerolog.Event {
	if attr.Equal(slog.Attr{}) {
		return event
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	value := attr.Value.Resolve()
	switch value.Kind() {
	case slog.KindString:
		return event.Str(key, value.String())
	case slog.KindInt64:
		return event.Int64(key, value.Int64())
	case slog.KindUint64:
		return event.Uint64(key, value.Uint64())
	case slog.KindFloat64:
		return event.Float64(key, value.Float64())
	case slog.KindBool:
		return event.Bool(key, value.Bool())
	case slog.KindDuration:
		return event.Dur(key, value.Duration())
	case slog.KindTime:
		return event.Time(key, value.Time())
	case slog.KindGroup:
		nested := append(append([]string(nil), groups...), attr.Key)
		for _, ga := range value.Group() {
			event = addAttr(event, ga, nested)
		}
		return event
	default:
		if err, ok := value.Any().(error); ok {
			return event.AnErr(key, err)
		}
		return event.Interface(key, value.Any())
	}
}

// slogToZerologLevel converts slog.Level to zerolog.Level.
func slogToZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// NewSlogLogger creates an slog.Logger backed by the global zerolog logger.
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
func NewSlogLogger() *slog.Logger {
	return slog.New(NewSlogHandler(Logger()))
}
