// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package render

import (
	"errors"
	"testing"

	"github.com/tomtom215/geckofeed/internal/encryption"
	"github.com/tomtom215/geckofeed/internal/widget"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload *widget.Payload
		want    string
	}{
		{name: "nil payload", payload: nil, want: `{}`},
		{name: "empty payload", payload: widget.NewPayload(), want: `{}`},
		{
			name: "order preserved",
			payload: widget.PayloadOf(
				widget.Field{Key: "zeta", Value: 1},
				widget.Field{Key: "alpha", Value: []any{"a", nil}},
				widget.Field{Key: "nested", Value: widget.PayloadOf(widget.Field{Key: "b", Value: true}, widget.Field{Key: "a", Value: 2.5})},
			),
			want: `{"zeta":1,"alpha":["a",null],"nested":{"b":true,"a":2.5}}`,
		},
		{
			name:    "utf-8 text",
			payload: widget.PayloadOf(widget.Field{Key: "text", Value: "Café €"}),
			want:    `{"text":"Café €"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			body, contentType, err := JSON(tt.payload)
			if err != nil {
				t.Fatalf("JSON() error = %v", err)
			}
			if contentType != ContentTypeJSON {
				t.Errorf("content type = %q, want %q", contentType, ContentTypeJSON)
			}
			if string(body) != tt.want {
				t.Errorf("JSON() = %s, want %s", body, tt.want)
			}
		})
	}
}

func TestJSON_UnsupportedValue(t *testing.T) {
	t.Parallel()

	_, _, err := JSON(widget.PayloadOf(widget.Field{Key: "fn", Value: func() {}}))
	if err == nil {
		t.Error("JSON() should fail for a function value")
	}
}

func TestEncrypted(t *testing.T) {
	t.Parallel()

	body := []byte(`{"item":[{"value":1}]}`)
	out, err := Encrypted(body, "widget-password")
	if !encryption.Available {
		if !errors.Is(err, encryption.ErrUnavailable) {
			t.Errorf("Encrypted() error = %v, want ErrUnavailable", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("Encrypted() error = %v", err)
	}

	plain, err := encryption.Decrypt(string(out), "widget-password")
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if string(plain) != string(body) {
		t.Errorf("round trip = %s, want %s", plain, body)
	}
}

func TestEncrypted_NoPassphrase(t *testing.T) {
	t.Parallel()

	_, err := Encrypted([]byte(`{}`), "")
	if encryption.Available && !errors.Is(err, encryption.ErrNoPassphrase) {
		t.Errorf("Encrypted() error = %v, want ErrNoPassphrase", err)
	}
	if err == nil {
		t.Error("Encrypted() should fail without a passphrase")
	}
}
