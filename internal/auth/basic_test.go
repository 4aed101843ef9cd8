// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package auth

import (
	"encoding/base64"
	"testing"
)

func TestParseBasicCredentials(t *testing.T) {
	t.Parallel()

	encode := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name         string
		header       string
		wantUsername string
		wantPassword string
		wantErr      bool
	}{
		{name: "standard", header: "Basic " + encode("key:X"), wantUsername: "key", wantPassword: "X"},
		{name: "lowercase scheme", header: "basic " + encode("key:X"), wantUsername: "key", wantPassword: "X"},
		{name: "password with colon", header: "Basic " + encode("key:a:b"), wantUsername: "key", wantPassword: "a:b"},
		{name: "empty password", header: "Basic " + encode("key:"), wantUsername: "key", wantPassword: ""},
		{name: "no scheme", header: encode("key:X"), wantErr: true},
		{name: "digest scheme", header: "Digest " + encode("key:X"), wantErr: true},
		{name: "bad base64", header: "Basic %%%", wantErr: true},
		{name: "no separator", header: "Basic " + encode("keyX"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			username, password, err := parseBasicCredentials(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBasicCredentials() error = %v, wantErr %v", err, tt.wantErr)
			}
			if username != tt.wantUsername || password != tt.wantPassword {
				t.Errorf("parseBasicCredentials() = %q, %q, want %q, %q", username, password, tt.wantUsername, tt.wantPassword)
			}
		})
	}
}

func TestMatchAPIKey(t *testing.T) {
	t.Parallel()

	if !matchAPIKey("k", "k", "X") {
		t.Error("matchAPIKey(k, k, X) = false")
	}
	if matchAPIKey("k", "k", "") {
		t.Error("matchAPIKey(k, k, \"\") = true")
	}
	if matchAPIKey("k", "", "X") {
		t.Error("matchAPIKey(k, \"\", X) = true")
	}
}
