/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage // White-box tests: the parser stages and helpers are unexported.
package weburl

import (
	"errors"
	"net/url"
	"testing"
)

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

// TestParseValue checks argument coercion and rejection.
func TestParseValue(t *testing.T) {
	s := "http://example.com/"
	tests := []struct {
		name    string
		value   any
		href    string
		wantErr bool
	}{
		{"String", "http://example.com/a", "http://example.com/a", false},
		{"String pointer", &s, "http://example.com/", false},
		{"Bytes", []byte("/a?b"), "/a?b", false},
		{"Stringer", stringer{"http://x.com"}, "http://x.com/", false},
		{"Number", 42, "42", false},
		{"Nil", nil, "", true},
		{"Nil string pointer", (*string)(nil), "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := ParseValue(tc.value, 0)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ParseValue(%v) error = %v, want ErrInvalidArgument", tc.value, err)
				}
				if u != nil {
					t.Errorf("ParseValue(%v) = %+v, want nil", tc.value, u)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(%v) returned an unexpected error: %v", tc.value, err)
			}
			if u.Href != tc.href {
				t.Errorf("ParseValue(%v).Href = %q, want %q", tc.value, u.Href, tc.href)
			}
		})
	}
}

// TestFormatValue checks the accepted record shapes.
func TestFormatValue(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    string
		wantErr bool
	}{
		{"Pointer", &URL{Protocol: "http:", Hostname: "a.com", Pathname: "/"}, "http://a.com/", false},
		{"Value", URL{Protocol: "http:", Hostname: "a.com"}, "http://a.com", false},
		{
			name: "Map",
			value: map[string]any{
				"protocol": "https", "hostname": "a.com", "port": 8443.0,
				"pathname": "/p", "query": map[string]any{"b": "2", "a": []any{"1", "x"}},
			},
			want: "https://a.com:8443/p?a=1&a=x&b=2",
		},
		{
			name:  "Map with slashes and raw query",
			value: map[string]any{"protocol": "foo", "slashes": true, "host": "h", "query": "ignored"},
			want:  "foo://h",
		},
		{"String map", map[string]string{"protocol": "mailto", "auth": "me", "hostname": "x.org"}, "mailto:me@x.org", false},
		{"Nil", nil, "", true},
		{"Nil pointer", (*URL)(nil), "", true},
		{"Number", 42, "", true},
		{"String", "http://a.com", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatValue(tc.value)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("FormatValue(%v) error = %v, want ErrInvalidArgument", tc.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatValue(%v) returned an unexpected error: %v", tc.value, err)
			}
			if got != tc.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

// TestValuesFromMap checks the conversion of decoded JSON objects.
func TestValuesFromMap(t *testing.T) {
	got := valuesFromMap(map[string]any{"a": "1", "b": []any{"2", 3.0}, "c": []string{"4"}, "d": nil})
	want := url.Values{"a": {"1"}, "b": {"2", "3"}, "c": {"4"}, "d": {""}}
	if got.Encode() != want.Encode() {
		t.Errorf("valuesFromMap() = %v, want %v", got, want)
	}
}
