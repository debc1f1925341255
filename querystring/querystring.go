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

// Package querystring implements the query-string codec used by the weburl
// package: decoding a raw query into a key mapping and encoding a mapping
// back into a query string.
//
// Decoding is lenient. It never fails: malformed percent-escapes are kept
// verbatim and byte sequences that do not form valid UTF-8 are replaced
// with U+FFFD. Encoding is deterministic: keys are emitted in sorted order
// and the values of a key in the order they were added.
package querystring

import (
	"net/url"
	"sort"
	"strings"
)

// MaxKeys is the maximum number of pairs read by Decode. Pairs past this
// limit are ignored.
const MaxKeys = 1000

// Codec is the default query codec. Its zero value is ready to use.
type Codec struct{}

// Decode implements the decoding half of the codec. See Decode.
func (Codec) Decode(s string) url.Values { return Decode(s) }

// Encode implements the encoding half of the codec. See Encode.
func (Codec) Encode(v url.Values) string { return Encode(v) }

// Decode parses a query string (without the leading '?') into a mapping.
// Pairs are separated by '&'; the first '=' of a pair separates the key from
// the value, and a pair without '=' has an empty value. A '+' stands for a
// space. Empty pairs are skipped and repeated keys accumulate their values.
func Decode(s string) url.Values {
	values := make(url.Values)
	if s == "" {
		return values
	}

	for n := 0; s != "" && n < MaxKeys; n++ {
		var pair string
		pair, s, _ = strings.Cut(s, "&")
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescapeForm(key)
		values[key] = append(values[key], unescapeForm(value))
	}
	return values
}

// Encode serializes the mapping into a query string. Keys are sorted; a key
// holding no value is written as "key=".
func Encode(v url.Values) string {
	if len(v) == 0 {
		return ""
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		ek := Escape(k)
		vs := v[k]
		if len(vs) == 0 {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(ek)
			b.WriteByte('=')
			continue
		}
		for _, value := range vs {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(ek)
			b.WriteByte('=')
			b.WriteString(Escape(value))
		}
	}
	return b.String()
}

// unescapeForm turns '+' into a space before percent-decoding.
func unescapeForm(s string) string {
	if strings.IndexByte(s, '+') >= 0 {
		s = strings.ReplaceAll(s, "+", " ")
	}
	return Unescape(s)
}
