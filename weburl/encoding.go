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

package weburl

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/jplu/legacyurl/querystring"
)

const upperHex = "0123456789ABCDEF"

// writeEscapedByte writes c as a "%XX" triplet.
func writeEscapedByte(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperHex[c>>4])
	b.WriteByte(upperHex[c&0x0F])
}

// autoEscape percent-encodes every auto-escape character of s. It returns s
// unchanged when nothing needs escaping.
func autoEscape(s string) string {
	i := 0
	for i < len(s) && !isAutoEscape(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		if isAutoEscape(s[i]) {
			writeEscapedByte(&b, s[i])
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// decodeCredentials percent-decodes the auth component. Malformed escapes or
// sequences that do not decode to valid UTF-8 leave the input untouched.
func decodeCredentials(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}
	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return s
	}
	return decoded
}

// encodeCredentials escapes the auth component for output. The first
// escaped colon is restored so that "user:password" stays readable.
func encodeCredentials(s string) string {
	escaped := querystring.Escape(s)
	if i := strings.Index(escaped, "%3A"); i >= 0 {
		escaped = escaped[:i] + ":" + escaped[i+3:]
	}
	return escaped
}

// escapePathDelims encodes the '?' and '#' characters of a pathname, which
// would otherwise start a query or a fragment when re-parsed.
func escapePathDelims(pathname string) string {
	if strings.IndexAny(pathname, "?#") < 0 {
		return pathname
	}
	var b strings.Builder
	b.Grow(len(pathname) + 4)
	for i := 0; i < len(pathname); i++ {
		if c := pathname[i]; c == '?' || c == '#' {
			writeEscapedByte(&b, c)
			continue
		}
		b.WriteByte(pathname[i])
	}
	return b.String()
}
