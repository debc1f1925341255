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
	"strings"
	"unicode"
)

const (
	// hostnameMaxLen is the longest hostname kept by the parser, in UTF-16
	// units. Longer hostnames are discarded, not truncated.
	hostnameMaxLen = 255
	// hostnameLabelMaxLen is the longest hostname label accepted as-is.
	hostnameLabelMaxLen = 63
)

// autoEscapeChars are percent-encoded wherever they appear after the host,
// unless the protocol is unsafe.
const autoEscapeChars = "'{}|\\^`<>\" \r\n\t"

// hostEndingChars bound the region in which the credential '@' may appear.
const hostEndingChars = "/?#"

// nonHostChars end the host. Any other invalid character is caught later by
// label validation.
const nonHostChars = "%/?;#" + autoEscapeChars

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSchemeChar reports whether r may appear in a protocol token.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '.' || r == '+' || r == '-'
}

// isHostnameLabelChar reports whether r may appear in a hostname label.
// The set is wider than LDH: '+' and '_' are accepted.
func isHostnameLabelChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '_' || r == '-'
}

// isAutoEscape reports whether the byte c is escaped for safe protocols.
func isAutoEscape(c byte) bool {
	return strings.IndexByte(autoEscapeChars, c) >= 0
}

// isSpace matches the white space recognised by the trimming and fast-path
// steps: Unicode white space plus the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// isLineTerminator reports whether r ends a line. Such characters stop the
// "remainder" capture of an invalid hostname label.
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// utf16Len returns the length of s counted in UTF-16 code units, the unit in
// which hostname and label limits are expressed.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}
