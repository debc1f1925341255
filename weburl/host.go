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
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// HostEncoder converts a hostname to its ASCII-compatible encoding. It must
// return ASCII input unchanged.
type HostEncoder interface {
	ToASCII(hostname string) string
}

// IDNAEncoder is the default HostEncoder. It puts the hostname in Unicode
// Normalization Form C and punycode-encodes the labels holding non-ASCII
// characters. No IDNA mapping or validation is applied.
type IDNAEncoder struct{}

// labelSeparators are read as '.' when splitting a hostname into labels.
var labelSeparators = strings.NewReplacer("\u3002", ".", "\uFF0E", ".", "\uFF61", ".")

// ToASCII returns the ASCII-compatible form of hostname. The ideographic
// full stops separate labels like '.'. A label the idna package refuses,
// such as a non-ASCII label already starting with "xn--", is punycode-encoded
// directly.
func (IDNAEncoder) ToASCII(hostname string) string {
	if isASCII(hostname) {
		return hostname
	}
	hostname = labelSeparators.Replace(hostname)
	if isASCII(hostname) {
		return hostname
	}
	hostname = norm.NFC.String(hostname)
	if ascii, err := idna.Punycode.ToASCII(hostname); err == nil {
		return ascii
	}

	labels := strings.Split(hostname, ".")
	for i, label := range labels {
		if isASCII(label) {
			continue
		}
		if ascii, err := idna.Punycode.ToASCII(label); err == nil {
			labels[i] = ascii
		} else {
			labels[i] = acePrefix + punycode(label)
		}
	}
	return strings.Join(labels, ".")
}

// isASCII reports whether s holds only ASCII characters.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// parseHost consumes the host, up to the first character that cannot
// appear in one, and fills in the host, hostname and port components.
func (st *parser) parseHost() {
	u := st.url
	end := strings.IndexAny(st.rest, nonHostChars)
	if end < 0 {
		end = len(st.rest)
	}
	host := st.rest[:end]
	st.rest = st.rest[end:]

	hostname, port := splitHostPort(host)
	if port != "" {
		u.Port = port
		u.mark(FieldPort)
	}

	// A bracketed hostname is an IPv6 literal and is not validated.
	ipv6 := strings.HasPrefix(hostname, "[") && strings.HasSuffix(hostname, "]")
	if !ipv6 {
		var moved string
		hostname, moved = truncateHostname(hostname)
		st.rest = moved + st.rest
	}

	if utf16Len(hostname) > hostnameMaxLen {
		hostname = ""
	} else {
		hostname = strings.ToLower(hostname)
	}
	if !ipv6 {
		hostname = st.config.hostEncoder().ToASCII(hostname)
	}

	u.Host = hostname
	if port != "" {
		u.Host += ":" + port
	}
	u.Hostname = hostname
	u.mark(FieldHost | FieldHostname)

	if ipv6 {
		if len(hostname) >= 2 {
			u.Hostname = hostname[1 : len(hostname)-1]
		}
		if !strings.HasPrefix(st.rest, "/") {
			st.rest = "/" + st.rest
		}
	}
}

// splitHostPort splits a trailing ":digits" port off host. A bare trailing
// colon is dropped without yielding a port.
func splitHostPort(host string) (hostname, port string) {
	i := len(host)
	for i > 0 && isASCIIDigit(rune(host[i-1])) {
		i--
	}
	if i == 0 || host[i-1] != ':' {
		return host, ""
	}
	return host[:i-1], host[i:]
}

// truncateHostname checks the labels of hostname. At the first invalid
// label the hostname is cut: the label's longest valid prefix is kept, and
// the rest of the label plus the following labels are returned as a path
// prefix to put back in front of the unparsed input.
//
// Labels after the first invalid one are not examined.
func truncateHostname(hostname string) (string, string) {
	labels := strings.Split(hostname, ".")
	for i, label := range labels {
		if label == "" || isValidLabel(label) || isValidLabel(asciiProbe(label)) {
			continue
		}

		kept := append([]string(nil), labels[:i]...)
		var moved []string
		if prefix, remainder, ok := splitLabel(label); ok {
			kept = append(kept, prefix)
			moved = append(moved, remainder)
		}
		moved = append(moved, labels[i+1:]...)

		var path string
		if len(moved) > 0 {
			path = "/" + strings.Join(moved, ".")
		}
		return strings.Join(kept, "."), path
	}
	return hostname, ""
}

// isValidLabel reports whether label is at most 63 characters drawn from
// the hostname label alphabet.
func isValidLabel(label string) bool {
	if len(label) > hostnameLabelMaxLen {
		return false
	}
	for i := 0; i < len(label); i++ {
		if !isHostnameLabelChar(rune(label[i])) {
			return false
		}
	}
	return true
}

// asciiProbe replaces each non-ASCII character of label with 'x', one per
// UTF-16 unit, so that internationalized labels are checked with their
// length preserved.
func asciiProbe(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r > 0xFFFF:
			b.WriteString("xx")
		case r >= utf8.RuneSelf:
			b.WriteByte('x')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitLabel splits an invalid label into its longest valid prefix, capped
// at 63 characters, and the remainder. It reports false when the remainder
// spans a line terminator, in which case no part of the label is kept.
func splitLabel(label string) (string, string, bool) {
	n := 0
	for n < len(label) && n < hostnameLabelMaxLen && isHostnameLabelChar(rune(label[n])) {
		n++
	}
	if strings.IndexFunc(label[n:], isLineTerminator) >= 0 {
		return "", "", false
	}
	return label[:n], label[n:], true
}
