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

	"github.com/jplu/legacyurl/querystring"
)

// Mode controls optional parsing behavior. Modes can be combined.
type Mode uint

const (
	// DecodeQuery stores the query as a decoded mapping instead of raw text.
	// The search component is then always present, possibly empty.
	DecodeQuery Mode = 1 << iota
	// SlashesDenoteHost reads "//host/path" as a host even when the input
	// has no protocol.
	SlashesDenoteHost
)

// QueryCodec converts between raw query text and a decoded mapping.
// Encode must be deterministic for identical input.
type QueryCodec interface {
	Decode(s string) url.Values
	Encode(v url.Values) string
}

// Parser holds the lookup tables and collaborators used to parse and format
// URLs. A nil field uses the package default. The zero value is ready to
// use, and a Parser may be used concurrently once configured.
type Parser struct {
	// Hostless lists protocols that never carry a host.
	Hostless ProtocolSet
	// Slashed lists protocols that are written with "//" before the host.
	Slashed ProtocolSet
	// Unsafe lists protocols whose content is never auto-escaped.
	Unsafe ProtocolSet
	// Query decodes and encodes the query component.
	Query QueryCodec
	// Hosts converts hostnames to their ASCII-compatible form.
	Hosts HostEncoder
}

var defaultParser = &Parser{}

func (p *Parser) hostless() ProtocolSet {
	if p.Hostless != nil {
		return p.Hostless
	}
	return HostlessProtocols
}

func (p *Parser) slashed() ProtocolSet {
	if p.Slashed != nil {
		return p.Slashed
	}
	return SlashedProtocols
}

func (p *Parser) unsafe() ProtocolSet {
	if p.Unsafe != nil {
		return p.Unsafe
	}
	return UnsafeProtocols
}

func (p *Parser) queryCodec() QueryCodec {
	if p.Query != nil {
		return p.Query
	}
	return querystring.Codec{}
}

func (p *Parser) hostEncoder() HostEncoder {
	if p.Hosts != nil {
		return p.Hosts
	}
	return IDNAEncoder{}
}

// Parse splits s into its URL components using the default Parser.
func Parse(s string, mode Mode) *URL {
	return defaultParser.Parse(s, mode)
}

// Parse splits s into its URL components. It never fails: malformed input
// is resolved into the closest reasonable record.
func (p *Parser) Parse(s string, mode Mode) *URL {
	st := &parser{config: p, mode: mode, url: &URL{}}

	normalized := normalizeBackslashes(s)
	st.rest = strings.TrimFunc(normalized, isSpace)

	if mode&SlashesDenoteHost == 0 && strings.IndexByte(normalized, '#') < 0 && st.parseSimplePath() {
		return st.url
	}

	st.parseProtocol()
	st.parseSlashes()
	if st.hasHost() {
		st.parseAuth()
		st.parseHost()
	}
	st.parsePath()

	st.url.Href = p.format(st.url)
	return st.url
}

// parser carries the state of a single Parse call: the record being built
// and the part of the input not consumed yet.
type parser struct {
	config *Parser
	mode   Mode
	url    *URL
	rest   string

	// proto is the protocol token as written, used for the hostless and
	// slashed lookups. lowerProto is its lower-case form.
	proto      string
	lowerProto string
	slashes    bool
}

// normalizeBackslashes turns the backslashes found before the query or
// fragment into forward slashes. The split point is the first '?' when it
// precedes the first '#', and the first '#' otherwise.
func normalizeBackslashes(s string) string {
	split := strings.IndexByte(s, '#')
	if q := strings.IndexByte(s, '?'); q >= 0 && q < split {
		split = q
	}
	if split < 0 {
		split = len(s)
	}
	if strings.IndexByte(s[:split], '\\') < 0 {
		return s
	}
	return strings.ReplaceAll(s[:split], "\\", "/") + s[split:]
}

// parseSimplePath handles inputs made of a path and an optional query, the
// most common relative form. It reports false, leaving the record untouched,
// when the input needs the full pipeline: more than two leading slashes,
// white space, characters that must be escaped, or a "//user@host" prefix.
func (st *parser) parseSimplePath() bool {
	rest := st.rest
	if rest == "" || rest[0] != '/' {
		return false
	}
	start := 1
	if len(rest) > 1 && rest[1] == '/' {
		start = 2
		if hasImpliedCredentials(rest) {
			return false
		}
	}
	if start < len(rest) && rest[start] == '/' {
		return false
	}

	end := len(rest)
	for i, r := range rest[start:] {
		if r == '?' || isSpace(r) {
			end = start + i
			break
		}
	}
	pathname, tail := rest[:end], rest[end:]
	if tail != "" && tail[0] != '?' {
		return false
	}
	if strings.IndexFunc(tail, isSpace) >= 0 || strings.IndexAny(rest, autoEscapeChars) >= 0 {
		return false
	}

	u := st.url
	u.Path, u.Href, u.Pathname = rest, rest, pathname
	u.mark(FieldPath | FieldPathname)
	if tail != "" {
		u.Search = tail
		u.Query = st.newQuery(tail[1:])
		u.mark(FieldSearch | FieldQuery)
	} else if st.mode&DecodeQuery != 0 {
		u.Search = ""
		u.Query = DecodedQuery(url.Values{})
		u.mark(FieldSearch | FieldQuery)
	}
	return true
}

// newQuery wraps the raw query text s in the representation selected by the
// parse mode.
func (st *parser) newQuery(s string) Query {
	if st.mode&DecodeQuery != 0 {
		return DecodedQuery(st.config.queryCodec().Decode(s))
	}
	return RawQuery(s)
}

// parseProtocol consumes a leading "scheme:" token.
func (st *parser) parseProtocol() {
	i := 0
	for i < len(st.rest) && isSchemeChar(rune(st.rest[i])) {
		i++
	}
	if i == 0 || i == len(st.rest) || st.rest[i] != ':' {
		return
	}
	st.proto = st.rest[:i+1]
	st.lowerProto = strings.ToLower(st.proto)
	st.url.Protocol = st.lowerProto
	st.url.mark(FieldProtocol)
	st.rest = st.rest[i+1:]
}

// parseSlashes consumes the "//" introducing a host. A "user@host" prefix
// counts as a host even without a protocol.
func (st *parser) parseSlashes() {
	if st.mode&SlashesDenoteHost == 0 && st.proto == "" && !hasImpliedCredentials(st.rest) {
		return
	}
	st.slashes = strings.HasPrefix(st.rest, "//")
	if st.slashes && !st.config.hostless().Contains(st.proto) {
		st.rest = st.rest[2:]
		st.url.Slashes = true
	}
}

// hasImpliedCredentials reports whether s starts with "//user@host".
func hasImpliedCredentials(s string) bool {
	if !strings.HasPrefix(s, "//") {
		return false
	}
	s = s[2:]
	i := strings.IndexAny(s, "@/")
	if i <= 0 || s[i] != '@' {
		return false
	}
	s = s[i+1:]
	return s != "" && s[0] != '@' && s[0] != '/'
}

// hasHost reports whether a host section follows: the protocol must not be
// hostless, and either "//" was present or the protocol is one that does
// not use slashes.
func (st *parser) hasHost() bool {
	if st.config.hostless().Contains(st.proto) {
		return false
	}
	return st.slashes || (st.proto != "" && !st.config.slashed().Contains(st.proto))
}

// parseAuth consumes the credentials. They end at the last '@' before the
// first '/', '?' or '#', or at the last '@' when none of those occur:
//
//	http://a@b@c/   auth "a@b", host "c"
//	http://a@b?@c   auth "a", host "b", search "?@c"
func (st *parser) parseAuth() {
	var at int
	if hostEnd := strings.IndexAny(st.rest, hostEndingChars); hostEnd >= 0 {
		at = strings.LastIndexByte(st.rest[:hostEnd], '@')
	} else {
		at = strings.LastIndexByte(st.rest, '@')
	}
	if at < 0 {
		return
	}
	st.url.Auth = decodeCredentials(st.rest[:at])
	st.url.mark(FieldAuth)
	st.rest = st.rest[at+1:]
}

// parsePath escapes what follows the host and splits it into the pathname,
// search and hash components.
func (st *parser) parsePath() {
	u := st.url
	rest := st.rest
	if !st.config.unsafe().Contains(st.lowerProto) {
		rest = autoEscape(rest)
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		u.Hash = rest[i:]
		u.mark(FieldHash)
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		u.Search = rest[i:]
		u.Query = st.newQuery(rest[i+1:])
		u.mark(FieldSearch | FieldQuery)
		rest = rest[:i]
	} else if st.mode&DecodeQuery != 0 {
		u.Search = ""
		u.Query = DecodedQuery(url.Values{})
		u.mark(FieldSearch | FieldQuery)
	}
	if rest != "" {
		u.Pathname = rest
		u.mark(FieldPathname)
	}
	if st.config.slashed().Contains(st.lowerProto) && u.Hostname != "" && u.Pathname == "" {
		u.Pathname = "/"
		u.mark(FieldPathname)
	}
	if u.Pathname != "" || u.Search != "" {
		u.Path = u.Pathname + u.Search
		u.mark(FieldPath)
	}
	st.rest = ""
}
