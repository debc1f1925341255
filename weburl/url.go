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

// Package weburl parses strings into URL components and formats components
// back into strings, following the heuristics browsers and legacy URL
// libraries apply rather than a strict grammar.
//
// Parsing never fails on malformed input. Ambiguities are settled by fixed
// rules instead:
//   - backslashes before the query or fragment are read as forward slashes,
//   - the credentials end at the last '@' before the first '/', '?' or '#',
//   - an invalid hostname label ends the hostname and the rest of the host
//     moves to the path,
//   - hostnames longer than 255 characters are dropped,
//   - characters that are unsafe in URLs are percent-encoded, except for
//     protocols such as "javascript:" that need them verbatim.
//
// Format is the inverse of Parse: for well-formed input, Format(Parse(s))
// returns s, and for any input Format(Parse(Format(Parse(s)))) equals
// Format(Parse(s)).
package weburl

import "net/url"

// Field names an optional component of a URL.
type Field uint16

// Fields of a URL whose absence is distinct from the empty string.
const (
	FieldProtocol Field = 1 << iota
	FieldAuth
	FieldHost
	FieldHostname
	FieldPort
	FieldPathname
	FieldSearch
	FieldQuery
	FieldHash
	FieldPath
)

// URL is the component record produced by Parse and consumed by Format.
//
// Host is always Hostname plus ":" and Port when a port is present. Search
// and Hash keep their leading '?' and '#'. Path is Pathname followed by
// Search. Href is the canonical serialization of the whole record.
type URL struct {
	Protocol string // lower case, ends with ':'
	Slashes  bool   // "//" followed the protocol, or was implied
	Auth     string // decoded "user[:password]"
	Host     string
	Hostname string // lower case, ASCII-compatible encoded; no brackets for IPv6
	Port     string
	Pathname string
	Search   string
	Query    Query
	Hash     string
	Path     string
	Href     string

	present Field
}

// Has reports whether the component f is present. A component is present
// when the parser found it, even empty, or when it holds a non-empty value.
func (u *URL) Has(f Field) bool {
	if u.present&f != 0 {
		return true
	}
	switch f {
	case FieldProtocol:
		return u.Protocol != ""
	case FieldAuth:
		return u.Auth != ""
	case FieldHost:
		return u.Host != ""
	case FieldHostname:
		return u.Hostname != ""
	case FieldPort:
		return u.Port != ""
	case FieldPathname:
		return u.Pathname != ""
	case FieldSearch:
		return u.Search != ""
	case FieldQuery:
		return !u.Query.IsZero()
	case FieldHash:
		return u.Hash != ""
	case FieldPath:
		return u.Path != ""
	}
	return false
}

// mark records that the components in f are present.
func (u *URL) mark(f Field) { u.present |= f }

// String returns the canonical serialization of u. It is equivalent to
// Format(u) and returns the empty string for a nil URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return defaultParser.format(u)
}

// Query holds the query of a URL, either as the raw text after '?' or as a
// decoded mapping. The representation is chosen once per Parse call.
type Query struct {
	raw     string
	values  url.Values
	decoded bool
}

// RawQuery returns a Query holding the raw query text s.
func RawQuery(s string) Query {
	return Query{raw: s}
}

// DecodedQuery returns a Query holding the decoded mapping v. A nil v is
// stored as an empty mapping.
func DecodedQuery(v url.Values) Query {
	if v == nil {
		v = url.Values{}
	}
	return Query{values: v, decoded: true}
}

// IsDecoded reports whether q holds a decoded mapping.
func (q Query) IsDecoded() bool { return q.decoded }

// IsZero reports whether q holds neither raw text nor a mapping.
func (q Query) IsZero() bool { return !q.decoded && q.raw == "" }

// Raw returns the raw query text. It is empty for a decoded Query.
func (q Query) Raw() string { return q.raw }

// Values returns the decoded mapping, or nil for a raw Query.
func (q Query) Values() url.Values { return q.values }

// String returns the raw text, or the mapping encoded with the default
// query codec.
func (q Query) String() string {
	if q.decoded {
		return defaultParser.queryCodec().Encode(q.values)
	}
	return q.raw
}
