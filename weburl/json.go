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
	"encoding/json"
	"net/url"
)

// urlJSON is the JSON layout of a URL. Absent components are null.
type urlJSON struct {
	Protocol *string `json:"protocol"`
	Slashes  *bool   `json:"slashes"`
	Auth     *string `json:"auth"`
	Host     *string `json:"host"`
	Port     *string `json:"port"`
	Hostname *string `json:"hostname"`
	Hash     *string `json:"hash"`
	Search   *string `json:"search"`
	Query    any     `json:"query"`
	Pathname *string `json:"pathname"`
	Path     *string `json:"path"`
	Href     string  `json:"href"`
}

// MarshalJSON implements the json.Marshaler interface. The query is a
// string, or an object of string arrays when it was decoded.
func (u *URL) MarshalJSON() ([]byte, error) {
	opt := func(f Field, s string) *string {
		if !u.Has(f) {
			return nil
		}
		return &s
	}
	out := urlJSON{
		Protocol: opt(FieldProtocol, u.Protocol),
		Auth:     opt(FieldAuth, u.Auth),
		Host:     opt(FieldHost, u.Host),
		Port:     opt(FieldPort, u.Port),
		Hostname: opt(FieldHostname, u.Hostname),
		Hash:     opt(FieldHash, u.Hash),
		Search:   opt(FieldSearch, u.Search),
		Pathname: opt(FieldPathname, u.Pathname),
		Path:     opt(FieldPath, u.Path),
		Href:     u.Href,
	}
	if u.Slashes {
		out.Slashes = &u.Slashes
	}
	switch {
	case u.Query.IsDecoded():
		out.Query = u.Query.Values()
	case u.Has(FieldQuery):
		out.Query = u.Query.Raw()
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements the json.Unmarshaler interface. Components that
// are null or missing are absent; a query object becomes a decoded Query.
func (u *URL) UnmarshalJSON(data []byte) error {
	var in struct {
		urlJSON
		Query json.RawMessage `json:"query"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var out URL
	set := func(f Field, dst *string, src *string) {
		if src != nil {
			*dst = *src
			out.mark(f)
		}
	}
	set(FieldProtocol, &out.Protocol, in.Protocol)
	set(FieldAuth, &out.Auth, in.Auth)
	set(FieldHost, &out.Host, in.Host)
	set(FieldPort, &out.Port, in.Port)
	set(FieldHostname, &out.Hostname, in.Hostname)
	set(FieldHash, &out.Hash, in.Hash)
	set(FieldSearch, &out.Search, in.Search)
	set(FieldPathname, &out.Pathname, in.Pathname)
	set(FieldPath, &out.Path, in.Path)
	out.Href = in.Href
	out.Slashes = in.Slashes != nil && *in.Slashes

	query, err := unmarshalQuery(in.Query)
	if err != nil {
		return err
	}
	if query != nil {
		out.Query = *query
		out.mark(FieldQuery)
	}

	*u = out
	return nil
}

// unmarshalQuery decodes a JSON query that is null, a string, or an object
// whose values are strings or arrays of strings.
func unmarshalQuery(data json.RawMessage) (*Query, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		q := RawQuery(raw)
		return &q, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	values := make(url.Values, len(fields))
	for k, field := range fields {
		var one string
		if err := json.Unmarshal(field, &one); err == nil {
			values[k] = []string{one}
			continue
		}
		var many []string
		if err := json.Unmarshal(field, &many); err != nil {
			return nil, err
		}
		values[k] = many
	}
	q := DecodedQuery(values)
	return &q, nil
}
