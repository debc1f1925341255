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

import "strings"

// Format serializes u using the default Parser. It fails with an error
// wrapping ErrInvalidArgument when u is nil.
func Format(u *URL) (string, error) {
	return defaultParser.Format(u)
}

// Format serializes u. Components may be missing or empty; u is not
// modified. It fails with an error wrapping ErrInvalidArgument when u is nil.
func (p *Parser) Format(u *URL) (string, error) {
	if u == nil {
		return "", newArgumentError("Format", nil)
	}
	return p.format(u), nil
}

// format is Format without the nil check.
func (p *Parser) format(u *URL) string {
	auth := u.Auth
	if auth != "" {
		auth = encodeCredentials(auth) + "@"
	}

	host, hasHost := formatHost(u)
	if hasHost {
		host = auth + host
	}

	search := u.Search
	if search == "" && u.Query.IsDecoded() && len(u.Query.Values()) > 0 {
		if query := p.queryCodec().Encode(u.Query.Values()); query != "" {
			search = "?" + query
		}
	}

	protocol := u.Protocol
	if protocol != "" && !strings.HasSuffix(protocol, ":") {
		protocol += ":"
	}

	// Only slashed protocols get the "//", unless the record had it.
	pathname := u.Pathname
	if u.Slashes || ((protocol == "" || p.slashed().Contains(protocol)) && hasHost) {
		host = "//" + host
		if pathname != "" && pathname[0] != '/' {
			pathname = "/" + pathname
		}
	}

	hash := u.Hash
	if hash != "" && hash[0] != '#' {
		hash = "#" + hash
	}
	if search != "" && search[0] != '?' {
		search = "?" + search
	}

	pathname = escapePathDelims(pathname)
	search = strings.Replace(search, "#", "%23", 1)

	var b strings.Builder
	b.Grow(len(protocol) + len(host) + len(pathname) + len(search) + len(hash))
	b.WriteString(protocol)
	b.WriteString(host)
	b.WriteString(pathname)
	b.WriteString(search)
	b.WriteString(hash)
	return b.String()
}

// formatHost returns the host to serialize and whether there is one. A
// stored Host is only trusted when it agrees with Hostname and Port, or
// when there is no Hostname to rebuild it from.
func formatHost(u *URL) (string, bool) {
	if u.Hostname == "" {
		return u.Host, u.Host != ""
	}
	var port string
	if u.Port != "" {
		port = ":" + u.Port
	}
	// Brackets survive for IPv6 literals without a colon, such as "[v1.x]".
	if u.Host == "["+u.Hostname+"]"+port {
		return u.Host, true
	}
	return joinHostPort(u.Hostname, u.Port), true
}

// joinHostPort composes a host from a hostname, bracketed when it holds a
// colon, and an optional port.
func joinHostPort(hostname, port string) string {
	if strings.IndexByte(hostname, ':') >= 0 {
		hostname = "[" + hostname + "]"
	}
	if port != "" {
		return hostname + ":" + port
	}
	return hostname
}
