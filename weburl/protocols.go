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

// ProtocolSet is a read-only set of protocol names. Lookups are exact, so
// names are expected in lower case.
type ProtocolSet map[string]struct{}

// NewProtocolSet returns a set containing every name both with and without
// its trailing colon.
func NewProtocolSet(names ...string) ProtocolSet {
	s := make(ProtocolSet, 2*len(names))
	for _, name := range names {
		name = strings.TrimSuffix(name, ":")
		s[name] = struct{}{}
		s[name+":"] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set.
func (s ProtocolSet) Contains(name string) bool {
	if name == "" {
		return false
	}
	_, ok := s[name]
	return ok
}

var (
	// HostlessProtocols never carry a host, even when "//" follows them.
	HostlessProtocols = NewProtocolSet("javascript")
	// SlashedProtocols are written with "//" before the host.
	SlashedProtocols = NewProtocolSet("http", "https", "ftp", "gopher", "file", "ws", "wss")
	// UnsafeProtocols keep the auto-escape characters verbatim.
	UnsafeProtocols = NewProtocolSet("javascript")
)
