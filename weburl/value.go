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
	"fmt"
	"net/url"
)

// ParseValue parses v with the default Parser after converting it to a
// string. Strings, byte slices and fmt.Stringer values are used as is;
// other values go through fmt.Sprint. It fails with an error wrapping
// ErrInvalidArgument when v is nil or a nil *string.
func ParseValue(v any, mode Mode) (*URL, error) {
	var s string
	switch x := v.(type) {
	case nil:
		return nil, newArgumentError("ParseValue", nil)
	case string:
		s = x
	case *string:
		if x == nil {
			return nil, newArgumentError("ParseValue", nil)
		}
		s = *x
	case []byte:
		s = string(x)
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}
	return defaultParser.Parse(s, mode), nil
}

// FormatValue serializes v with the default Parser. v may be a *URL, a URL
// or a map keyed by component name ("protocol", "slashes", "auth", "host",
// "hostname", "port", "pathname", "search", "query", "hash"), such as a
// decoded JSON object. Any other value fails with an error wrapping
// ErrInvalidArgument.
func FormatValue(v any) (string, error) {
	switch x := v.(type) {
	case *URL:
		if x == nil {
			return "", newArgumentError("FormatValue", nil)
		}
		return defaultParser.format(x), nil
	case URL:
		return defaultParser.format(&x), nil
	case map[string]any:
		return defaultParser.format(urlFromMap(x)), nil
	case map[string]string:
		m := make(map[string]any, len(x))
		for k, s := range x {
			m[k] = s
		}
		return defaultParser.format(urlFromMap(m)), nil
	}
	return "", newArgumentError("FormatValue", v)
}

// urlFromMap builds a record from a component map. Values that are not
// strings are converted with fmt.Sprint; "slashes" is set by any truthy
// value.
func urlFromMap(m map[string]any) *URL {
	u := &URL{
		Protocol: stringValue(m["protocol"]),
		Auth:     stringValue(m["auth"]),
		Host:     stringValue(m["host"]),
		Hostname: stringValue(m["hostname"]),
		Port:     stringValue(m["port"]),
		Pathname: stringValue(m["pathname"]),
		Search:   stringValue(m["search"]),
		Hash:     stringValue(m["hash"]),
		Path:     stringValue(m["path"]),
		Href:     stringValue(m["href"]),
		Slashes:  truthy(m["slashes"]),
	}
	switch q := m["query"].(type) {
	case nil:
	case url.Values:
		u.Query = DecodedQuery(q)
	case map[string][]string:
		u.Query = DecodedQuery(q)
	case map[string]any:
		u.Query = DecodedQuery(valuesFromMap(q))
	default:
		u.Query = RawQuery(stringValue(q))
	}
	return u
}

// valuesFromMap converts a decoded JSON object into a query mapping. Array
// values contribute one value per element.
func valuesFromMap(m map[string]any) url.Values {
	values := make(url.Values, len(m))
	for k, raw := range m {
		switch v := raw.(type) {
		case []any:
			values[k] = make([]string, 0, len(v))
			for _, e := range v {
				values[k] = append(values[k], stringValue(e))
			}
		case []string:
			values[k] = append([]string(nil), v...)
		default:
			values[k] = []string{stringValue(v)}
		}
	}
	return values
}

func stringValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	}
	return fmt.Sprint(v)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	case int:
		return x != 0
	}
	return true
}
