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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args, feeding stdin, and returns what
// was written to standard output and standard error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// decodeRecords decodes a stream of JSON records.
func decodeRecords(t *testing.T, out string) []map[string]any {
	t.Helper()
	var records []map[string]any
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var r map[string]any
		require.NoError(t, dec.Decode(&r))
		records = append(records, r)
	}
	return records
}

func TestParseCommand(t *testing.T) {
	out, _, err := run(t, "", "parse", "http://user@example.com:8080/p?q=1#h")
	require.NoError(t, err)

	records := decodeRecords(t, out)
	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "http:", r["protocol"])
	assert.Equal(t, true, r["slashes"])
	assert.Equal(t, "user", r["auth"])
	assert.Equal(t, "example.com:8080", r["host"])
	assert.Equal(t, "example.com", r["hostname"])
	assert.Equal(t, "8080", r["port"])
	assert.Equal(t, "/p", r["pathname"])
	assert.Equal(t, "?q=1", r["search"])
	assert.Equal(t, "q=1", r["query"])
	assert.Equal(t, "#h", r["hash"])
	assert.Equal(t, "/p?q=1", r["path"])
	assert.Equal(t, "http://user@example.com:8080/p?q=1#h", r["href"])
}

func TestParseCommand_AbsentComponents(t *testing.T) {
	out, _, err := run(t, "", "parse", "/just/a/path")
	require.NoError(t, err)

	records := decodeRecords(t, out)
	require.Len(t, records, 1)
	for _, key := range []string{"protocol", "slashes", "auth", "host", "port", "hostname", "hash", "search", "query"} {
		v, ok := records[0][key]
		assert.True(t, ok, "key %q is missing", key)
		assert.Nil(t, v, "key %q", key)
	}
	assert.Equal(t, "/just/a/path", records[0]["pathname"])
}

func TestParseCommand_DecodeQuery(t *testing.T) {
	out, _, err := run(t, "", "parse", "-q", "http://a.com/?x=1;x=2")
	require.NoError(t, err)

	records := decodeRecords(t, out)
	require.Len(t, records, 1)
	assert.Equal(t, map[string]any{"x": []any{"1;x=2"}}, records[0]["query"])
	assert.Equal(t, "?x=1;x=2", records[0]["search"])
}

func TestParseCommand_SlashesDenoteHost(t *testing.T) {
	out, _, err := run(t, "", "parse", "-s", "//host.com/p")
	require.NoError(t, err)

	records := decodeRecords(t, out)
	require.Len(t, records, 1)
	assert.Equal(t, "host.com", records[0]["hostname"])
	assert.Equal(t, "/p", records[0]["pathname"])
}

func TestParseCommand_YAML(t *testing.T) {
	out, _, err := run(t, "", "parse", "-o", "yaml", "http://host.com/x")
	require.NoError(t, err)

	assert.Contains(t, out, "hostname: host.com\n")
	assert.Contains(t, out, "pathname: /x\n")
	assert.Contains(t, out, "auth: null\n")
	assert.NotContains(t, out, "{")
}

func TestParseCommand_OutputFromEnvironment(t *testing.T) {
	t.Setenv(outputEnv, "yaml")

	out, _, err := run(t, "", "parse", "http://host.com")
	require.NoError(t, err)
	assert.Contains(t, out, "hostname: host.com\n")

	out, _, err = run(t, "", "parse", "-o", "json", "http://host.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), "output %q is not JSON", out)
}

func TestParseCommand_InvalidEnvironment(t *testing.T) {
	t.Setenv(outputEnv, "xml")

	_, _, err := run(t, "", "parse", "http://host.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), outputEnv)
}

func TestParseCommand_InvalidOutput(t *testing.T) {
	_, _, err := run(t, "", "parse", "-o", "xml", "http://host.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestParseCommand_Stdin(t *testing.T) {
	out, _, err := run(t, "http://a.com\n/b?c\n", "parse")
	require.NoError(t, err)

	records := decodeRecords(t, out)
	require.Len(t, records, 2)
	assert.Equal(t, "http://a.com/", records[0]["href"])
	assert.Equal(t, "/b?c", records[1]["href"])
}

func TestParseCommand_Verbose(t *testing.T) {
	_, stderr, err := run(t, "", "parse", "-v", "http://a.com")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"parsed"`)
	assert.Contains(t, stderr, `"input":"http://a.com"`)

	_, stderr, err = run(t, "", "parse", "http://a.com")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestNormalizeCommand(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"Backslashes", []string{"normalize", `HTTP://Example.COM\path`}, "", "http://example.com/path\n"},
		{"Several arguments", []string{"normalize", "http://a@b@c/", "x.com/that's"}, "", "http://a%40b@c/\nx.com/that%27s\n"},
		{"Stdin", []string{"normalize"}, "HTTP://A.com\n  /x  \n", "http://a.com/\n/x\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestFormatCommand(t *testing.T) {
	stdin := `{"protocol":"http:","hostname":"a.com","pathname":"/x"}
{"host":"b.org","href":"ignored"}
{"protocol":"https","hostname":"c.net","port":"8443","query":{"b":["2"],"a":["1"]}}
`
	out, _, err := run(t, stdin, "format")
	require.NoError(t, err)
	assert.Equal(t, "http://a.com/x\n//b.org\nhttps://c.net:8443?a=1&b=2\n", out)
}

func TestFormatCommand_File(t *testing.T) {
	name := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(name, []byte(`{"protocol":"mailto:","auth":"me","hostname":"x.org"}`), 0o600))

	out, _, err := run(t, "", "format", name)
	require.NoError(t, err)
	assert.Equal(t, "mailto:me@x.org\n", out)

	_, _, err = run(t, "", "format", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening")
}

func TestFormatCommand_InvalidRecord(t *testing.T) {
	_, _, err := run(t, "{", "format")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding record 1")

	_, _, err = run(t, `{"href":"a"} {"query":42}`, "format")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding record 2")
}

func TestParseThenFormat(t *testing.T) {
	inputs := []string{
		"https://u:p@h.com:1/a?b#c",
		"mailto:user@example.com",
		"file:///etc/passwd",
		"http://[::1]:8080/x",
		"/relative?q",
	}

	parsed, _, err := run(t, strings.Join(inputs, "\n"), "parse")
	require.NoError(t, err)

	out, _, err := run(t, parsed, "format")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(inputs, "\n")+"\n", out)
}
