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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jplu/legacyurl/weburl"
)

// newParseCommand builds "legacyurl parse".
func newParseCommand(opts *options) *cobra.Command {
	var decodeQuery, slashesDenoteHost bool
	cmd := &cobra.Command{
		Use:   "parse [URL...]",
		Short: "Print the components of each URL",
		Long: "Print the components of each URL given as argument, or of each line\n" +
			"read from standard input when no argument is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode weburl.Mode
			if decodeQuery {
				mode |= weburl.DecodeQuery
			}
			if slashesDenoteHost {
				mode |= weburl.SlashesDenoteHost
			}

			w, err := newRecordWriter(cmd.OutOrStdout(), string(opts.output))
			if err != nil {
				return err
			}
			return eachInput(cmd, args, func(s string) error {
				u := weburl.Parse(s, mode)
				opts.logger.Debug().Str("Method", "Parse").Str("input", s).Str("href", u.Href).Msg("parsed")
				return w.write(u)
			})
		},
	}
	cmd.Flags().BoolVarP(&decodeQuery, "decode-query", "q", false, "Decode the query into a key/values object")
	cmd.Flags().BoolVarP(&slashesDenoteHost, "slashes-denote-host", "s", false, "Read //host/path as a host even without a protocol")
	return cmd
}

// newNormalizeCommand builds "legacyurl normalize".
func newNormalizeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [URL...]",
		Short: "Print the canonical form of each URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return eachInput(cmd, args, func(s string) error {
				u := weburl.Parse(s, 0)
				opts.logger.Debug().Str("Method", "Normalize").Str("input", s).Str("href", u.Href).Msg("normalized")
				_, err := fmt.Fprintln(out, u.Href)
				return err
			})
		},
	}
}

// eachInput calls fn for every argument, or for every line of standard
// input when there are no arguments.
func eachInput(cmd *cobra.Command, args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "reading standard input")
}

// recordWriter writes parsed records in the selected output format.
type recordWriter struct {
	json *json.Encoder
	yaml *yaml.Encoder
}

func newRecordWriter(w io.Writer, format string) (*recordWriter, error) {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return &recordWriter{json: enc}, nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &recordWriter{yaml: enc}, nil
	}
	return nil, errors.Errorf("unsupported output format %q", format)
}

func (rw *recordWriter) write(u *weburl.URL) error {
	if rw.json != nil {
		return errors.Wrap(rw.json.Encode(u), "encoding JSON record")
	}

	// Going through JSON keeps the component order and the null markers.
	data, err := json.Marshal(u)
	if err != nil {
		return errors.Wrap(err, "encoding record")
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return errors.Wrap(err, "converting record to YAML")
	}
	blockStyle(&node)
	return errors.Wrap(rw.yaml.Encode(&node), "encoding YAML record")
}

// blockStyle drops the flow and quoting styles a JSON document decodes
// with, so that records print as plain block YAML.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// openInput opens the named file, or standard input for "" and "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	return f, nil
}
