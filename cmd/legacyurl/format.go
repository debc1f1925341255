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
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jplu/legacyurl/weburl"
)

// newFormatCommand builds "legacyurl format".
func newFormatCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format [FILE]",
		Short: "Print the URL of each JSON component record",
		Long: "Read a stream of JSON component records, as printed by \"legacyurl parse\",\n" +
			"from FILE or standard input and print the URL each one describes.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			in, err := openInput(cmd, name)
			if err != nil {
				return err
			}
			defer in.Close()

			out := cmd.OutOrStdout()
			dec := json.NewDecoder(in)
			for n := 1; ; n++ {
				var u weburl.URL
				if err := dec.Decode(&u); err == io.EOF {
					return nil
				} else if err != nil {
					return errors.Wrapf(err, "decoding record %d", n)
				}

				href, err := weburl.Format(&u)
				if err != nil {
					return errors.Wrapf(err, "formatting record %d", n)
				}
				opts.logger.Debug().Str("Method", "Format").Int("record", n).Str("href", href).Msg("formatted")
				if _, err := fmt.Fprintln(out, href); err != nil {
					return err
				}
			}
		},
	}
}
