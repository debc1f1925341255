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
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// outputEnv names the environment variable holding the default output
// format.
const outputEnv = "LEGACYURL_OUTPUT"

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// outputFormat is the value of the --output flag.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

// Set validates and stores the output format.
func (f *outputFormat) Set(s string) error {
	if s != outputJSON && s != outputYAML {
		return errors.Errorf("unsupported output format %q (want %s or %s)", s, outputJSON, outputYAML)
	}
	*f = outputFormat(s)
	return nil
}

func (f *outputFormat) Type() string { return "format" }

// options holds the flags shared by every subcommand.
type options struct {
	output  outputFormat
	verbose bool
	logger  zerolog.Logger
}

// newRootCommand builds the legacyurl command tree.
func newRootCommand() *cobra.Command {
	opts := &options{output: outputJSON, logger: zerolog.Nop()}
	envOutput := os.Getenv(outputEnv)

	cmd := &cobra.Command{
		Use:          "legacyurl",
		Short:        "Parse and format URLs the way browsers read them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envOutput != "" && !cmd.Flags().Changed("output") {
				if err := opts.output.Set(envOutput); err != nil {
					return errors.Wrap(err, outputEnv)
				}
			}
			level := zerolog.WarnLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			opts.logger = zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger().Level(level)
			return nil
		},
	}

	cmd.PersistentFlags().VarP(&opts.output, "output", "o", "Output format of parsed records: json or yaml (env "+outputEnv+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log each processed input to stderr")

	cmd.AddCommand(
		newParseCommand(opts),
		newFormatCommand(opts),
		newNormalizeCommand(opts),
	)
	return cmd
}
