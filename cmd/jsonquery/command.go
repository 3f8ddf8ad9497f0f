package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nautilus/jsonquery"
)

const envPrefix = "JSONQUERY"

// newRootCommand builds the command line. Options come from flags, JSONQUERY_*
// environment variables or a config file, in that order of precedence.
func newRootCommand(v *viper.Viper, logger *logrus.Logger) *cobra.Command {
	var (
		configFile string
		check      bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "jsonquery [file]",
		Short:         "Convert a JSON operation document into a GraphQL query",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}

			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return errors.Wrapf(err, "could not read config %s", configFile)
				}
				logger.WithField("config", configFile).Debug("loaded config file")
			}

			options, err := jsonquery.DecodeOptions(map[string]interface{}{
				"pretty":           v.Get("pretty"),
				"includeFalsyKeys": v.Get("include-falsy-keys"),
				"ignoreFields":     v.Get("ignore-fields"),
			})
			if err != nil {
				return err
			}

			input, source, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			logger.WithFields(logrus.Fields{
				"source":             source,
				"bytes":              len(input),
				"pretty":             options.Pretty,
				"include_falsy_keys": options.IncludeFalsyKeys,
				"ignore_fields":      options.IgnoreFields,
			}).Debug("compiling document")

			document, err := jsonquery.DecodeJSON(input)
			if err != nil {
				return errors.Wrapf(err, "could not decode %s", source)
			}

			query, err := jsonquery.Compile(document, options)
			if err != nil {
				return err
			}

			if check {
				if _, err := jsonquery.Check(query); err != nil {
					return errors.Wrap(err, "compiled query is not valid graphql")
				}
				logger.Debug("compiled query parses")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), query)
			return err
		},
	}

	flags := cmd.Flags()
	flags.Bool("pretty", false, "put each field on its own line")
	flags.Bool("include-falsy-keys", false, "select fields whose value is empty or zero")
	flags.StringSlice("ignore-fields", nil, "field names to leave out at every level")
	flags.StringVar(&configFile, "config", "", "config file with pretty, include-falsy-keys and ignore-fields")
	flags.BoolVar(&check, "check", false, "fail if the output does not parse as graphql")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	for _, name := range []string{"pretty", "include-falsy-keys", "ignore-fields"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// readInput returns the contents of the file argument, or of stdin when there is none
func readInput(stdin io.Reader, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		input, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "stdin", errors.Wrap(err, "could not read stdin")
		}
		return input, "stdin", nil
	}

	input, err := os.ReadFile(args[0])
	if err != nil {
		return nil, args[0], errors.Wrapf(err, "could not read %s", args[0])
	}
	return input, args[0], nil
}
