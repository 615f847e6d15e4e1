// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the lintcfg command line interface.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable bound to a flag,
// e.g. --output is read from LINTCFG_OUTPUT.
const EnvPrefix = "LINTCFG"

// Execute runs the lintcfg command with the given args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand returns the lintcfg root command. Flag values are
// resolved through viper so every flag may also be set from the
// environment.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "lintcfg",
		Short:         "Compose layered lint configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pflags := root.PersistentFlags()
	pflags.String("log-level", "warn", "minimum level of the logs written to stderr (debug, info, warn, error)")
	pflags.Bool("trace", false, "write trace spans to stderr")
	pflags.String("otlp-target", "", "gRPC target of an OTLP collector to export trace spans to")

	root.AddCommand(
		newComposeCommand(v),
		newLevelsCommand(v),
	)
	return root
}
