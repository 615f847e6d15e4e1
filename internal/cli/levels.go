// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"

	"github.com/z5labs/lintcfg/compose"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLevelsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the resolved activation levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lv, err := compose.LevelsFromEnv()
			if err != nil {
				return err
			}
			overrides := levelOverrides(v)
			if s, ok := overrides["syntax"].(string); ok {
				lv.Syntax = compose.Level(s)
			}
			if s, ok := overrides["semantic"].(string); ok {
				lv.Semantic = compose.Level(s)
			}

			_, err = fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s=%s\n%s=%s\n",
				compose.SyntaxEnv, lv.Syntax,
				compose.SemanticEnv, lv.Semantic,
			)
			return err
		},
	}
	addLevelFlags(cmd)
	return cmd
}
