// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package lintcfg

import (
	"context"
	"fmt"
	"strings"

	"github.com/z5labs/lintcfg/compose"
	"github.com/z5labs/lintcfg/config"
)

func ExampleRun() {
	type exampleConfig struct {
		Levels compose.Levels `config:"levels"`
	}

	builder := AppBuilderFunc[exampleConfig](func(ctx context.Context, cfg exampleConfig) (App, error) {
		return AppFunc(func(ctx context.Context) error {
			fmt.Println(cfg.Levels.Syntax, cfg.Levels.Semantic)
			return nil
		}), nil
	})

	err := Run(
		context.Background(),
		builder,
		config.FromYaml(strings.NewReader("levels:\n  syntax: off\n  semantic: error\n")),
		config.Map{"levels": map[string]any{"syntax": "error"}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	//Output: error error
}
