// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package lintcfg composes lint configuration from layered fragments.
//
// The heavy lifting lives in the subpackages:
//
//   - compose: binds layers to activation levels and deep merges the active ones
//   - config: reads and layers YAML, JSON and TOML sources
//   - config/configtmpl: template functions available to layer files
//
// This package ties them together with [Run], which reads a set of
// [config.Source]s into a typed config, builds an [App] from it and runs it.
//
//	err := lintcfg.Run(ctx, lintcfg.AppBuilderFunc[Config](func(ctx context.Context, cfg Config) (lintcfg.App, error) {
//	    return lintcfg.AppFunc(func(ctx context.Context) error {
//	        return nil
//	    }), nil
//	}), config.FromYaml(f))
package lintcfg
