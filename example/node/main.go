// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/z5labs/lintcfg/compose"
)

var semantic = compose.Layer{
	"rules": map[string]any{
		"node/no-unsupported-features/es-syntax":   "error",
		"node/no-unsupported-features/es-builtins": "error",
		"node/no-deprecated-api":                   "error",
		"node/no-unpublished-require":              "error",
		"node/no-extraneous-import":                "error",
		"node/no-missing-import":                   "error",
		"node/global-require":                      "error",
		"node/no-process-env":                      "error",
		"node/no-process-exit":                     "error",
		"node/no-sync":                             "error",
		"security-node/detect-child-process":       "error",
		"security-node/detect-insecure-randomness": "error",
		"security-node/non-literal-reg-expr":       "error",
	},
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	lv, err := compose.LevelsFromEnv()
	if err != nil {
		log.Error("failed to read activation levels", slog.Any("error", err))
		os.Exit(1)
	}

	cfg, err := compose.New(compose.WithLogger(log)).Eslintrc(
		lv,
		// node code has no extra syntactic restrictions
		compose.Layer{},
		semantic,
	)
	if err != nil {
		log.Error("failed to compose eslintrc", slog.Any("error", err))
		os.Exit(1)
	}
	cfg["plugins"] = []any{"node", "security-node"}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	err = enc.Encode(cfg)
	if err != nil {
		log.Error("failed to write eslintrc", slog.Any("error", err))
		os.Exit(1)
	}
}
