// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package compose builds a single lint configuration out of ordered layers.
//
// Each [Layer] is wrapped in a [Binding] together with the [Level] that
// governs it. [Composer.Compose] drops every binding whose level is not
// exactly "error" and deep merges the rest in order, later layers winning:
//
//	lv, err := compose.LevelsFromEnv()
//	if err != nil {
//	    return err
//	}
//	cfg, err := compose.New().Eslintrc(lv, syntacticRules, semanticRules)
//
// The activation levels come from LINT_SYNTAX (default "off") and
// LINT_SEMANTIC (default "error"). They are plain values on [Levels] so
// callers may also construct them directly instead of reading the
// environment.
package compose
