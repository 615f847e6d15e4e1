// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package compose

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Level is the activation level a layer is bound to.
type Level string

const (
	Off   Level = "off"
	Warn  Level = "warn"
	Error Level = "error"
)

// Active reports whether a layer bound to l takes part in a merge.
// Only the exact string "error" is active; there is no severity ordering,
// so "warn" layers are excluded just like "off" layers.
func (l Level) Active() bool {
	return l == Error
}

// String implements the [fmt.Stringer] interface.
func (l Level) String() string {
	return string(l)
}

// Environment variables the activation levels are read from.
const (
	SyntaxEnv   = "LINT_SYNTAX"
	SemanticEnv = "LINT_SEMANTIC"
)

// Levels holds the two switches governing syntactic and semantic layers.
type Levels struct {
	Syntax   Level `env:"LINT_SYNTAX" envDefault:"off" config:"syntax"`
	Semantic Level `env:"LINT_SEMANTIC" envDefault:"error" config:"semantic"`
}

// DefaultLevels returns the levels used when neither variable is set.
func DefaultLevels() Levels {
	return Levels{
		Syntax:   Off,
		Semantic: Error,
	}
}

// LevelsError occurs when the activation levels cannot be loaded.
type LevelsError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e LevelsError) Error() string {
	return fmt.Sprintf("failed to load activation levels: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e LevelsError) Unwrap() error {
	return e.Cause
}

// Resolve returns a copy of lv where every empty level is replaced by
// its value from [DefaultLevels].
func (lv Levels) Resolve() (Levels, error) {
	resolved := lv
	err := mergo.Merge(&resolved, DefaultLevels())
	if err != nil {
		return Levels{}, LevelsError{Cause: err}
	}
	return resolved, nil
}

// LevelsFromEnv reads [SyntaxEnv] and [SemanticEnv] from the process
// environment. It reads the environment on every call; nothing is cached.
func LevelsFromEnv() (Levels, error) {
	var lv Levels
	err := env.Parse(&lv)
	if err != nil {
		return Levels{}, LevelsError{Cause: err}
	}
	return lv.Resolve()
}

// LevelsFromEnviron is the same as [LevelsFromEnv] but reads from the
// given key value pairs instead of the process environment.
func LevelsFromEnviron(environ map[string]string) (Levels, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	var lv Levels
	err := env.ParseWithOptions(&lv, env.Options{
		Environment: environ,
	})
	if err != nil {
		return Levels{}, LevelsError{Cause: err}
	}
	return lv.Resolve()
}
