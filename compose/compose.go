// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package compose

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/z5labs/lintcfg/config"
	"github.com/z5labs/lintcfg/pkg/noop"
)

// Layer is a fragment of lint configuration. Its contents are opaque
// to the composer.
type Layer map[string]any

// Binding pairs a Layer with the Level that decides whether it is merged.
type Binding struct {
	// Name is only used for logging and error reporting.
	Name  string
	Layer Layer
	Level Level
}

func (b Binding) name(i int) string {
	if b.Name != "" {
		return b.Name
	}
	return "#" + strconv.Itoa(i)
}

// ShapeError occurs when a layer's top level value is not a mapping.
type ShapeError struct {
	Layer string
	Type  string
}

// Error implements the [builtin.error] interface.
func (e ShapeError) Error() string {
	return fmt.Sprintf("layer %q must be a mapping at the top level, got %s", e.Layer, e.Type)
}

// Bind validates that v is a mapping and binds it to lvl. Accepted
// values are a Layer, a map[string]any or a [config.Map]; anything else,
// including nil, returns a [ShapeError].
func Bind(name string, v any, lvl Level) (Binding, error) {
	var layer Layer
	switch x := v.(type) {
	case Layer:
		layer = x
	case map[string]any:
		layer = x
	case config.Map:
		layer = Layer(x)
	default:
		return Binding{}, ShapeError{
			Layer: name,
			Type:  fmt.Sprintf("%T", v),
		}
	}

	b := Binding{
		Name:  name,
		Layer: layer,
		Level: lvl,
	}
	return b, nil
}

// Merger combines two mappings where b takes precedence over a.
// Implementations must not mutate either argument.
type Merger interface {
	Merge(a, b map[string]any) (map[string]any, error)
}

// MergerFunc is a functional implementation of the [Merger] interface.
type MergerFunc func(a, b map[string]any) (map[string]any, error)

// Merge implements the [Merger] interface.
func (f MergerFunc) Merge(a, b map[string]any) (map[string]any, error) {
	return f(a, b)
}

// DeepMerge is the default [Merger]. Conflicting mappings are merged
// recursively and every other conflict, slices included, is won by b.
// The result is newly allocated and shares nothing with a or b.
func DeepMerge(a, b map[string]any) (map[string]any, error) {
	m, err := config.Read(config.Map(a), config.Map(b))
	if err != nil {
		return nil, err
	}
	return m.Map(), nil
}

// MergeError occurs when the [Merger] fails to merge a layer.
type MergeError struct {
	Layer string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e MergeError) Error() string {
	return fmt.Sprintf("failed to merge layer %q: %s", e.Layer, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e MergeError) Unwrap() error {
	return e.Cause
}

// Option configures a Composer.
type Option func(*Composer)

// WithMerger overrides the default [DeepMerge] strategy.
func WithMerger(m Merger) Option {
	return func(c *Composer) {
		c.merger = m
	}
}

// WithLogger sets the logger used to report which layers were merged or skipped.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		c.log = logger
	}
}

// Composer filters bindings by their level and merges the survivors.
// A Composer holds no per-call state and is safe for concurrent use as
// long as its Merger is.
type Composer struct {
	merger Merger
	log    *slog.Logger
}

// New returns a Composer using [DeepMerge] and a discarding logger unless
// overridden by opts.
func New(opts ...Option) *Composer {
	c := &Composer{
		merger: MergerFunc(DeepMerge),
		log:    noop.Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose merges, in the given order, every binding whose Level is active.
// Later bindings win over earlier ones. The result is never nil; if no
// binding is active an empty Layer is returned. On error no partial
// result is returned.
func (c *Composer) Compose(bindings ...Binding) (Layer, error) {
	merged := make(map[string]any)
	for i, b := range bindings {
		name := b.name(i)
		if !b.Level.Active() {
			c.log.Debug(
				"skipping inactive layer",
				slog.String("layer", name),
				slog.String("activation_level", b.Level.String()),
			)
			continue
		}

		next, err := c.merger.Merge(merged, b.Layer)
		if err != nil {
			return nil, MergeError{Layer: name, Cause: err}
		}
		merged = next

		c.log.Debug(
			"merged layer",
			slog.String("layer", name),
			slog.Int("keys", len(b.Layer)),
		)
	}
	if merged == nil {
		merged = make(map[string]any)
	}
	return Layer(merged), nil
}

// Eslintrc binds syntactic to lv.Syntax and semantic to lv.Semantic, in
// that order, and composes them. Empty levels in lv fall back to
// [DefaultLevels].
func (c *Composer) Eslintrc(lv Levels, syntactic, semantic Layer) (Layer, error) {
	lv, err := lv.Resolve()
	if err != nil {
		return nil, err
	}
	return c.Compose(
		Binding{Name: "syntactic", Layer: syntactic, Level: lv.Syntax},
		Binding{Name: "semantic", Layer: semantic, Level: lv.Semantic},
	)
}

// Compose is shorthand for New().Compose(bindings...).
func Compose(bindings ...Binding) (Layer, error) {
	return New().Compose(bindings...)
}

// MakeEslintrc reads the activation levels from the process environment
// at call time and composes syntactic and semantic with them.
func MakeEslintrc(syntactic, semantic Layer) (Layer, error) {
	lv, err := LevelsFromEnv()
	if err != nil {
		return nil, err
	}
	return New().Eslintrc(lv, syntactic, semantic)
}
