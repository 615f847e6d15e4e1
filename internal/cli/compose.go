// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/z5labs/lintcfg"
	"github.com/z5labs/lintcfg/compose"
	"github.com/z5labs/lintcfg/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentLoads = 8

// Switch names which activation level a manifest layer follows.
type Switch string

const (
	SwitchSyntax   Switch = "syntax"
	SwitchSemantic Switch = "semantic"
)

type layerSpec struct {
	Name   string        `config:"name"`
	File   string        `config:"file"`
	Switch Switch        `config:"switch"`
	Level  compose.Level `config:"level"`
}

type composeConfig struct {
	Levels    compose.Levels `config:"levels"`
	Layers    []layerSpec    `config:"layers"`
	BaseDir   string         `config:"base_dir"`
	Syntactic string         `config:"syntactic"`
	Semantic  string         `config:"semantic"`
}

// InvalidLayerError occurs when a manifest layer is missing its file or
// does not say which activation level it follows.
type InvalidLayerError struct {
	Layer  string
	Reason string
}

// Error implements the [builtin.error] interface.
func (e InvalidLayerError) Error() string {
	return fmt.Sprintf("invalid layer %q: %s", e.Layer, e.Reason)
}

// ErrNoLayers is returned when neither a manifest nor --syntactic or
// --semantic was given.
var ErrNoLayers = errors.New("no layers given: set --manifest, --syntactic or --semantic")

func newComposeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Merge the active layers and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("manifest", "m", "", "manifest listing the layers to compose")
	flags.String("syntactic", "", "layer bound to the syntax level, merged after the manifest layers")
	flags.String("semantic", "", "layer bound to the semantic level, merged last")
	addLevelFlags(cmd)
	flags.StringP("output", "o", "json", "output format (json, yaml, toml)")
	return cmd
}

func addLevelFlags(cmd *cobra.Command) {
	cmd.Flags().String("syntax-level", "", "override "+compose.SyntaxEnv)
	cmd.Flags().String("semantic-level", "", "override "+compose.SemanticEnv)
}

func runCompose(cmd *cobra.Command, v *viper.Viper) (err error) {
	ctx := cmd.Context()

	log, err := newLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
	if err != nil {
		return err
	}

	tp, shutdown, err := newTracerProvider(ctx, traceOptions{
		stdout:     v.GetBool("trace"),
		w:          cmd.ErrOrStderr(),
		otlpTarget: v.GetString("otlp-target"),
	})
	if err != nil {
		return err
	}
	defer func() {
		serr := shutdown(context.WithoutCancel(ctx))
		if serr != nil {
			err = errors.Join(err, serr)
		}
	}()

	encode, err := newEncoder(v.GetString("output"))
	if err != nil {
		return err
	}

	srcs, err := composeSources(v)
	if err != nil {
		return err
	}

	builder := lintcfg.AppBuilderFunc[composeConfig](func(ctx context.Context, cfg composeConfig) (lintcfg.App, error) {
		app, err := buildComposeApp(cfg, composeDeps{
			log:    log,
			tracer: tp.Tracer(tracerName),
			encode: encode,
			out:    cmd.OutOrStdout(),
		})
		if err != nil {
			return nil, err
		}
		return app, nil
	})
	return lintcfg.Run(ctx, builder, srcs...)
}

// composeSources layers, in increasing precedence, the levels read from
// the environment, the manifest and the command line flags.
func composeSources(v *viper.Viper) ([]config.Source, error) {
	lv, err := compose.LevelsFromEnv()
	if err != nil {
		return nil, err
	}

	srcs := []config.Source{
		config.Map{
			"levels": map[string]any{
				"syntax":   lv.Syntax.String(),
				"semantic": lv.Semantic.String(),
			},
		},
	}

	if path := v.GetString("manifest"); path != "" {
		src, err := openSource(".", path, lv)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, src, config.Map{"base_dir": filepath.Dir(path)})
	}

	overrides := config.Map{}
	levels := levelOverrides(v)
	if len(levels) > 0 {
		overrides["levels"] = levels
	}
	if s := v.GetString("syntactic"); s != "" {
		overrides["syntactic"] = s
	}
	if s := v.GetString("semantic"); s != "" {
		overrides["semantic"] = s
	}
	return append(srcs, overrides), nil
}

func levelOverrides(v *viper.Viper) map[string]any {
	levels := map[string]any{}
	if s := v.GetString("syntax-level"); s != "" {
		levels["syntax"] = s
	}
	if s := v.GetString("semantic-level"); s != "" {
		levels["semantic"] = s
	}
	return levels
}

type composeDeps struct {
	log    *slog.Logger
	tracer trace.Tracer
	encode encodeFunc
	out    io.Writer
}

type boundLayer struct {
	dir  string
	spec layerSpec
}

type composeApp struct {
	composeDeps

	levels compose.Levels
	layers []boundLayer
}

func buildComposeApp(cfg composeConfig, deps composeDeps) (*composeApp, error) {
	lv, err := cfg.Levels.Resolve()
	if err != nil {
		return nil, err
	}

	layers := make([]boundLayer, 0, len(cfg.Layers)+2)
	for i, spec := range cfg.Layers {
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("#%d", i)
		}
		if spec.File == "" {
			return nil, InvalidLayerError{Layer: spec.Name, Reason: "file must be set"}
		}
		layers = append(layers, boundLayer{dir: cfg.BaseDir, spec: spec})
	}
	if cfg.Syntactic != "" {
		layers = append(layers, boundLayer{
			dir:  ".",
			spec: layerSpec{Name: "syntactic", File: cfg.Syntactic, Switch: SwitchSyntax},
		})
	}
	if cfg.Semantic != "" {
		layers = append(layers, boundLayer{
			dir:  ".",
			spec: layerSpec{Name: "semantic", File: cfg.Semantic, Switch: SwitchSemantic},
		})
	}
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}

	for _, l := range layers {
		_, err := l.spec.level(lv)
		if err != nil {
			return nil, err
		}
	}

	app := &composeApp{
		composeDeps: deps,
		levels:      lv,
		layers:      layers,
	}
	return app, nil
}

func (spec layerSpec) level(lv compose.Levels) (compose.Level, error) {
	if spec.Switch != "" && spec.Level != "" {
		return "", InvalidLayerError{Layer: spec.Name, Reason: "switch and level are mutually exclusive"}
	}
	switch spec.Switch {
	case SwitchSyntax:
		return lv.Syntax, nil
	case SwitchSemantic:
		return lv.Semantic, nil
	case "":
	default:
		return "", InvalidLayerError{Layer: spec.Name, Reason: fmt.Sprintf("unknown switch %q", spec.Switch)}
	}
	if spec.Level == "" {
		return "", InvalidLayerError{Layer: spec.Name, Reason: "one of switch or level must be set"}
	}
	return spec.Level, nil
}

// Run implements the [lintcfg.App] interface.
func (a *composeApp) Run(ctx context.Context) (err error) {
	ctx, span := a.tracer.Start(ctx, "compose", trace.WithAttributes(
		attribute.String("lintcfg.syntax_level", a.levels.Syntax.String()),
		attribute.String("lintcfg.semantic_level", a.levels.Semantic.String()),
		attribute.Int("lintcfg.layers", len(a.layers)),
	))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	bindings, err := a.loadLayers(ctx)
	if err != nil {
		return err
	}

	merged, err := compose.New(compose.WithLogger(a.log)).Compose(bindings...)
	if err != nil {
		return err
	}
	a.log.InfoContext(ctx, "composed lint config", slog.Int("keys", len(merged)))

	return a.encode(a.out, merged)
}

// loadLayers reads every layer file concurrently. The bindings are
// returned in manifest order regardless of which file finished first.
func (a *composeApp) loadLayers(ctx context.Context) ([]compose.Binding, error) {
	bindings := make([]compose.Binding, len(a.layers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, l := range a.layers {
		g.Go(func() error {
			b, err := a.loadLayer(gctx, l)
			if err != nil {
				return err
			}
			bindings[i] = b
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

func (a *composeApp) loadLayer(ctx context.Context, l boundLayer) (compose.Binding, error) {
	ctx, span := a.tracer.Start(ctx, "load_layer", trace.WithAttributes(
		attribute.String("lintcfg.layer", l.spec.Name),
		attribute.String("lintcfg.file", l.spec.File),
	))
	defer span.End()

	lvl, err := l.spec.level(a.levels)
	if err != nil {
		return compose.Binding{}, err
	}

	src, err := openSource(l.dir, l.spec.File, a.levels)
	if err != nil {
		return compose.Binding{}, err
	}

	m, err := config.Read(src)
	if err != nil {
		return compose.Binding{}, fmt.Errorf("failed to read layer %q: %w", l.spec.Name, err)
	}
	a.log.DebugContext(
		ctx,
		"loaded layer",
		slog.String("layer", l.spec.Name),
		slog.String("file", l.spec.File),
		slog.String("activation_level", lvl.String()),
	)
	return compose.Bind(l.spec.Name, m.Map(), lvl)
}
