// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/lintcfg/config"
	"github.com/z5labs/lintcfg/config/configtmpl"
)

// UnsupportedFormatError occurs when a file extension or --output value
// does not name one of json, yaml or toml.
type UnsupportedFormatError struct {
	Format string
}

// Error implements the [builtin.error] interface.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q", e.Format)
}

// openSource returns a config.Source reading the file at path, relative
// to dir unless absolute. The file is rendered as a text/template with the
// configtmpl functions before it is decoded according to its extension.
func openSource(dir, path string, data any) (config.Source, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	opts := []config.RenderTextTemplateOption{
		config.TemplateData(data),
	}
	for name, f := range configtmpl.Funcs() {
		opts = append(opts, config.TemplateFunc(name, f))
	}

	ext := strings.ToLower(filepath.Ext(path))
	r := config.RenderTextTemplate(
		config.NewFileReader(os.DirFS(filepath.Dir(path)), filepath.Base(path)),
		opts...,
	)
	switch ext {
	case ".yaml", ".yml":
		return config.FromYaml(r), nil
	case ".json":
		return config.FromJson(r), nil
	case ".toml":
		return config.FromToml(r), nil
	default:
		return nil, UnsupportedFormatError{Format: ext}
	}
}
