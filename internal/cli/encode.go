// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/z5labs/lintcfg/compose"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type encodeFunc func(io.Writer, compose.Layer) error

func newEncoder(format string) (encodeFunc, error) {
	switch strings.ToLower(format) {
	case "json":
		return encodeJson, nil
	case "yaml", "yml":
		return encodeYaml, nil
	case "toml":
		return encodeToml, nil
	default:
		return nil, UnsupportedFormatError{Format: format}
	}
}

func encodeJson(w io.Writer, l compose.Layer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any(l))
}

func encodeYaml(w io.Writer, l compose.Layer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(map[string]any(l))
	if err != nil {
		return err
	}
	return enc.Close()
}

func encodeToml(w io.Writer, l compose.Layer) error {
	return toml.NewEncoder(w).Encode(map[string]any(l))
}
