// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"

	"github.com/z5labs/lintcfg/internal/try"
)

// Pather is implemented by readers which know the layer file they read,
// e.g. [FileReader]. Decode errors use it to name the offending file.
type Pather interface {
	Path() string
}

func pathOf(r io.Reader) string {
	p, ok := r.(Pather)
	if !ok {
		return ""
	}
	return p.Path()
}

type unmarshalFunc func([]byte, any) error

// applyDecoded drains r, decodes it as one top level mapping and layers
// that mapping onto store. r is closed if it is an io.Closer.
func applyDecoded(store Store, r io.Reader, unmarshal unmarshalFunc, invalid func(path string, cause error) error) (err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	err = unmarshal(b, &m)
	if err != nil {
		return invalid(pathOf(r), err)
	}
	return Map(m).Apply(store)
}

func describe(format, path string) string {
	if path == "" {
		return "invalid " + format
	}
	return "invalid " + format + " in " + path
}
