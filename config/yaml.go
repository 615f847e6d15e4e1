// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Yaml is a layer Source decoded from YAML.
type Yaml struct {
	r io.Reader
}

// FromYaml returns a Source which layers the YAML mapping read from r.
// When r is a [Pather], decode errors name its path.
func FromYaml(r io.Reader) Yaml {
	return Yaml{r: r}
}

// InvalidYamlError occurs if the layer is not valid YAML or its top level
// is not a mapping.
type InvalidYamlError struct {
	// Path is the layer file, if known.
	Path string

	cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("%s: %s", describe("yaml", e.Path), e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidYamlError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface.
func (src Yaml) Apply(store Store) error {
	return applyDecoded(store, src.r, yaml.Unmarshal, func(path string, cause error) error {
		return InvalidYamlError{Path: path, cause: cause}
	})
}
