// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Toml is a layer Source decoded from TOML.
type Toml struct {
	r io.Reader
}

// FromToml returns a Source which layers the TOML mapping read from r.
// When r is a [Pather], decode errors name its path.
func FromToml(r io.Reader) Toml {
	return Toml{r: r}
}

// InvalidTomlError occurs if the layer is not valid TOML or its top level
// is not a mapping.
type InvalidTomlError struct {
	// Path is the layer file, if known.
	Path string

	cause error
}

// Error implements the error interface.
func (e InvalidTomlError) Error() string {
	return fmt.Sprintf("%s: %s", describe("toml", e.Path), e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidTomlError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface.
func (src Toml) Apply(store Store) error {
	return applyDecoded(store, src.r, toml.Unmarshal, func(path string, cause error) error {
		return InvalidTomlError{Path: path, cause: cause}
	})
}
