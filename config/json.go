// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"

	"encoding/json"
)

// Json is a layer Source decoded from JSON.
type Json struct {
	r io.Reader
}

// FromJson returns a Source which layers the JSON mapping read from r.
// When r is a [Pather], decode errors name its path.
func FromJson(r io.Reader) Json {
	return Json{r: r}
}

// InvalidJsonError occurs if the layer is not valid JSON or its top level
// is not a mapping.
type InvalidJsonError struct {
	// Path is the layer file, if known.
	Path string

	cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("%s: %s", describe("json", e.Path), e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface.
func (src Json) Apply(store Store) error {
	return applyDecoded(store, src.r, json.Unmarshal, func(path string, cause error) error {
		return InvalidJsonError{Path: path, cause: cause}
	})
}
