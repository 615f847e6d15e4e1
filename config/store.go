// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"

	"github.com/z5labs/lintcfg/config/key"
)

// UnknownKeyerError occurs when a Source sets a value with a key.Keyer
// implementation the store does not know how to resolve.
type UnknownKeyerError struct {
	key key.Keyer
}

// Error implements the error interface.
func (e UnknownKeyerError) Error() string {
	return fmt.Sprintf("config source tried setting config value with unknown key.Keyer: %s", e.key.Key())
}

// EmptyKeyChainError
type EmptyKeyChainError struct {
	Value any
}

// Error implements the error interface.
func (e EmptyKeyChainError) Error() string {
	return fmt.Sprintf("attempted to set value to an empty key chain: %v", e.Value)
}

// inMemoryStore layers values with later-wins semantics. Setting a
// mapping merges it into any mapping already stored under the same key.
// Setting anything else, or setting a mapping over a non-mapping, replaces
// the stored value. Values are copied on the way in so the store never
// aliases a Source's maps or slices.
type inMemoryStore map[string]any

func (m inMemoryStore) Set(k key.Keyer, v any) error {
	return set(m, k, v)
}

func set(m map[string]any, k key.Keyer, v any) error {
	switch x := k.(type) {
	case key.Name:
		setValue(m, string(x), v)
	case key.Chain:
		return setKeyChain(m, x, v)
	default:
		return UnknownKeyerError{key: k}
	}
	return nil
}

func setValue(m map[string]any, name string, v any) {
	src, ok := asMap(v)
	if !ok {
		m[name] = cloneValue(v)
		return
	}

	dst, ok := m[name].(map[string]any)
	if !ok {
		m[name] = cloneMap(src)
		return
	}
	for k, sv := range src {
		setValue(dst, k, sv)
	}
}

func setKeyChain(m map[string]any, chain key.Chain, v any) error {
	if len(chain) == 0 {
		return EmptyKeyChainError{Value: v}
	}

	root := chain[0]
	if len(chain) == 1 {
		return set(m, root, v)
	}

	subM, ok := m[root.Key()].(map[string]any)
	if !ok {
		// a later nested key always wins over an earlier scalar
		subM = make(map[string]any)
		m[root.Key()] = subM
	}
	return set(subM, chain[1:], v)
}
