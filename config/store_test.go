// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"testing"

	"github.com/z5labs/lintcfg/config/key"

	"github.com/stretchr/testify/assert"
)

type myKeyer string

func (myKeyer) Key() string {
	return "my key"
}

func TestInMemoryStore_Set(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if an unknown key.Keyer is used", func(t *testing.T) {
			store := make(inMemoryStore)
			err := store.Set(myKeyer("rules"), "off")

			var ierr UnknownKeyerError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
		})

		t.Run("if an empty key.Chain is used", func(t *testing.T) {
			store := make(inMemoryStore)
			err := store.Set(key.Chain{}, "off")

			var ierr EmptyKeyChainError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
		})
	})

	t.Run("will replace the existing value", func(t *testing.T) {
		t.Run("if a nested key is set under an existing scalar", func(t *testing.T) {
			store := make(inMemoryStore)
			err := store.Set(key.Name("rules"), "off")
			if !assert.Nil(t, err) {
				return
			}

			err = store.Set(key.Chain{key.Name("rules"), key.Name("curly")}, "error")
			if !assert.Nil(t, err) {
				return
			}

			expected := inMemoryStore{"rules": map[string]any{"curly": "error"}}
			if !assert.Equal(t, expected, store) {
				return
			}
		})
	})

	t.Run("will merge into the existing mapping", func(t *testing.T) {
		t.Run("if a mapping is set directly by name", func(t *testing.T) {
			store := make(inMemoryStore)
			err := store.Set(key.Name("rules"), map[string]any{"curly": "error", "radix": "error"})
			if !assert.Nil(t, err) {
				return
			}

			err = store.Set(key.Name("rules"), Map{"radix": "off"})
			if !assert.Nil(t, err) {
				return
			}

			expected := inMemoryStore{"rules": map[string]any{"curly": "error", "radix": "off"}}
			if !assert.Equal(t, expected, store) {
				return
			}
		})
	})
}
