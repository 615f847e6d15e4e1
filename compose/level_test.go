// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package compose

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Active(t *testing.T) {
	testCases := []struct {
		name   string
		level  Level
		active bool
	}{
		{name: "error", level: Error, active: true},
		{name: "off", level: Off},
		{name: "warn", level: Warn},
		{name: "empty", level: ""},
		{name: "upper case error", level: "ERROR"},
		{name: "padded error", level: " error"},
		{name: "numeric severity", level: "2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.active, tc.level.Active())
		})
	}
}

func TestLevels_Resolve(t *testing.T) {
	testCases := []struct {
		name     string
		levels   Levels
		expected Levels
	}{
		{
			name:     "empty levels use defaults",
			levels:   Levels{},
			expected: Levels{Syntax: Off, Semantic: Error},
		},
		{
			name:     "set levels are kept",
			levels:   Levels{Syntax: Error, Semantic: Warn},
			expected: Levels{Syntax: Error, Semantic: Warn},
		},
		{
			name:     "only the empty level is defaulted",
			levels:   Levels{Syntax: Error},
			expected: Levels{Syntax: Error, Semantic: Error},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lv, err := tc.levels.Resolve()
			require.NoError(t, err)
			require.Equal(t, tc.expected, lv)
		})
	}
}

func TestLevelsFromEnviron(t *testing.T) {
	testCases := []struct {
		name     string
		environ  map[string]string
		expected Levels
	}{
		{
			name:     "nil environment uses defaults",
			environ:  nil,
			expected: DefaultLevels(),
		},
		{
			name:     "absent variables use defaults",
			environ:  map[string]string{"PATH": "/usr/bin"},
			expected: DefaultLevels(),
		},
		{
			name:     "empty variables use defaults",
			environ:  map[string]string{SyntaxEnv: "", SemanticEnv: ""},
			expected: DefaultLevels(),
		},
		{
			name:     "set variables are used verbatim",
			environ:  map[string]string{SyntaxEnv: "error", SemanticEnv: "warn"},
			expected: Levels{Syntax: Error, Semantic: Warn},
		},
		{
			name:     "unknown levels are not validated",
			environ:  map[string]string{SyntaxEnv: "ERROR"},
			expected: Levels{Syntax: "ERROR", Semantic: Error},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lv, err := LevelsFromEnviron(tc.environ)
			require.NoError(t, err)
			require.Equal(t, tc.expected, lv)
		})
	}
}

func TestLevelsFromEnv(t *testing.T) {
	t.Run("will use the defaults", func(t *testing.T) {
		t.Run("if neither variable is set", func(t *testing.T) {
			t.Setenv(SyntaxEnv, "")
			t.Setenv(SemanticEnv, "")
			os.Unsetenv(SyntaxEnv)
			os.Unsetenv(SemanticEnv)

			lv, err := LevelsFromEnv()
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, DefaultLevels(), lv) {
				return
			}
		})
	})

	t.Run("will observe environment changes", func(t *testing.T) {
		t.Run("if the variables change between calls", func(t *testing.T) {
			t.Setenv(SyntaxEnv, "off")
			t.Setenv(SemanticEnv, "error")

			lv, err := LevelsFromEnv()
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Levels{Syntax: Off, Semantic: Error}, lv) {
				return
			}

			t.Setenv(SyntaxEnv, "error")
			t.Setenv(SemanticEnv, "off")

			lv, err = LevelsFromEnv()
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Levels{Syntax: Error, Semantic: Off}, lv) {
				return
			}
		})
	})
}
