// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package configtmpl provides template functions for use in layer templates.
package configtmpl

import (
	"os"
	"reflect"
	"text/template"
)

// Env returns the environment variable value for the given key
// or an empty string, if the environment variable does not exist.
// The environment is consulted on every call.
func Env(key string) string {
	return os.Getenv(key)
}

// Default returns the provided def value if v is either nil or the zero value for its type.
func Default(def, v any) any {
	if v == nil {
		return def
	}
	val := reflect.ValueOf(v)
	if val.IsZero() {
		return def
	}
	return v
}

// Funcs returns every function in this package keyed by its template name.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"env":     Env,
		"default": Default,
	}
}
