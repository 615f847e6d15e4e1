// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"reflect"

	"github.com/z5labs/lintcfg/config/key"
)

// Map is an ordinary map[string]any but implements the Source interface.
type Map map[string]any

// Apply implements the Source interface. It recursively walks the underlying
// map to find key value pairs to set on the given store. Empty nested maps
// are set as values so they survive layering.
func (m Map) Apply(store Store) error {
	return walkMap(m, store, nil)
}

func walkMap(m map[string]any, store Store, chain key.Chain) error {
	for k, v := range m {
		sub, ok := asMap(v)
		if ok && len(sub) > 0 {
			err := walkMap(sub, store, chain.Append(key.Name(k)))
			if err != nil {
				return err
			}
			continue
		}

		err := store.Set(chain.Append(key.Name(k)), v)
		if err != nil {
			return err
		}
	}
	return nil
}

// asMap reports whether v is a mapping with string keys. Named map types
// such as a layer type or map[string]string are copied into a fresh
// map[string]any so they layer like any other mapping.
func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case Map:
		return x, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep copies maps and slices, keeping their type. Every other
// value is returned as is since it is either immutable or opaque to layering.
func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return cloneMap(x)
	case Map:
		return cloneMap(x)
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = cloneValue(x[i])
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		elemType := rv.Type().Elem()
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneElem(iter.Value(), elemType))
		}
		return out.Interface()
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		elemType := rv.Type().Elem()
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			out.Index(i).Set(cloneElem(rv.Index(i), elemType))
		}
		return out.Interface()
	default:
		return v
	}
}

func cloneElem(elem reflect.Value, typ reflect.Type) reflect.Value {
	cv := reflect.ValueOf(cloneValue(elem.Interface()))
	if cv.IsValid() && cv.Type().ConvertibleTo(typ) {
		return cv.Convert(typ)
	}
	return elem
}
