/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package reflect holds the reflection helpers shared by registries and
// strategies: container unwrapping, type naming, id field lookup and id
// formatting.
package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/docroute/apis"
	"dirpx.dev/docroute/config"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrUnnamed indicates that the provided type, after unwrapping containers,
	// does not contain a named type (e.g., anonymous struct, func, interface{}).
	ErrUnnamed = errors.New("reflect: type has no named element")
)

// Normalize reduces a document type reference to the named type that
// identifies it, so that Post, *Post, []*Post, map[string]Post and
// map[string]*Post all map to the same registry entry and the same inferred
// names.
//
// Unwrapping rules:
//   - ptr/slice/array/chan unwrap to Elem().
//   - map[K]V normalizes the preferred side (V when MapPreferElem, K
//     otherwise) and falls back to the other side only when the preferred
//     side contains no named type.
//   - any other kind is returned if named, else ErrUnnamed.
//
// At most cfg.MaxUnwrap levels are peeled; zero or less uses the default.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	depth := cfg.MaxUnwrap
	if depth <= 0 {
		depth = config.DefaultMaxUnwrap
	}
	return normalize(t, cfg.MapPreferElem, depth)
}

func normalize(t reflect.Type, preferElem bool, depth int) (reflect.Type, error) {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Chan, reflect.Map:
	default:
		return named(t)
	}
	if depth == 0 {
		return named(t)
	}
	if t.Kind() != reflect.Map {
		return normalize(t.Elem(), preferElem, depth-1)
	}

	first, second := t.Key(), t.Elem()
	if preferElem {
		first, second = second, first
	}
	if base, err := normalize(first, preferElem, depth-1); err == nil {
		return base, nil
	}
	return normalize(second, preferElem, depth-1)
}

func named(t reflect.Type) (reflect.Type, error) {
	if t.Name() == "" {
		return nil, ErrUnnamed
	}
	return t, nil
}
