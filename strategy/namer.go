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

package strategy

import (
	"reflect"

	"dirpx.dev/docroute/apis"
	uref "dirpx.dev/docroute/utils/reflect"
)

// NewIndexNamerStrategy creates an apis.Strategy that uses apis.IndexNamer.
func NewIndexNamerStrategy() apis.Strategy {
	return namerStrategy[apis.IndexNamer]{name: apis.IndexNamer.IndexName}
}

// NewTypeNamerStrategy creates an apis.Strategy that uses apis.TypeNamer.
func NewTypeNamerStrategy() apis.Strategy {
	return namerStrategy[apis.TypeNamer]{name: apis.TypeNamer.TypeName}
}

// namerStrategy is the zero-cost fast path: if a value (or its type) implements
// N, return the name it reports and stop the chain. An empty name falls through.
type namerStrategy[N any] struct {
	name func(N) string
}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = namerStrategy[apis.IndexNamer]{}

// TryResolve checks whether v implements N, then falls back to its type.
func (s namerStrategy[N]) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return s.TryResolveType(rv.Type(), cfg)
	}
	if n, ok := v.(N); ok {
		if name := s.name(n); name != "" {
			return name, true
		}
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

// TryResolveType calls N on a zero value of t, or of the nearest named type
// of t (also through its pointer), when either implements N. Interface
// types are never handled.
func (s namerStrategy[N]) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	iface := reflect.TypeFor[N]()
	candidates := []reflect.Type{t}
	if base, err := uref.Normalize(t, cfg); err == nil && base != t {
		candidates = append(candidates, base)
	}
	if t.Kind() != reflect.Pointer {
		candidates = append(candidates, reflect.PointerTo(candidates[len(candidates)-1]))
	}
	for _, c := range candidates {
		// Interface types have no zero value to call N on.
		if c.Kind() == reflect.Interface || !c.Implements(iface) {
			continue
		}
		if name := s.name(zeroOf(c).(N)); name != "" {
			return name, true
		}
		return "", false
	}
	return "", false
}

// zeroOf returns a usable zero value of t. Pointer types get a pointer to a
// zero element so that methods with pointer receivers are safe to call.
func zeroOf(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Elem().Interface()
}

// NewIdentifierStrategy creates an apis.Strategy that uses apis.Identifier.
func NewIdentifierStrategy() apis.Strategy {
	return identifierStrategy{}
}

// identifierStrategy asks the instance for its id. Values whose pointer type
// implements apis.Identifier are copied into an addressable value first.
type identifierStrategy struct{}

// TryResolve returns v.DocumentID() when available. An empty id still stops
// the chain.
func (identifierStrategy) TryResolve(v any, _ apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	if id, ok := v.(apis.Identifier); ok {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return id.DocumentID(), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer || !reflect.PointerTo(rv.Type()).Implements(reflect.TypeFor[apis.Identifier]()) {
		return "", false
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.Interface().(apis.Identifier).DocumentID(), true
}

// TryResolveType always returns false: ids require an instance.
func (identifierStrategy) TryResolveType(reflect.Type, apis.Config) (string, bool) {
	return "", false
}
