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
	"strings"
	"sync"

	"dirpx.dev/docroute/apis"
	"dirpx.dev/docroute/utils/inflect"
	uref "dirpx.dev/docroute/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that derives document type
// names from Go type names via reflection, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal type-name fallback. It unwraps containers
// via Normalize, strips generic instantiation parameters, applies the
// configured case and plural form, and can hide builtin names.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = reflectStrategy{}

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t              reflect.Type
	includeBuiltin bool
	maxUnwrap      int
	mapPreferElem  bool
	nameCase       apis.NameCase
	plural         bool
}

// typeNameCache caches resolved type names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolve computes the document type name for v's type.
func (reflectStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg), true
}

// TryResolveType computes the document type name for t.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg), true
}

// byType resolves the type name for t with memoization.
func byType(t reflect.Type, cfg apis.Config) string {
	key := cacheKey{
		t:              t,
		includeBuiltin: cfg.IncludeBuiltins,
		maxUnwrap:      cfg.MaxUnwrap,
		mapPreferElem:  cfg.MapPreferElem,
		nameCase:       cfg.TypeNameCase,
		plural:         cfg.PluralizeTypeNames,
	}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}

	name := ""
	if base, err := uref.Normalize(t, cfg); err == nil {
		if base.PkgPath() != "" || cfg.IncludeBuiltins {
			name = inflect.Format(uref.BaseName(base), cfg.TypeNameCase, cfg.PluralizeTypeNames)
		}
	}

	typeNameCache.Store(key, name)
	return name
}

// NewDefaultIndexStrategy creates an apis.Strategy that applies the
// connection defaults of the index layer: cfg.DefaultIndex, or, with
// cfg.InferIndexFromType, the lowercased type name.
func NewDefaultIndexStrategy() apis.Strategy {
	return defaultIndexStrategy{}
}

// defaultIndexStrategy is the last step of the index chain.
type defaultIndexStrategy struct{}

// TryResolve applies the defaults for v's type.
func (s defaultIndexStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

// TryResolveType applies the defaults for t. Without a default it reports
// unhandled so that later strategies, if any, may still answer.
func (defaultIndexStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if cfg.DefaultIndex != "" {
		return cfg.DefaultIndex, true
	}
	if !cfg.InferIndexFromType || t == nil {
		return "", false
	}
	name := strings.ToLower(byType(t, cfg))
	return name, name != ""
}
