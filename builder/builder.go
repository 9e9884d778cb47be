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

// Package builder assembles the default registries and resolver chains.
package builder

import (
	"dirpx.dev/docroute/apis"
	"dirpx.dev/docroute/registry"
	"dirpx.dev/docroute/resolver"
	"dirpx.dev/docroute/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds a new Registry of kind for cfg. Entries of a previous
// registry are migrated; entries that no longer normalize or validate under
// cfg are dropped.
func (b *builder) BuildRegistry(kind apis.Kind, cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New(kind, cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.Type, e.Name)
		}
	}
	return nreg
}

// BuildResolver builds the default chain of kind over reg:
//
//	index: IndexNamer -> registry -> DefaultIndex / inferred from type
//	type:  TypeNamer -> registry -> reflected type name
//	id:    Identifier -> registered field -> tagged field -> IDField
//
// A previous resolver is not reused; chains are cheap to assemble.
func (b *builder) BuildResolver(kind apis.Kind, _ apis.Config, reg apis.Registry, _ apis.Resolver, _ any) apis.Resolver {
	switch kind {
	case apis.KindIndex:
		return resolver.New(kind,
			strategy.NewIndexNamerStrategy(),
			strategy.NewRegistryStrategy(reg),
			strategy.NewDefaultIndexStrategy(),
		)
	case apis.KindType:
		return resolver.New(kind,
			strategy.NewTypeNamerStrategy(),
			strategy.NewRegistryStrategy(reg),
			strategy.NewReflectStrategy(),
		)
	case apis.KindID:
		return resolver.New(kind,
			strategy.NewIdentifierStrategy(),
			strategy.NewIDFieldRegistryStrategy(reg),
			strategy.NewTaggedIDStrategy(),
			strategy.NewConventionalIDStrategy(),
		)
	}
	return nil
}
