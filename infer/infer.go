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

// Package infer implements apis.Inferrer on top of per-kind resolvers.
package infer

import (
	"reflect"

	"dirpx.dev/docroute/apis"
	"dirpx.dev/docroute/builder"
)

// Inferrer answers index, type and id questions for one Config. It is
// immutable and safe for concurrent use.
type Inferrer struct {
	cfg     apis.Config
	indices apis.Resolver
	types   apis.Resolver
	ids     apis.Resolver
}

// Ensure Inferrer implements apis.Inferrer.
var _ apis.Inferrer = (*Inferrer)(nil)

// New returns an Inferrer over explicit resolvers. Nil resolvers resolve
// everything of their kind to "".
func New(cfg apis.Config, indices, types, ids apis.Resolver) *Inferrer {
	return &Inferrer{cfg: cfg, indices: indices, types: types, ids: ids}
}

// Default returns an Inferrer with the default chains and empty registries
// for cfg.
func Default(cfg apis.Config) *Inferrer {
	b := builder.New()
	var res [len(apis.Kinds)]apis.Resolver
	for i, kind := range apis.Kinds {
		res[i] = b.BuildResolver(kind, cfg, b.BuildRegistry(kind, cfg, nil, nil), nil, nil)
	}
	return New(cfg, res[apis.KindIndex], res[apis.KindType], res[apis.KindID])
}

// Config returns the connection settings the Inferrer was built with.
func (i *Inferrer) Config() apis.Config {
	return i.cfg
}

// IndexName resolves m.
func (i *Inferrer) IndexName(m apis.IndexMarker) string {
	if name := m.Name(); name != "" {
		return name
	}
	if t := m.Type(); t != nil {
		return i.IndexNameOf(t)
	}
	return ""
}

// IndexNameOf returns the default index of t.
func (i *Inferrer) IndexNameOf(t reflect.Type) string {
	if i.indices == nil {
		return ""
	}
	return i.indices.ResolveType(t, i.cfg)
}

// TypeName resolves m.
func (i *Inferrer) TypeName(m apis.TypeMarker) string {
	if name := m.Name(); name != "" {
		return name
	}
	if t := m.Type(); t != nil {
		return i.TypeNameOf(t)
	}
	return ""
}

// TypeNameOf returns the default document type name of t.
func (i *Inferrer) TypeNameOf(t reflect.Type) string {
	if i.types == nil || t == nil {
		return ""
	}
	return i.types.ResolveType(t, i.cfg)
}

// ID derives the document id of v.
func (i *Inferrer) ID(v any) string {
	if i.ids == nil || v == nil {
		return ""
	}
	return i.ids.Resolve(v, i.cfg)
}

// IndexNameFor returns the default index of T.
func IndexNameFor[T any](inf apis.Inferrer) string {
	return inf.IndexNameOf(reflect.TypeFor[T]())
}

// TypeNameFor returns the default document type name of T.
func TypeNameFor[T any](inf apis.Inferrer) string {
	return inf.TypeNameOf(reflect.TypeFor[T]())
}
