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

// NewRegistryStrategy creates an apis.Strategy that returns names mapped in
// reg. It serves the index and type layers.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults a provided apis.Registry (reflection-free lookup).
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryResolve looks up v's type in the registry.
func (s *registryStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

// TryResolveType looks up t in the registry.
func (s *registryStrategy) TryResolveType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil || s.reg == nil {
		return "", false
	}
	return s.reg.Lookup(t)
}

// NewIDFieldRegistryStrategy creates an apis.Strategy for the id layer: reg
// maps a type to the name of its id field, and the strategy reads that
// field from the instance.
func NewIDFieldRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &idFieldRegistryStrategy{reg: reg}
}

// idFieldRegistryStrategy reads the field registered for the value's type.
type idFieldRegistryStrategy struct {
	reg apis.Registry
}

// TryResolve reads the registered id field of v. A registered type is always
// handled, even when the field value cannot be formatted.
func (s *idFieldRegistryStrategy) TryResolve(v any, _ apis.Config) (string, bool) {
	if v == nil || s.reg == nil {
		return "", false
	}
	rv, ok := uref.Indirect(reflect.ValueOf(v))
	if !ok {
		return "", false
	}
	field, ok := s.reg.Lookup(rv.Type())
	if !ok {
		return "", false
	}
	return readField(rv, func(t reflect.Type) ([]int, bool) {
		return uref.FieldByNameFold(t, field)
	}), true
}

// TryResolveType always returns false: ids require an instance.
func (*idFieldRegistryStrategy) TryResolveType(reflect.Type, apis.Config) (string, bool) {
	return "", false
}
