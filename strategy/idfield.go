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

	"dirpx.dev/docroute/apis"
	uref "dirpx.dev/docroute/utils/reflect"
)

// NewTaggedIDStrategy creates an apis.Strategy that reads the struct field
// tagged `docroute:"id"`.
func NewTaggedIDStrategy() apis.Strategy {
	return fieldIDStrategy{find: func(t reflect.Type, _ apis.Config) ([]int, bool) {
		return uref.TaggedField(t)
	}}
}

// NewConventionalIDStrategy creates an apis.Strategy that reads the field
// named cfg.IDField (case-insensitive). String-keyed maps are searched for a
// key with that name too.
func NewConventionalIDStrategy() apis.Strategy {
	return fieldIDStrategy{
		find: func(t reflect.Type, cfg apis.Config) ([]int, bool) {
			return uref.FieldByNameFold(t, cfg.IDField)
		},
		maps: true,
	}
}

// fieldIDStrategy derives an id from a struct field located by find.
type fieldIDStrategy struct {
	find func(reflect.Type, apis.Config) ([]int, bool)
	// maps enables the map[string]T key lookup.
	maps bool
}

// TryResolve handles v when it is a struct (or pointer to one) that has the
// field, or, if enabled, a string-keyed map holding the key.
func (s fieldIDStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	rv, ok := uref.Indirect(reflect.ValueOf(v))
	if !ok {
		return "", false
	}
	switch rv.Kind() {
	case reflect.Struct:
		if _, found := s.find(rv.Type(), cfg); !found {
			return "", false
		}
		return readField(rv, func(t reflect.Type) ([]int, bool) { return s.find(t, cfg) }), true
	case reflect.Map:
		if !s.maps || rv.Type().Key().Kind() != reflect.String {
			return "", false
		}
		return mapKey(rv, cfg.IDField)
	}
	return "", false
}

// TryResolveType always returns false: ids require an instance.
func (fieldIDStrategy) TryResolveType(reflect.Type, apis.Config) (string, bool) {
	return "", false
}

// readField formats the field of struct value rv located by find, or "".
func readField(rv reflect.Value, find func(reflect.Type) ([]int, bool)) string {
	if rv.Kind() != reflect.Struct {
		return ""
	}
	idx, ok := find(rv.Type())
	if !ok {
		return ""
	}
	fv, ok := uref.FieldValue(rv, idx)
	if !ok {
		return ""
	}
	id, _ := uref.FormatScalar(fv)
	return id
}

// mapKey formats the entry of m whose key equals name, case-insensitively.
func mapKey(m reflect.Value, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if v := m.MapIndex(reflect.ValueOf(name).Convert(m.Type().Key())); v.IsValid() {
		id, _ := uref.FormatScalar(v)
		return id, true
	}
	iter := m.MapRange()
	for iter.Next() {
		if strings.EqualFold(iter.Key().String(), name) {
			id, _ := uref.FormatScalar(iter.Value())
			return id, true
		}
	}
	return "", false
}
