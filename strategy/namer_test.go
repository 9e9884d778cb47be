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

package strategy_test

import (
	"reflect"
	"testing"

	"dirpx.dev/docroute/apis"
	"dirpx.dev/docroute/strategy"
)

type pinned struct{}

func (pinned) IndexName() string { return "pinned-index" }
func (pinned) TypeName() string  { return "pinned_type" }

type ptrPinned struct{}

func (p *ptrPinned) IndexName() string { return "ptr-index" }

type blank struct{}

func (blank) IndexName() string { return "" }

type doc struct{ Slug string }

func (d doc) DocumentID() string { return d.Slug }

type ptrDoc struct{ Key string }

func (d *ptrDoc) DocumentID() string { return d.Key }

func TestIndexNamerStrategy(t *testing.T) {
	s := strategy.NewIndexNamerStrategy()
	conf := apis.Config{MaxUnwrap: 8, MapPreferElem: true}

	cases := []struct {
		name string
		val  any
		want string
		ok   bool
	}{
		{"value", pinned{}, "pinned-index", true},
		{"pointer", &pinned{}, "pinned-index", true},
		{"nil pointer", (*pinned)(nil), "pinned-index", true},
		{"slice", []pinned{}, "pinned-index", true},
		{"pointer receiver on value", ptrPinned{}, "ptr-index", true},
		{"empty name falls through", blank{}, "", false},
		{"non namer", doc{}, "", false},
		{"nil", nil, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolve(tc.val, conf)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("TryResolve: got (%q,%v), want (%q,%v)", got, ok, tc.want, tc.ok)
			}
		})
	}

	got, ok := s.TryResolveType(reflect.TypeOf([]*ptrPinned{}), conf)
	if !ok || got != "ptr-index" {
		t.Fatalf("TryResolveType(slice): got (%q,%v), want (ptr-index,true)", got, ok)
	}
}

func TestTypeNamerStrategy(t *testing.T) {
	s := strategy.NewTypeNamerStrategy()
	conf := apis.Config{MaxUnwrap: 8}

	if got, ok := s.TryResolveType(reflect.TypeOf(&pinned{}), conf); !ok || got != "pinned_type" {
		t.Fatalf("TryResolveType: got (%q,%v), want (pinned_type,true)", got, ok)
	}
	if got, ok := s.TryResolve(ptrPinned{}, conf); ok || got != "" {
		t.Fatalf("TryResolve(non namer): got (%q,%v), want ('',false)", got, ok)
	}
}

func TestNamerStrategies_InterfaceTypes(t *testing.T) {
	conf := apis.Config{MaxUnwrap: 8, MapPreferElem: true}

	cases := []struct {
		name string
		s    apis.Strategy
		typ  reflect.Type
	}{
		{"type namer", strategy.NewTypeNamerStrategy(), reflect.TypeFor[apis.TypeNamer]()},
		{"index namer", strategy.NewIndexNamerStrategy(), reflect.TypeFor[apis.IndexNamer]()},
		{"slice of interface", strategy.NewTypeNamerStrategy(), reflect.TypeFor[[]apis.TypeNamer]()},
		{"pointer to interface", strategy.NewIndexNamerStrategy(), reflect.TypeFor[*apis.IndexNamer]()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := tc.s.TryResolveType(tc.typ, conf); ok || got != "" {
				t.Fatalf("TryResolveType(%v): got (%q,%v), want ('',false)", tc.typ, got, ok)
			}
		})
	}
}

func TestIdentifierStrategy(t *testing.T) {
	s := strategy.NewIdentifierStrategy()
	conf := apis.Config{}

	if got, ok := s.TryResolve(doc{Slug: "hello"}, conf); !ok || got != "hello" {
		t.Fatalf("value receiver: got (%q,%v), want (hello,true)", got, ok)
	}
	if got, ok := s.TryResolve(ptrDoc{Key: "k1"}, conf); !ok || got != "k1" {
		t.Fatalf("pointer receiver on value: got (%q,%v), want (k1,true)", got, ok)
	}
	if got, ok := s.TryResolve(&ptrDoc{Key: "k2"}, conf); !ok || got != "k2" {
		t.Fatalf("pointer: got (%q,%v), want (k2,true)", got, ok)
	}
	if got, ok := s.TryResolve((*ptrDoc)(nil), conf); ok || got != "" {
		t.Fatalf("nil pointer: got (%q,%v), want ('',false)", got, ok)
	}
	if got, ok := s.TryResolve(doc{}, conf); !ok || got != "" {
		t.Fatalf("empty id stops the chain: got (%q,%v), want ('',true)", got, ok)
	}
	if got, ok := s.TryResolve(pinned{}, conf); ok || got != "" {
		t.Fatalf("non identifier: got (%q,%v), want ('',false)", got, ok)
	}
	if got, ok := s.TryResolveType(reflect.TypeOf(doc{}), conf); ok || got != "" {
		t.Fatalf("TryResolveType: got (%q,%v), want ('',false)", got, ok)
	}
}

var (
	_ apis.IndexNamer = pinned{}
	_ apis.TypeNamer  = pinned{}
	_ apis.Identifier = doc{}
)
