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

package builder_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/docroute/apis"
	"dirpx.dev/docroute/builder"
	"dirpx.dev/docroute/config"
	"dirpx.dev/docroute/registry"
	"dirpx.dev/docroute/resolver"
)

// userType is a plain named type with no special behavior.
// It is used to test fallback via reflection.
type userType struct {
	ID   int
	Slug string `docroute:"id"`
}

// hotType implements the namer contracts and is used to verify that they
// take priority over other strategies.
type hotType struct {
	Key string
}

func (hotType) IndexName() string    { return "hot-index" }
func (hotType) TypeName() string     { return "hot-type" }
func (h hotType) DocumentID() string { return "hot-" + h.Key }

// defaultCfg returns a sane configuration for tests.
func defaultCfg() apis.Config {
	return config.NewConfig(config.WithDefaultIndex("fallback"))
}

// TestBuildRegistry_PerKind asserts that BuildRegistry returns a working
// Registry for every kind.
func TestBuildRegistry_PerKind(t *testing.T) {
	b := builder.New()
	names := map[apis.Kind]string{
		apis.KindIndex: "users",
		apis.KindType:  "user",
		apis.KindID:    "Slug",
	}
	for _, kind := range apis.Kinds {
		reg := b.BuildRegistry(kind, defaultCfg(), nil, nil)
		if reg == nil {
			t.Fatalf("BuildRegistry(%s) returned nil", kind)
		}
		tt := reflect.TypeOf(userType{})
		if err := reg.Register(tt, names[kind]); err != nil {
			t.Fatalf("Register(%s) failed: %v", kind, err)
		}
		if got, ok := reg.Lookup(tt); !ok || got != names[kind] {
			t.Fatalf("Lookup(%s) mismatch: ok=%v got=%q want=%q", kind, ok, got, names[kind])
		}
	}
}

// TestBuildRegistry_Migrates asserts that entries of a previous registry
// survive a rebuild.
func TestBuildRegistry_Migrates(t *testing.T) {
	b := builder.New()
	prev := b.BuildRegistry(apis.KindType, defaultCfg(), nil, nil)
	_ = prev.Register(reflect.TypeOf(userType{}), "member")

	next := b.BuildRegistry(apis.KindType, config.NewConfig(config.WithTypeNameCase(apis.CaseSnake)), prev, nil)
	if got, ok := next.Lookup(reflect.TypeOf(&userType{})); !ok || got != "member" {
		t.Fatalf("migrated Lookup: got (%q,%v), want (member,true)", got, ok)
	}
	if next == prev {
		t.Fatalf("BuildRegistry must return a fresh registry")
	}
}

// TestBuildResolver_Order verifies resolution priority per kind.
func TestBuildResolver_Order(t *testing.T) {
	b := builder.New()
	cfg := defaultCfg()

	type fromRegistry struct{ ID string }
	ttReg := reflect.TypeOf(fromRegistry{})

	regs := map[apis.Kind]apis.Registry{}
	res := map[apis.Kind]apis.Resolver{}
	for _, kind := range apis.Kinds {
		regs[kind] = b.BuildRegistry(kind, cfg, nil, nil)
		res[kind] = b.BuildResolver(kind, cfg, regs[kind], nil, nil)
		if res[kind] == nil {
			t.Fatalf("BuildResolver(%s) returned nil", kind)
		}
	}
	_ = regs[apis.KindIndex].Register(ttReg, "reg-index")
	_ = regs[apis.KindType].Register(ttReg, "reg-type")

	// (1) namers win
	if got := res[apis.KindIndex].Resolve(hotType{}, cfg); got != "hot-index" {
		t.Fatalf("IndexNamer priority broken: got %q", got)
	}
	if got := res[apis.KindType].ResolveType(reflect.TypeOf(&hotType{}), cfg); got != "hot-type" {
		t.Fatalf("TypeNamer priority broken: got %q", got)
	}
	if got := res[apis.KindID].Resolve(hotType{Key: "1"}, cfg); got != "hot-1" {
		t.Fatalf("Identifier priority broken: got %q", got)
	}

	// (2) registry next
	if got := res[apis.KindIndex].ResolveType(ttReg, cfg); got != "reg-index" {
		t.Fatalf("index registry broken: got %q", got)
	}
	if got := res[apis.KindType].ResolveType(ttReg, cfg); got != "reg-type" {
		t.Fatalf("type registry broken: got %q", got)
	}

	// (3) fallbacks
	ttUser := reflect.TypeOf(userType{})
	if got := res[apis.KindIndex].ResolveType(ttUser, cfg); got != "fallback" {
		t.Fatalf("default index broken: got %q", got)
	}
	if got := res[apis.KindType].ResolveType(ttUser, cfg); got != "userType" {
		t.Fatalf("reflect type name broken: got %q", got)
	}
	if got := res[apis.KindID].Resolve(userType{ID: 5, Slug: "s"}, cfg); got != "s" {
		t.Fatalf("tagged id must beat conventional id: got %q", got)
	}
	if got := res[apis.KindID].Resolve(fromRegistry{ID: "r"}, cfg); got != "r" {
		t.Fatalf("conventional id broken: got %q", got)
	}

	want := "index: strategy.namerStrategy -> strategy.registryStrategy -> strategy.defaultIndexStrategy"
	if got := resolver.Describe(res[apis.KindIndex]); got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
}

// TestBuildResolver_WithExternalRegistry asserts that BuildResolver will
// accept any apis.Registry implementation, not only the one created by
// this builder.
func TestBuildResolver_WithExternalRegistry(t *testing.T) {
	r := registry.New(apis.KindID, config.DefaultConfig())
	if err := r.Register(reflect.TypeOf(userType{}), "ID"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	res := builder.New().BuildResolver(apis.KindID, defaultCfg(), r, nil, nil)
	if got := res.Resolve(&userType{ID: 42, Slug: "ignored"}, defaultCfg()); got != "42" {
		t.Fatalf("resolver did not use registered id field: got %q want %q", got, "42")
	}
}

func TestBuildResolver_UnknownKind(t *testing.T) {
	if res := builder.New().BuildResolver(apis.Kind(42), defaultCfg(), nil, nil, nil); res != nil {
		t.Fatalf("unknown kind: want nil resolver, got %v", res)
	}
}

// TestBuildResolver_Concurrency_Smoke hammers the resolvers in parallel to
// ensure they are safe to call concurrently after being built.
func TestBuildResolver_Concurrency_Smoke(t *testing.T) {
	b := builder.New()
	cfg := defaultCfg()

	reg := b.BuildRegistry(apis.KindType, cfg, nil, nil)
	_ = reg.Register(reflect.TypeOf(userType{}), "user")
	_ = reg.Register(reflect.TypeOf(hotType{}), "shadowed") // TypeNamer still overrides

	typeRes := b.BuildResolver(apis.KindType, cfg, reg, nil, nil)
	idRes := b.BuildResolver(apis.KindID, cfg, nil, nil, nil)

	types := []reflect.Type{
		reflect.TypeOf(userType{}),
		reflect.TypeOf(hotType{}),
		reflect.TypeOf(&userType{}),
		reflect.TypeOf([]userType{}),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				tt := types[(i+id)%len(types)]
				if got := typeRes.ResolveType(tt, cfg); got == "" || got == "shadowed" {
					t.Errorf("ResolveType(%v) = %q", tt, got)
					return
				}
				_ = idRes.Resolve(userType{ID: i}, cfg)
			}
		}(w)
	}
	wg.Wait()
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()
