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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/docroute/apis"
)

// Local test types.
type BlogPost struct{}
type Page[T any] struct{}
type Wrap[T any] struct{ V T }

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{
		IncludeBuiltins: true,
		MaxUnwrap:       8,
		MapPreferElem:   true,
		IDField:         "ID",
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestReflectStrategy_ByValue(t *testing.T) {
	s := NewReflectStrategy()

	cases := []struct {
		name     string
		val      any
		cfg      apis.Config
		expected string
	}{
		{"plain struct", BlogPost{}, cfg(), "blogPost"},
		{"ptr", &BlogPost{}, cfg(), "blogPost"},
		{"slice", []BlogPost{}, cfg(), "blogPost"},
		{"map prefer elem", map[string]BlogPost{}, cfg(), "blogPost"},
		{"lower", BlogPost{}, cfg(func(c *apis.Config) { c.TypeNameCase = apis.CaseLower }), "blogpost"},
		{"snake plural", BlogPost{}, cfg(func(c *apis.Config) {
			c.TypeNameCase = apis.CaseSnake
			c.PluralizeTypeNames = true
		}), "blog_posts"},
		{"preserve", BlogPost{}, cfg(func(c *apis.Config) { c.TypeNameCase = apis.CasePreserve }), "BlogPost"},
		{"builtin visible", 42, cfg(), "int"},
		{"builtin hidden", 42, cfg(func(c *apis.Config) { c.IncludeBuiltins = false }), ""},
		{"generic strips params", Page[int]{}, cfg(), "page"},
		{"wrapped generic", []Wrap[Page[int]]{}, cfg(), "wrap"},
		{"anonymous", struct{ A int }{}, cfg(), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolve(tc.val, tc.cfg)
			if !ok {
				t.Fatalf("expected ok=true for %T", tc.val)
			}
			if got != tc.expected {
				t.Fatalf("got %q, want %q", got, tc.expected)
			}
		})
	}

	if got, ok := s.TryResolve(nil, cfg()); ok || got != "" {
		t.Fatalf("nil value: got (%q,%v), want ('',false)", got, ok)
	}
	if got, ok := s.TryResolveType(nil, cfg()); ok || got != "" {
		t.Fatalf("nil type: got (%q,%v), want ('',false)", got, ok)
	}
}

func TestReflectStrategy_MaxUnwrap(t *testing.T) {
	s := NewReflectStrategy()
	tt := reflect.TypeOf((***BlogPost)(nil))

	if got, _ := s.TryResolveType(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 1 })); got != "" {
		t.Fatalf("MaxUnwrap=1: expected empty resolution, got %q", got)
	}
	if got, ok := s.TryResolveType(tt, cfg()); !ok || got != "blogPost" {
		t.Fatalf("MaxUnwrap=8: got (%q,%v), want (blogPost,true)", got, ok)
	}
}

func TestReflectStrategy_CacheKeepsLargeMaxUnwrapApart(t *testing.T) {
	type deepDoc struct{}
	s := NewReflectStrategy()
	tt := reflect.TypeOf((***deepDoc)(nil))

	// 65537 and 1 collide when the depth is narrowed to 16 bits.
	if got, _ := s.TryResolveType(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 1 })); got != "" {
		t.Fatalf("MaxUnwrap=1: got %q, want empty", got)
	}
	if got, _ := s.TryResolveType(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 65537 })); got != "deepDoc" {
		t.Fatalf("MaxUnwrap=65537: got %q, want %q", got, "deepDoc")
	}
}

func TestDefaultIndexStrategy(t *testing.T) {
	s := NewDefaultIndexStrategy()
	tt := reflect.TypeOf(BlogPost{})

	if got, ok := s.TryResolveType(tt, cfg()); ok || got != "" {
		t.Fatalf("no defaults: got (%q,%v), want ('',false)", got, ok)
	}
	if got, ok := s.TryResolveType(tt, cfg(func(c *apis.Config) { c.DefaultIndex = "docs" })); !ok || got != "docs" {
		t.Fatalf("default index: got (%q,%v), want (docs,true)", got, ok)
	}
	got, ok := s.TryResolve(&BlogPost{}, cfg(func(c *apis.Config) {
		c.InferIndexFromType = true
		c.PluralizeTypeNames = true
	}))
	if !ok || got != "blogposts" {
		t.Fatalf("inferred index: got (%q,%v), want (blogposts,true)", got, ok)
	}
	got, ok = s.TryResolveType(tt, cfg(func(c *apis.Config) {
		c.InferIndexFromType = true
		c.TypeNameCase = apis.CaseSnake
	}))
	if !ok || got != "blog_post" {
		t.Fatalf("inferred snake index: got (%q,%v), want (blog_post,true)", got, ok)
	}
}

// This test stresses the memoization and Normalize path under concurrency.
func TestReflectStrategy_Concurrent(t *testing.T) {
	s := NewReflectStrategy()

	types := []reflect.Type{
		reflect.TypeOf(BlogPost{}),
		reflect.TypeOf(&BlogPost{}),
		reflect.TypeOf(map[string]BlogPost{}),
		reflect.TypeOf(Page[int]{}),
		reflect.TypeOf(0),
	}
	configs := []apis.Config{
		cfg(),
		cfg(func(c *apis.Config) { c.TypeNameCase = apis.CaseSnake; c.PluralizeTypeNames = true }),
	}
	expect := [][]string{
		{"blogPost", "blogPost", "blogPost", "page", "int"},
		{"blog_posts", "blog_posts", "blog_posts", "pages", "ints"},
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan string, workers)

	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			c := w % len(configs)
			for i := 0; i < 2000; i++ {
				idx := i % len(types)
				got, ok := s.TryResolveType(types[idx], configs[c])
				if !ok || got != expect[c][idx] {
					errCh <- got
					return
				}
			}
		}(w)
	}

	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatalf("concurrent resolve mismatch: got=%q", e)
	}
}

func BenchmarkReflectStrategy_ByType(b *testing.B) {
	s := NewReflectStrategy()
	types := []reflect.Type{
		reflect.TypeOf(BlogPost{}),
		reflect.TypeOf([]*BlogPost{}),
		reflect.TypeOf(Page[int]{}),
	}
	conf := cfg(func(c *apis.Config) { c.TypeNameCase = apis.CaseSnake })
	for _, t0 := range types {
		s.TryResolveType(t0, conf)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.TryResolveType(types[i%len(types)], conf)
	}
}
