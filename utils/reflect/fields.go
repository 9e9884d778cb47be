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

package reflect

import (
	"reflect"
	"strings"
	"sync"
)

// IDTag is the struct tag key that marks a field as the document id:
//
//	type Post struct {
//	    Slug string `docroute:"id"`
//	}
const IDTag = "docroute"

// fieldKey identifies a memoized field lookup.
type fieldKey struct {
	t    reflect.Type
	name string
	tag  bool
}

// fieldCache caches field index paths by (struct type, name or tag).
// A nil slice records a miss.
var fieldCache sync.Map // key: fieldKey, val: []int

// TaggedField returns the index path of the first exported field of struct
// type t (including promoted fields) tagged `docroute:"id"`.
func TaggedField(t reflect.Type) ([]int, bool) {
	return lookupField(fieldKey{t: t, tag: true})
}

// FieldByNameFold returns the index path of the exported field of struct
// type t whose name equals name under Unicode case folding. Exact matches
// win over folded ones.
func FieldByNameFold(t reflect.Type, name string) ([]int, bool) {
	if name == "" {
		return nil, false
	}
	return lookupField(fieldKey{t: t, name: name})
}

func lookupField(key fieldKey) ([]int, bool) {
	if key.t == nil || key.t.Kind() != reflect.Struct {
		return nil, false
	}
	if v, ok := fieldCache.Load(key); ok {
		idx := v.([]int)
		return idx, idx != nil
	}
	idx := findField(key)
	fieldCache.Store(key, idx)
	return idx, idx != nil
}

// findField walks fields breadth-first so shallower fields shadow embedded
// ones, matching Go's selector rules closely enough for id lookup.
func findField(key fieldKey) []int {
	type item struct {
		t     reflect.Type
		index []int
	}
	var folded []int
	queue := []item{{t: key.t}}
	seen := map[reflect.Type]bool{}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next.t] {
			continue
		}
		seen[next.t] = true
		for i := 0; i < next.t.NumField(); i++ {
			f := next.t.Field(i)
			index := append(append([]int(nil), next.index...), i)
			if f.Anonymous {
				ft := f.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					queue = append(queue, item{t: ft, index: index})
				}
			}
			if !f.IsExported() {
				continue
			}
			if key.tag {
				if hasIDTag(f.Tag.Get(IDTag)) {
					return index
				}
				continue
			}
			if f.Name == key.name {
				return index
			}
			if folded == nil && strings.EqualFold(f.Name, key.name) {
				folded = index
			}
		}
	}
	return folded
}

func hasIDTag(tag string) bool {
	for _, part := range strings.Split(tag, ",") {
		if strings.TrimSpace(part) == "id" {
			return true
		}
	}
	return false
}

// FieldValue follows index through v, dereferencing embedded pointers. It
// reports false when a nil embedded pointer is crossed.
func FieldValue(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

// Indirect dereferences pointers and interfaces until it reaches a
// concrete value. It reports false for nil.
func Indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}
