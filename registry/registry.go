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

// Package registry maps document types to fixed index names, type names
// or id fields, bypassing reflection-based inference.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"dirpx.dev/docroute/apis"
	"dirpx.dev/docroute/config"
	uref "dirpx.dev/docroute/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("docroute(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("docroute(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different name.
	ErrConflictingRegistration = errors.New("docroute(registry): conflicting type registration")
	// ErrInvalidIndexName is returned by index registries for names the
	// server would reject.
	ErrInvalidIndexName = errors.New("docroute(registry): invalid index name")
	// ErrUnknownField is returned by id registries when the named field
	// does not exist on the type.
	ErrUnknownField = errors.New("docroute(registry): unknown id field")
)

// New constructs the Registry of kind. Types are normalized according to
// cfg (MaxUnwrap and MapPreferElem), so Post, *Post and []Post share one
// entry.
func New(kind apis.Kind, cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{kind: kind, cfg: cfg}
}

// registry is a Registry backed by sync.Map for lock-free lookups.
type registry struct {
	// kind decides how names are validated.
	kind apis.Kind
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu serializes writers and guards count.
	mu sync.Mutex
	// m maps normalized reflect.Type to registered name.
	m sync.Map // map[reflect.Type]string
	// count tracks the number of registered entries.
	count int
}

// Register associates the nearest named type of t with name. Registering
// the same pair twice is a no-op.
func (r *registry) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}
	base, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return fmt.Errorf("docroute(registry): register %v: %w", t, err)
	}
	if err := r.check(base, name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.m.Load(base); ok {
		if old.(string) == name {
			return nil
		}
		return fmt.Errorf("%w: %s %v is already %q", ErrConflictingRegistration, r.kind, base, old)
	}
	r.m.Store(base, name)
	r.count++
	return nil
}

// check validates name for the registry kind.
func (r *registry) check(base reflect.Type, name string) error {
	switch r.kind {
	case apis.KindIndex:
		if !config.ValidIndexName(name) {
			return fmt.Errorf("%w: %q", ErrInvalidIndexName, name)
		}
	case apis.KindID:
		if _, ok := uref.FieldByNameFold(base, name); !ok {
			return fmt.Errorf("%w: %v has no exported field %q", ErrUnknownField, base, name)
		}
	}
	return nil
}

// Lookup returns the name registered for the nearest named type of t.
func (r *registry) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	base, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}
	if v, ok := r.m.Load(base); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot sorted by type string.
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{Type: key.(reflect.Type), Name: value.(string)})
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type.String() < entries[j].Type.String()
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Range(func(key, _ any) bool {
		r.m.Delete(key)
		return true
	})
	r.count = 0
}
