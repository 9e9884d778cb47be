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

package docroute

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"dirpx.dev/docroute/apis"
	"dirpx.dev/docroute/builder"
	"dirpx.dev/docroute/config"
	"dirpx.dev/docroute/infer"
	"dirpx.dev/docroute/route"
	uref "dirpx.dev/docroute/utils/reflect"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	for _, kind := range apis.Kinds {
		l := &s.layers[kind]
		l.reg = s.bld.BuildRegistry(kind, s.cfg, nil, nil)
		l.res = s.bld.BuildResolver(kind, s.cfg, l.reg, nil, nil)
	}
	s.inf = newInferrer(s)
	st.Store(s)
}

var (
	// ErrNilRegistry is raised when a builder returns a nil registry.
	ErrNilRegistry = errors.New("docroute: builder returned nil registry")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("docroute: builder returned nil resolver")
	// ErrInvalidKind is returned for a kind outside apis.Kinds.
	ErrInvalidKind = errors.New("docroute: invalid kind")
	// ErrUnmatchedMapping is returned by ApplySettings for settings keys
	// that match none of the given types.
	ErrUnmatchedMapping = errors.New("docroute: settings mapping matches no type")
	// ErrAmbiguousType is returned by ApplySettings when distinct types share
	// a qualified name.
	ErrAmbiguousType = errors.New("docroute: qualified type name is ambiguous")
	// ErrNilSettings is returned by ApplySettings for nil settings.
	ErrNilSettings = errors.New("docroute: nil settings")
)

// SetLogger replaces the logger used for snapshot and mapping events.
// A nil logger restores slog.Default.
func SetLogger(l *slog.Logger) {
	lg.Store(l)
}

func logger() *slog.Logger {
	if l := lg.Load(); l != nil {
		return l
	}
	return slog.Default()
}

var lg atomic.Pointer[slog.Logger]

// Inferrer returns the inferrer of the current snapshot.
func Inferrer() apis.Inferrer {
	return st.Load().inf
}

// IndexName resolves an index marker against the current snapshot.
func IndexName(m apis.IndexMarker) string {
	return st.Load().inf.IndexName(m)
}

// TypeName resolves a type marker against the current snapshot.
func TypeName(m apis.TypeMarker) string {
	return st.Load().inf.TypeName(m)
}

// ID derives the document id of v.
func ID(v any) string {
	return st.Load().inf.ID(v)
}

// IndexNameFor returns the default index of T.
func IndexNameFor[T any]() string {
	return infer.IndexNameFor[T](st.Load().inf)
}

// TypeNameFor returns the default document type name of T.
func TypeNameFor[T any]() string {
	return infer.TypeNameFor[T](st.Load().inf)
}

// Resolve resolves p without a static document type.
func Resolve(p *route.DocumentOptionalPath) route.PathInfo {
	var info route.PathInfo
	route.SetRouteParameters(p, st.Load().inf, &info)
	return info
}

// ResolveFor resolves p with T as the static document type.
func ResolveFor[T any](p *route.DocumentOptionalPath) route.PathInfo {
	var info route.PathInfo
	route.SetRouteParametersFor[T](p, st.Load().inf, &info)
	return info
}

// MapIndex maps t to an explicit index name.
func MapIndex(t reflect.Type, index string) error {
	return register(apis.KindIndex, t, index)
}

// MapTypeName maps t to an explicit document type name.
func MapTypeName(t reflect.Type, name string) error {
	return register(apis.KindType, t, name)
}

// MapIDField names the struct field of t that holds the document id.
func MapIDField(t reflect.Type, field string) error {
	return register(apis.KindID, t, field)
}

func register(kind apis.Kind, t reflect.Type, name string) error {
	if err := st.Load().layers[kind].reg.Register(t, name); err != nil {
		return err
	}
	logger().Debug("docroute: mapping registered", "kind", kind.String(), "type", t.String(), "name", name)
	return nil
}

// ApplySettings publishes s.Config and registers the mappings of s for
// every type in types whose qualified name ("pkg.Type") is a settings key.
// Keys that match none of types are reported as ErrUnmatchedMapping, and
// distinct types sharing a qualified name as ErrAmbiguousType; all other
// mappings are still registered.
func ApplySettings(s *config.Settings, types ...reflect.Type) error {
	if s == nil {
		return ErrNilSettings
	}
	SetConfig(s.Config)

	var errs []error
	byName := make(map[string]reflect.Type, len(types))
	ambiguous := make(map[string]bool)
	for _, t := range types {
		base, err := uref.Normalize(t, s.Config)
		if err != nil {
			continue
		}
		name := uref.QualifiedName(base)
		if prev, ok := byName[name]; ok && prev != base {
			if !ambiguous[name] {
				errs = append(errs, fmt.Errorf("%w: %q is both %v and %v", ErrAmbiguousType, name, prev, base))
			}
			ambiguous[name] = true
			continue
		}
		byName[name] = base
	}

	for _, kind := range apis.Kinds {
		mappings := s.Mappings(kind)
		keys := make([]string, 0, len(mappings))
		for k := range mappings {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, key := range keys {
			if ambiguous[key] {
				continue
			}
			t, ok := byName[key]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %s %q", ErrUnmatchedMapping, kind, key))
				continue
			}
			if err := register(kind, t, mappings[key]); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// SetAll replaces config, ext and builder at once and rebuilds every layer
// from the new builder. Nil cfg or bld keep the current value; ext is
// always replaced. All pins are cleared.
func SetAll(cfg *apis.Config, ext any, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	next.ext = ext
	for kind := range next.layers {
		next.layers[kind].preg = false
		next.layers[kind].pres = false
	}
	publish(old, &next, "set all")
}

// Config returns the connection settings of the current snapshot.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig publishes cfg and rebuilds the unpinned layers.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.cfg = cfg
	publish(old, &next, "set config")
}

// Builder returns the builder of the current snapshot.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs b and rebuilds the unpinned layers with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.bld = b
	publish(old, &next, "set builder")
}

// SetExt replaces the extension payload handed to the builder and rebuilds
// the unpinned layers.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.ext = ext
	publish(old, &next, "set ext")
}

// ExtAs returns the extension payload as T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// Registry returns the registry of kind, or nil for an invalid kind.
func Registry(kind apis.Kind) apis.Registry {
	if !kind.Valid() {
		return nil
	}
	return st.Load().layers[kind].reg
}

// SetRegistry installs and pins reg as the registry of kind. The resolver
// of kind is rebuilt over reg unless pinned.
func SetRegistry(kind apis.Kind, reg apis.Registry) {
	if reg == nil || !kind.Valid() {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.layers[kind].reg = reg
	next.layers[kind].preg = true
	publish(old, &next, "set registry")
}

// Resolver returns the resolver of kind, or nil for an invalid kind.
func Resolver(kind apis.Kind) apis.Resolver {
	if !kind.Valid() {
		return nil
	}
	return st.Load().layers[kind].res
}

// SetResolver installs and pins res as the resolver of kind.
func SetResolver(kind apis.Kind, res apis.Resolver) {
	if res == nil || !kind.Valid() {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.layers[kind].res = res
	next.layers[kind].pres = true
	publish(old, &next, "set resolver")
}

// IsRegistryPinned reports whether the registry of kind is pinned.
func IsRegistryPinned(kind apis.Kind) bool {
	return kind.Valid() && st.Load().layers[kind].preg
}

// PinRegistry keeps the registry of kind across rebuilds.
func PinRegistry(kind apis.Kind) {
	setPins(kind, func(l *layer) { l.preg = true })
}

// UnpinRegistry lets the registry of kind be rebuilt again.
func UnpinRegistry(kind apis.Kind) {
	setPins(kind, func(l *layer) { l.preg = false })
}

// IsResolverPinned reports whether the resolver of kind is pinned.
func IsResolverPinned(kind apis.Kind) bool {
	return kind.Valid() && st.Load().layers[kind].pres
}

// PinResolver keeps the resolver of kind across rebuilds.
func PinResolver(kind apis.Kind) {
	setPins(kind, func(l *layer) { l.pres = true })
}

// UnpinResolver lets the resolver of kind be rebuilt again.
func UnpinResolver(kind apis.Kind) {
	setPins(kind, func(l *layer) { l.pres = false })
}

// setPins flips pin flags without rebuilding anything.
func setPins(kind apis.Kind, fn func(*layer)) {
	if !kind.Valid() {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	fn(&next.layers[kind])
	st.Store(&next)
}

// publish rebuilds the unpinned layers of next from old and stores it.
// Callers hold buildMu.
func publish(old, next *state, reason string) {
	for _, kind := range apis.Kinds {
		l := &next.layers[kind]
		if !l.preg {
			l.reg = next.bld.BuildRegistry(kind, next.cfg, old.layers[kind].reg, next.ext)
		}
		if !l.pres {
			l.res = next.bld.BuildResolver(kind, next.cfg, l.reg, old.layers[kind].res, next.ext)
		}
		if l.reg == nil {
			panic(ErrNilRegistry)
		}
		if l.res == nil {
			panic(ErrNilResolver)
		}
	}
	next.inf = newInferrer(next)
	st.Store(next)
	logger().Debug("docroute: snapshot published", "reason", reason, "config", fmt.Sprintf("%+v", next.cfg))
}

func newInferrer(s *state) *infer.Inferrer {
	return infer.New(s.cfg,
		s.layers[apis.KindIndex].res,
		s.layers[apis.KindType].res,
		s.layers[apis.KindID].res,
	)
}

// buildMu serializes writers so a partially built snapshot is never
// published.
var buildMu sync.Mutex

// st is the published snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot. Writers copy it, rebuild and swap.
type state struct {
	// cfg is the connection settings.
	cfg apis.Config
	// ext is the opaque builder payload.
	ext any
	// bld builds registries and resolvers.
	bld apis.Builder
	// layers holds one registry/resolver pair per kind.
	layers [len(apis.Kinds)]layer
	// inf answers inference questions over layers.
	inf *infer.Inferrer
}

// layer is the registry/resolver pair of one kind.
type layer struct {
	reg  apis.Registry
	res  apis.Resolver
	preg bool
	pres bool
}
