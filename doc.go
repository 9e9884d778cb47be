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

// Package docroute computes the URL path of single-document requests to a
// document-oriented search engine: /{index}/{type}/{id}.
//
// A request is described by a route.DocumentOptionalPath (or the fluent
// route.Descriptor). Each part is optional. An index or type can be given
// by name or by Go type; the id can be given verbatim or derived from a
// source object. Whatever is left out falls back to what can be inferred
// from the document type the request is made for, and otherwise stays
// empty:
//
//	info := docroute.ResolveFor[BlogPost](&route.DocumentOptionalPath{
//	    IDFrom: post,
//	})
//	fmt.Println(info.Path()) // "/blog/blogPost/42"
//
// # Inference
//
// Names and ids come from three independent layers, one per apis.Kind.
// Each layer is a Registry of explicit per-type mappings plus a Resolver
// that tries strategies in order:
//
//   - index: apis.IndexNamer on the type, the index registry, then
//     Config.DefaultIndex (or, with InferIndexFromType, the lowercased
//     type name).
//
//   - type: apis.TypeNamer on the type, the type-name registry, then the
//     reflected type name formatted by Config.TypeNameCase and optionally
//     pluralized.
//
//   - id: apis.Identifier on the value, the field registered in the
//     id-field registry, the field tagged docroute:"id", then the field
//     named Config.IDField (case-insensitive).
//
// # Snapshot
//
// The package keeps one process-wide snapshot: Config, an opaque ext
// payload, a Builder and the three layers. Reads (Resolve, IndexName, ID,
// Inferrer, ...) load the snapshot atomically and never lock. Writes
// (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver, SetAll) take
// a build mutex, rebuild every unpinned layer through the Builder and
// publish a new snapshot.
//
// SetRegistry and SetResolver pin the layer they install; pinned layers
// survive rebuilds until UnpinRegistry or UnpinResolver. The default
// Builder migrates registry entries into rebuilt registries, so mappings
// made with MapIndex, MapTypeName or MapIDField survive SetConfig.
//
// # Settings
//
// Connection settings and mappings can be loaded from YAML with
// config.LoadFile and published with ApplySettings. Mapping keys are
// qualified type names ("blog.Post").
//
// # Logging
//
// Snapshot rebuilds and mapping registrations are logged at debug level
// through log/slog; see SetLogger.
package docroute
