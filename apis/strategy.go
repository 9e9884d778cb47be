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

package apis

import (
	"reflect"
)

// Strategy is one step of a per-kind resolution chain. The default chains
// are:
//
//	KindIndex: IndexNamer -> index registry -> DefaultIndex
//	KindType:  TypeNamer -> type-name registry -> reflected type name
//	KindID:    Identifier -> id-field registry -> tagged field -> IDField
//
// Strategies are stateless apart from memo tables and safe for concurrent
// use.
type Strategy interface {
	// TryResolve resolves v. For KindID the result is a document id.
	// handled=false passes v to the next strategy; handled=true ends the
	// chain, even with an empty result.
	TryResolve(v any, cfg Config) (name string, handled bool)

	// TryResolveType resolves from the type alone. Strategies that need an
	// instance, such as the id strategies, report handled=false.
	TryResolveType(t reflect.Type, cfg Config) (name string, handled bool)
}
