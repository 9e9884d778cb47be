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

import "reflect"

// Inferrer turns markers, types and objects into the strings that make up a
// request path. Implementations never fail: anything that cannot be
// inferred yields "".
type Inferrer interface {
	// IndexName resolves m: explicit names verbatim, type markers through
	// IndexNameOf, unset markers to "".
	IndexName(m IndexMarker) string
	// IndexNameOf returns the default index of t.
	IndexNameOf(t reflect.Type) string
	// TypeName resolves m: explicit names verbatim, type markers through
	// TypeNameOf, unset markers to "".
	TypeName(m TypeMarker) string
	// TypeNameOf returns the default document type name of t.
	TypeNameOf(t reflect.Type) string
	// ID derives a document id from v, or "" for nil or id-less values.
	ID(v any) string
}
