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

// IndexMarker is either an explicit index name or a type whose index is
// inferred later. The zero value is unset.
type IndexMarker struct {
	name string
	typ  reflect.Type
}

// IndexNamed returns a marker holding the explicit index name. An empty
// name yields an unset marker.
func IndexNamed(name string) IndexMarker {
	return IndexMarker{name: name}
}

// IndexOf returns a marker whose index is inferred from t.
func IndexOf(t reflect.Type) IndexMarker {
	return IndexMarker{typ: t}
}

// IndexFor returns a marker whose index is inferred from T.
func IndexFor[T any]() IndexMarker {
	return IndexMarker{typ: reflect.TypeFor[T]()}
}

// Name returns the explicit name, or "" for type markers.
func (m IndexMarker) Name() string { return m.name }

// Type returns the referenced type, or nil for named markers.
func (m IndexMarker) Type() reflect.Type { return m.typ }

// IsSet reports whether the marker carries a name or a type.
func (m IndexMarker) IsSet() bool { return m.name != "" || m.typ != nil }

// String renders the marker for diagnostics.
func (m IndexMarker) String() string {
	return markerString(m.name, m.typ)
}

// TypeMarker is either an explicit document type name or a Go type whose
// document type name is inferred later. The zero value is unset.
type TypeMarker struct {
	name string
	typ  reflect.Type
}

// TypeNamed returns a marker holding the explicit type name. An empty name
// yields an unset marker.
func TypeNamed(name string) TypeMarker {
	return TypeMarker{name: name}
}

// TypeOf returns a marker whose type name is inferred from t.
func TypeOf(t reflect.Type) TypeMarker {
	return TypeMarker{typ: t}
}

// TypeFor returns a marker whose type name is inferred from T.
func TypeFor[T any]() TypeMarker {
	return TypeMarker{typ: reflect.TypeFor[T]()}
}

// Name returns the explicit name, or "" for type markers.
func (m TypeMarker) Name() string { return m.name }

// Type returns the referenced type, or nil for named markers.
func (m TypeMarker) Type() reflect.Type { return m.typ }

// IsSet reports whether the marker carries a name or a type.
func (m TypeMarker) IsSet() bool { return m.name != "" || m.typ != nil }

// String renders the marker for diagnostics.
func (m TypeMarker) String() string {
	return markerString(m.name, m.typ)
}

func markerString(name string, t reflect.Type) string {
	switch {
	case name != "":
		return name
	case t != nil:
		return "<" + t.String() + ">"
	default:
		return "<unset>"
	}
}
