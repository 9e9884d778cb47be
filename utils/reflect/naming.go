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
	"path"
	"reflect"
	"strings"
)

// BaseName returns the identifier of a named type without its generic
// instantiation suffix: "Page[int]" -> "Page".
func BaseName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return StripTypeParams(t.Name())
}

// QualifiedName returns "pkg.Type" for named types declared in a package,
// the bare name for builtins and "" for unnamed types. The package part is
// the last element of the import path.
func QualifiedName(t reflect.Type) string {
	name := BaseName(t)
	if name == "" {
		return ""
	}
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + name
	}
	return name
}

// StripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func StripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
