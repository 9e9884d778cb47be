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

// Kind selects one of the independent inference layers. Each kind owns its
// own Registry and Resolver.
type Kind int

const (
	// KindIndex resolves index names.
	KindIndex Kind = iota
	// KindType resolves document type names.
	KindType
	// KindID resolves document ids from instances.
	KindID
)

// Kinds lists every Kind in layer order.
var Kinds = [...]Kind{KindIndex, KindType, KindID}

// String returns a short lowercase label for k.
func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindType:
		return "type"
	case KindID:
		return "id"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindIndex && k <= KindID
}
