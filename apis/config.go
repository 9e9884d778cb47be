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

// NameCase selects how reflected Go type names are turned into document
// type names.
type NameCase int

const (
	// CaseCamel lowercases the leading rune: "BlogPost" -> "blogPost".
	CaseCamel NameCase = iota
	// CaseLower lowercases the whole name: "BlogPost" -> "blogpost".
	CaseLower
	// CaseSnake splits words with underscores: "BlogPost" -> "blog_post".
	CaseSnake
	// CasePreserve keeps the Go identifier as is.
	CasePreserve
)

// String returns the settings-file spelling of c.
func (c NameCase) String() string {
	switch c {
	case CaseCamel:
		return "camel"
	case CaseLower:
		return "lower"
	case CaseSnake:
		return "snake"
	case CasePreserve:
		return "preserve"
	default:
		return "unknown"
	}
}

// Config carries the read-only connection settings values that influence
// name and id inference. It is passed by value, is comparable, and should be
// treated as immutable by implementations.
type Config struct {
	// DefaultIndex is the index used for any type without an explicit
	// index mapping. Empty means "no default".
	DefaultIndex string

	// InferIndexFromType derives an index name from the type name when
	// neither a mapping nor DefaultIndex applies. Index names are always
	// lowercased.
	InferIndexFromType bool

	// TypeNameCase controls how reflected type names are formatted.
	TypeNameCase NameCase

	// PluralizeTypeNames appends an English plural suffix to reflected
	// type names ("post" -> "posts").
	PluralizeTypeNames bool

	// IDField is the conventional identifier field name, matched
	// case-insensitively against exported struct fields.
	IDField string

	// IncludeBuiltins controls whether builtin/no-package named types
	// (e.g., "int", "string") are returned as names. If false, such cases yield "".
	IncludeBuiltins bool

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map).
	// Acts as a safety guard against pathological nesting.
	MaxUnwrap int

	// MapPreferElem controls which side of map[K]V is considered “primary”
	// when searching for a nearest named inner type. If true, prefer V; otherwise K.
	MapPreferElem bool
}
