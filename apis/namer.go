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

// IndexNamer pins the index a document type lives in.
//
// # Overview
//
// IndexNamer is the zero-reflection fast path for index inference. When a
// type implements IndexNamer, the index resolver MUST prefer it over
// registry mappings and connection defaults.
//
// IndexNamer is a type-level contract: the returned name describes where
// every document of the type is stored, not where a particular instance is
// stored. Resolvers MAY call it on a zero value when only a reflect.Type is
// known, so implementations MUST NOT depend on instance state and MUST be
// safe to call on a zero value (including a pointer to a zero value).
//
// # Usage
//
//	type BlogPost struct {
//	    ID    string
//	    Title string
//	}
//
//	func (BlogPost) IndexName() string { return "blog" }
//
// # Contract
//
//   - The returned name SHOULD be a valid index name (lowercase, no path
//     separators or wildcards).
//   - The returned name MUST be deterministic for a given concrete type.
//   - Implementations MUST be safe for concurrent calls and MUST NOT
//     perform blocking operations or I/O.
type IndexNamer interface {
	// IndexName returns the index that stores documents of this type.
	IndexName() string
}

// TypeNamer pins the document type name of a Go type.
//
// Like IndexNamer it is a type-level contract that may be invoked on a
// zero value, and it takes precedence over registry mappings and the
// reflection-derived name.
type TypeNamer interface {
	// TypeName returns the document type name for this type.
	TypeName() string
}

// Identifier exposes the document id of an instance.
//
// # Overview
//
// Identifier is the instance-level counterpart of IndexNamer and
// TypeNamer. It is consulted first when an id has to be derived from an
// object, before any registered or conventional identifier field.
//
//	type BlogPost struct {
//	    Slug string
//	}
//
//	func (p BlogPost) DocumentID() string { return p.Slug }
//
// # Contract
//
//   - An empty return value means "no id"; resolution stops there and does
//     not fall through to field lookups.
//   - Implementations MUST NOT perform blocking operations or I/O.
type Identifier interface {
	// DocumentID returns the id of this document instance.
	DocumentID() string
}

// IndexNamerFunc adapts a plain function to the IndexNamer interface.
type IndexNamerFunc func() string

// IndexName implements IndexNamer for IndexNamerFunc.
func (f IndexNamerFunc) IndexName() string {
	return f()
}

// TypeNamerFunc adapts a plain function to the TypeNamer interface.
type TypeNamerFunc func() string

// TypeName implements TypeNamer for TypeNamerFunc.
func (f TypeNamerFunc) TypeName() string {
	return f()
}

// IdentifierFunc adapts a plain function to the Identifier interface.
type IdentifierFunc func() string

// DocumentID implements Identifier for IdentifierFunc.
func (f IdentifierFunc) DocumentID() string {
	return f()
}
