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

package route

import (
	"net/http"
	"reflect"
	"strconv"

	"dirpx.dev/docroute/apis"
)

// Descriptor fluently configures a single-document request on documents of
// type T. Index and type default to those inferred for T; use
// Descriptor[any] for requests without a static document type.
//
//	info, err := route.NewDescriptor[BlogPost]().
//	    Object(post).
//	    Params(route.DocumentParameters{Routing: "user-1"}).
//	    ToPathInfo(inf)
//
// A Descriptor is meant for one request and is not safe for concurrent
// mutation.
type Descriptor[T any] struct {
	path   DocumentOptionalPath
	method string
	params any
}

// NewDescriptor returns an empty descriptor for T using GET.
func NewDescriptor[T any]() *Descriptor[T] {
	return &Descriptor[T]{method: http.MethodGet}
}

// Index sets an explicit index name.
func (d *Descriptor[T]) Index(name string) *Descriptor[T] {
	d.path.Index = apis.IndexNamed(name)
	return d
}

// IndexType infers the index from t instead of T.
func (d *Descriptor[T]) IndexType(t reflect.Type) *Descriptor[T] {
	d.path.Index = apis.IndexOf(t)
	return d
}

// Type sets an explicit document type name.
func (d *Descriptor[T]) Type(name string) *Descriptor[T] {
	d.path.Type = apis.TypeNamed(name)
	return d
}

// TypeOf infers the document type name from t instead of T.
func (d *Descriptor[T]) TypeOf(t reflect.Type) *Descriptor[T] {
	d.path.Type = apis.TypeOf(t)
	return d
}

// ID sets an explicit document id.
func (d *Descriptor[T]) ID(id string) *Descriptor[T] {
	d.path.ID = id
	return d
}

// IDInt sets a numeric document id.
func (d *Descriptor[T]) IDInt(id int64) *Descriptor[T] {
	return d.ID(strconv.FormatInt(id, 10))
}

// Object derives the id from obj unless an explicit id is set.
func (d *Descriptor[T]) Object(obj T) *Descriptor[T] {
	d.path.IDFrom = obj
	return d
}

// Method sets the HTTP method.
func (d *Descriptor[T]) Method(m string) *Descriptor[T] {
	d.method = m
	return d
}

// Params sets the request parameters struct; see EncodeParameters.
func (d *Descriptor[T]) Params(p any) *Descriptor[T] {
	d.params = p
	return d
}

// DocumentPath exposes the underlying path description.
func (d *Descriptor[T]) DocumentPath() *DocumentOptionalPath {
	return &d.path
}

// SetRouteParameters resolves the path parts into info.
func (d *Descriptor[T]) SetRouteParameters(inf apis.Inferrer, info *PathInfo) {
	setRouteParameters(&d.path, reflect.TypeFor[T](), inf, info)
}

// ToPathInfo resolves the descriptor into a new PathInfo. Missing parts are
// left empty; only parameter encoding can fail.
func (d *Descriptor[T]) ToPathInfo(inf apis.Inferrer) (*PathInfo, error) {
	params, err := EncodeParameters(d.params)
	if err != nil {
		return nil, err
	}
	info := &PathInfo{Method: d.method, Params: params}
	d.SetRouteParameters(inf, info)
	return info, nil
}

// ToRequiredPathInfo is ToPathInfo followed by PathInfo.Validate.
func (d *Descriptor[T]) ToRequiredPathInfo(inf apis.Inferrer) (*PathInfo, error) {
	info, err := d.ToPathInfo(inf)
	if err != nil {
		return nil, err
	}
	if err := info.Validate(); err != nil {
		return info, err
	}
	return info, nil
}

// IndexFor infers the index of d from A instead of T.
func IndexFor[A, T any](d *Descriptor[T]) *Descriptor[T] {
	d.path.Index = apis.IndexFor[A]()
	return d
}

// TypeFor infers the document type name of d from A instead of T.
func TypeFor[A, T any](d *Descriptor[T]) *Descriptor[T] {
	d.path.Type = apis.TypeFor[A]()
	return d
}
