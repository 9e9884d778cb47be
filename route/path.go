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
	"reflect"

	"dirpx.dev/docroute/apis"
)

// DocumentOptionalPath describes a request of the form /{index}/{type}/{id}
// in which every part may be left unset. ID takes precedence over IDFrom.
type DocumentOptionalPath struct {
	// Index selects the index by name or by type.
	Index apis.IndexMarker
	// Type selects the document type by name or by type.
	Type apis.TypeMarker
	// ID is the explicit document id.
	ID string
	// IDFrom is an object the id is derived from when ID is empty.
	IDFrom any
}

// SetRouteParameters resolves p into info without a static document type:
// unset markers stay empty.
func SetRouteParameters(p *DocumentOptionalPath, inf apis.Inferrer, info *PathInfo) {
	info.Index = inf.IndexName(p.Index)
	info.Type = inf.TypeName(p.Type)
	info.ID = resolveID(p, inf)
}

// SetRouteParametersFor resolves p into info, falling back to the defaults
// of T for unset index and type markers.
func SetRouteParametersFor[T any](p *DocumentOptionalPath, inf apis.Inferrer, info *PathInfo) {
	setRouteParameters(p, reflect.TypeFor[T](), inf, info)
}

// setRouteParameters falls back to static when a marker is unset. A nil
// or interface static type means "no static type".
func setRouteParameters(p *DocumentOptionalPath, static reflect.Type, inf apis.Inferrer, info *PathInfo) {
	if static != nil && static.Kind() == reflect.Interface {
		static = nil
	}

	index := ""
	switch {
	case p.Index.IsSet():
		index = inf.IndexName(p.Index)
	case static != nil:
		index = inf.IndexNameOf(static)
	}

	typ := ""
	switch {
	case p.Type.IsSet():
		typ = inf.TypeName(p.Type)
	case static != nil:
		typ = inf.TypeNameOf(static)
	}

	info.Index = index
	info.Type = typ
	info.ID = resolveID(p, inf)
}

func resolveID(p *DocumentOptionalPath, inf apis.Inferrer) string {
	if p.ID != "" {
		return p.ID
	}
	if p.IDFrom != nil {
		return inf.ID(p.IDFrom)
	}
	return ""
}

// SetRequiredRouteParameters is the strict sibling of SetRouteParameters:
// info is populated the same way, then ErrIncompletePath is returned if any
// segment is empty.
func SetRequiredRouteParameters(p *DocumentOptionalPath, inf apis.Inferrer, info *PathInfo) error {
	SetRouteParameters(p, inf, info)
	return info.Validate()
}

// SetRequiredRouteParametersFor is the strict sibling of
// SetRouteParametersFor.
func SetRequiredRouteParametersFor[T any](p *DocumentOptionalPath, inf apis.Inferrer, info *PathInfo) error {
	SetRouteParametersFor[T](p, inf, info)
	return info.Validate()
}
