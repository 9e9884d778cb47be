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
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
)

var paramEncoder = schema.NewEncoder()

func init() {
	paramEncoder.RegisterEncoder(List(nil), func(v reflect.Value) string {
		return strings.Join(v.Interface().(List), ",")
	})
}

// List is a multi-valued parameter rendered as one comma-separated value,
// e.g. fields=title,author.
type List []string

// DocumentParameters are the query parameters shared by single-document
// requests. Zero values are omitted.
type DocumentParameters struct {
	// Routing overrides the shard routing value.
	Routing string `schema:"routing,omitempty"`
	// Parent is the id of the parent document.
	Parent string `schema:"parent,omitempty"`
	// Preference selects the shard copies to query.
	Preference string `schema:"preference,omitempty"`
	// Refresh is "true", "false" or "wait_for".
	Refresh string `schema:"refresh,omitempty"`
	// Version enables optimistic concurrency control.
	Version int64 `schema:"version,omitempty"`
	// VersionType is "internal", "external" or "external_gte".
	VersionType string `schema:"version_type,omitempty"`
	// Timeout bounds the operation, e.g. "1m".
	Timeout string `schema:"timeout,omitempty"`
	// Fields restricts the returned stored fields.
	Fields List `schema:"fields,omitempty"`
}

// EncodeParameters encodes a parameters struct (or pointer to one) tagged
// with `schema:"name,omitempty"`. Nil yields empty values.
func EncodeParameters(params any) (url.Values, error) {
	values := url.Values{}
	if params == nil {
		return values, nil
	}
	if v := reflect.ValueOf(params); v.Kind() == reflect.Pointer && v.IsNil() {
		return values, nil
	}
	if err := paramEncoder.Encode(params, values); err != nil {
		return nil, fmt.Errorf("docroute(route): encode parameters: %w", err)
	}
	return values, nil
}
