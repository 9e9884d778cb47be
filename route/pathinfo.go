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
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrIncompletePath is returned by strict resolution when a path segment
// could not be resolved.
var ErrIncompletePath = errors.New("docroute(route): incomplete path")

var validate = validator.New()

// PathInfo is the resolved request target handed to a transport. Segments
// may be empty: optional resolution never fails.
type PathInfo struct {
	// Method is the HTTP method, e.g. "GET".
	Method string
	// Index is the resolved index segment.
	Index string `validate:"required"`
	// Type is the resolved document type segment.
	Type string `validate:"required"`
	// ID is the resolved document id segment.
	ID string `validate:"required"`
	// Params holds the encoded request parameters.
	Params url.Values
}

// Path renders /{index}/{type}/{id}, skipping empty segments and escaping
// each one. An empty PathInfo renders "/".
func (p *PathInfo) Path() string {
	var b strings.Builder
	for _, seg := range [...]string{p.Index, p.Type, p.ID} {
		if seg == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// RequestURI renders Path followed by the encoded query string, if any.
func (p *PathInfo) RequestURI() string {
	if len(p.Params) == 0 {
		return p.Path()
	}
	return p.Path() + "?" + p.Params.Encode()
}

// String renders "METHOD /path?query".
func (p *PathInfo) String() string {
	if p.Method == "" {
		return p.RequestURI()
	}
	return p.Method + " " + p.RequestURI()
}

// Validate reports ErrIncompletePath naming every empty segment.
func (p *PathInfo) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("%w: %v", ErrIncompletePath, err)
	}
	missing := make([]string, 0, len(valErrs))
	for _, fe := range valErrs {
		missing = append(missing, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: missing %s", ErrIncompletePath, strings.Join(missing, ", "))
}
