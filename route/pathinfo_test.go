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
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathInfo_Path(t *testing.T) {
	tests := []struct {
		name string
		info PathInfo
		want string
	}{
		{"full", PathInfo{Index: "blog", Type: "post", ID: "1"}, "/blog/post/1"},
		{"no id", PathInfo{Index: "blog", Type: "post"}, "/blog/post"},
		{"no type", PathInfo{Index: "blog", ID: "1"}, "/blog/1"},
		{"empty", PathInfo{}, "/"},
		{"escaped", PathInfo{Index: "blog", Type: "post", ID: "a/b c"}, "/blog/post/a%2Fb%20c"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.info.Path())
		})
	}
}

func TestPathInfo_String(t *testing.T) {
	info := PathInfo{
		Method: "PUT",
		Index:  "blog",
		Type:   "post",
		ID:     "1",
		Params: url.Values{"refresh": {"true"}, "routing": {"u1"}},
	}
	require.Equal(t, "/blog/post/1?refresh=true&routing=u1", info.RequestURI())
	require.Equal(t, "PUT /blog/post/1?refresh=true&routing=u1", info.String())

	info.Method = ""
	info.Params = nil
	require.Equal(t, "/blog/post/1", info.String())
}

func TestPathInfo_Validate(t *testing.T) {
	require.NoError(t, (&PathInfo{Index: "a", Type: "b", ID: "c"}).Validate())

	err := (&PathInfo{Index: "a"}).Validate()
	require.ErrorIs(t, err, ErrIncompletePath)
	require.EqualError(t, err, "docroute(route): incomplete path: missing type, id")
}
