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
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"dirpx.dev/docroute/apis"
)

// fakeInferrer answers from fixed tables and records what it was asked.
type fakeInferrer struct {
	indexOf map[reflect.Type]string
	typeOf  map[reflect.Type]string
	ids     map[any]string
	calls   []string
}

func (f *fakeInferrer) IndexName(m apis.IndexMarker) string {
	f.calls = append(f.calls, "IndexName")
	if m.Name() != "" {
		return m.Name()
	}
	if m.Type() != nil {
		return f.indexOf[m.Type()]
	}
	return ""
}

func (f *fakeInferrer) IndexNameOf(t reflect.Type) string {
	f.calls = append(f.calls, "IndexNameOf")
	return f.indexOf[t]
}

func (f *fakeInferrer) TypeName(m apis.TypeMarker) string {
	f.calls = append(f.calls, "TypeName")
	if m.Name() != "" {
		return m.Name()
	}
	if m.Type() != nil {
		return f.typeOf[m.Type()]
	}
	return ""
}

func (f *fakeInferrer) TypeNameOf(t reflect.Type) string {
	f.calls = append(f.calls, "TypeNameOf")
	return f.typeOf[t]
}

func (f *fakeInferrer) ID(v any) string {
	f.calls = append(f.calls, "ID")
	return f.ids[v]
}

type Project struct{ Key string }

type Commit struct{ Sha string }

func newFake() *fakeInferrer {
	return &fakeInferrer{
		indexOf: map[reflect.Type]string{
			reflect.TypeFor[Project](): "project",
			reflect.TypeFor[Commit]():  "commits",
		},
		typeOf: map[reflect.Type]string{
			reflect.TypeFor[Project](): "doc",
			reflect.TypeFor[Commit]():  "commit",
		},
		ids: map[any]string{
			Project{Key: "p1"}: "p1",
			Commit{Sha: "abc"}: "abc",
		},
	}
}

func TestSetRouteParameters_ExplicitIDWins(t *testing.T) {
	inf := newFake()
	p := &DocumentOptionalPath{ID: "7", IDFrom: Project{Key: "p1"}}

	var info PathInfo
	SetRouteParameters(p, inf, &info)

	require.Equal(t, "7", info.ID)
	require.NotContains(t, inf.calls, "ID")
}

func TestSetRouteParameters_IDFromObject(t *testing.T) {
	inf := newFake()
	p := &DocumentOptionalPath{IDFrom: Project{Key: "p1"}}

	var info PathInfo
	SetRouteParameters(p, inf, &info)

	require.Equal(t, "p1", info.ID)
}

func TestSetRouteParameters_EmptyDescriptor(t *testing.T) {
	inf := newFake()
	info := PathInfo{Index: "stale", Type: "stale", ID: "stale"}

	SetRouteParameters(&DocumentOptionalPath{}, inf, &info)

	if diff := cmp.Diff(PathInfo{}, info); diff != "" {
		t.Fatalf("PathInfo mismatch (-want +got):\n%s", diff)
	}
}

func TestSetRouteParametersFor_StaticTypeDefaults(t *testing.T) {
	inf := newFake()

	var info PathInfo
	SetRouteParametersFor[Project](&DocumentOptionalPath{}, inf, &info)

	require.Equal(t, PathInfo{Index: "project", Type: "doc"}, info)
}

func TestSetRouteParametersFor_MarkersBeatStaticType(t *testing.T) {
	inf := newFake()
	p := &DocumentOptionalPath{
		Index: apis.IndexNamed("archive"),
		Type:  apis.TypeFor[Commit](),
	}

	var info PathInfo
	SetRouteParametersFor[Project](p, inf, &info)

	require.Equal(t, "archive", info.Index)
	require.Equal(t, "commit", info.Type)
	require.NotContains(t, inf.calls, "IndexNameOf")
	require.NotContains(t, inf.calls, "TypeNameOf")
}

func TestSetRouteParametersFor_InterfaceIsNoStaticType(t *testing.T) {
	inf := newFake()

	var info PathInfo
	SetRouteParametersFor[any](&DocumentOptionalPath{IDFrom: Commit{Sha: "abc"}}, inf, &info)

	require.Equal(t, PathInfo{ID: "abc"}, info)
	require.NotContains(t, inf.calls, "IndexNameOf")
}

func TestSetRouteParameters_UnknownTypeMarkerIsEmpty(t *testing.T) {
	inf := newFake()
	p := &DocumentOptionalPath{Index: apis.IndexFor[int](), Type: apis.TypeFor[int]()}

	var info PathInfo
	SetRouteParameters(p, inf, &info)

	require.Empty(t, info.Index)
	require.Empty(t, info.Type)
}

func TestSetRequiredRouteParameters(t *testing.T) {
	inf := newFake()

	var info PathInfo
	err := SetRequiredRouteParametersFor[Project](&DocumentOptionalPath{}, inf, &info)
	require.ErrorIs(t, err, ErrIncompletePath)
	require.Contains(t, err.Error(), "missing id")
	require.Equal(t, "project", info.Index)

	err = SetRequiredRouteParametersFor[Project](&DocumentOptionalPath{ID: "1"}, inf, &info)
	require.NoError(t, err)

	err = SetRequiredRouteParameters(&DocumentOptionalPath{}, inf, &info)
	require.True(t, errors.Is(err, ErrIncompletePath))
	require.Contains(t, err.Error(), "missing index, type, id")
}
