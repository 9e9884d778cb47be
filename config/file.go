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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/docroute/apis"
)

// Settings is the content of a settings file: connection settings values
// plus per-type mappings keyed by qualified type name ("pkg.Type").
type Settings struct {
	// Config holds the connection settings values.
	Config apis.Config
	// Indices maps type keys to index names.
	Indices map[string]string
	// TypeNames maps type keys to document type names.
	TypeNames map[string]string
	// IDFields maps type keys to the name of their identifier field.
	IDFields map[string]string
}

// Mappings returns the mapping table of kind.
func (s *Settings) Mappings(kind apis.Kind) map[string]string {
	switch kind {
	case apis.KindIndex:
		return s.Indices
	case apis.KindType:
		return s.TypeNames
	case apis.KindID:
		return s.IDFields
	}
	return nil
}

// fileSettings is the YAML shape of Settings.
type fileSettings struct {
	DefaultIndex       string            `yaml:"default_index,omitempty" validate:"omitempty,index_name"`
	InferIndexFromType bool              `yaml:"infer_index_from_type,omitempty"`
	TypeNameCase       string            `yaml:"type_name_case,omitempty" validate:"omitempty,oneof=camel lower snake preserve"`
	PluralizeTypeNames bool              `yaml:"pluralize_type_names,omitempty"`
	IDField            string            `yaml:"id_field,omitempty" validate:"omitempty,identifier"`
	IncludeBuiltins    *bool             `yaml:"include_builtins,omitempty"`
	MaxUnwrap          int               `yaml:"max_unwrap,omitempty" validate:"gte=0,lte=64"`
	MapPreferElem      *bool             `yaml:"map_prefer_elem,omitempty"`
	Indices            map[string]string `yaml:"indices,omitempty" validate:"dive,keys,required,endkeys,index_name"`
	TypeNames          map[string]string `yaml:"type_names,omitempty" validate:"dive,keys,required,endkeys,required"`
	IDFields           map[string]string `yaml:"id_fields,omitempty" validate:"dive,keys,required,endkeys,identifier"`
}

// DefaultSettings returns settings holding DefaultConfig and no mappings.
func DefaultSettings() *Settings {
	return &Settings{Config: DefaultConfig()}
}

// LoadFile reads and parses the settings file at path.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML settings. Unknown keys are rejected; omitted keys keep
// their defaults.
func Parse(data []byte) (*Settings, error) {
	var fs fileSettings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := translate(validate.Struct(fs)); err != nil {
		return nil, err
	}

	nc, err := ParseNameCase(fs.TypeNameCase)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithDefaultIndex(fs.DefaultIndex),
		WithInferIndexFromType(fs.InferIndexFromType),
		WithTypeNameCase(nc),
		WithPluralizeTypeNames(fs.PluralizeTypeNames),
		WithIDField(fs.IDField),
	}
	if fs.MaxUnwrap > 0 {
		opts = append(opts, WithMaxUnwrap(fs.MaxUnwrap))
	}
	if fs.IncludeBuiltins != nil {
		opts = append(opts, WithIncludeBuiltins(*fs.IncludeBuiltins))
	}
	if fs.MapPreferElem != nil {
		opts = append(opts, WithMapPreferElem(*fs.MapPreferElem))
	}

	return &Settings{
		Config:    NewConfig(opts...),
		Indices:   fs.Indices,
		TypeNames: fs.TypeNames,
		IDFields:  fs.IDFields,
	}, nil
}

// Encode renders s as YAML. Every connection setting is written out, so
// the output documents the effective values.
func Encode(s *Settings) ([]byte, error) {
	if err := Validate(s.Config); err != nil {
		return nil, err
	}
	include, prefer := s.Config.IncludeBuiltins, s.Config.MapPreferElem
	fs := fileSettings{
		DefaultIndex:       s.Config.DefaultIndex,
		InferIndexFromType: s.Config.InferIndexFromType,
		TypeNameCase:       s.Config.TypeNameCase.String(),
		PluralizeTypeNames: s.Config.PluralizeTypeNames,
		IDField:            s.Config.IDField,
		IncludeBuiltins:    &include,
		MaxUnwrap:          s.Config.MaxUnwrap,
		MapPreferElem:      &prefer,
		Indices:            s.Indices,
		TypeNames:          s.TypeNames,
		IDFields:           s.IDFields,
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fs); err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return buf.Bytes(), nil
}
