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
	"dirpx.dev/docroute/apis"
)

const (
	// DefaultDefaultIndex represents the default for DefaultIndex.
	// Empty means types without a mapping resolve to no index.
	DefaultDefaultIndex = ""
	// DefaultInferIndexFromType represents the default for InferIndexFromType.
	DefaultInferIndexFromType = false
	// DefaultTypeNameCase represents the default for TypeNameCase.
	DefaultTypeNameCase = apis.CaseCamel
	// DefaultPluralizeTypeNames represents the default for PluralizeTypeNames.
	DefaultPluralizeTypeNames = false
	// DefaultIDField represents the default for IDField.
	// Matching is case-insensitive, so "Id" and "id" fields are found too.
	DefaultIDField = "ID"
	// DefaultIncludeBuiltins represents the default for IncludeBuiltins.
	// When true, built-in types will be included.
	DefaultIncludeBuiltins = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultMapPreferElem represents the default for MapPreferElem.
	// When true, map value types are preferred when searching for named inner types.
	DefaultMapPreferElem = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.IDField == "" {
		cfg.IDField = DefaultIDField
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		DefaultIndex:       DefaultDefaultIndex,
		InferIndexFromType: DefaultInferIndexFromType,
		TypeNameCase:       DefaultTypeNameCase,
		PluralizeTypeNames: DefaultPluralizeTypeNames,
		IDField:            DefaultIDField,
		IncludeBuiltins:    DefaultIncludeBuiltins,
		MaxUnwrap:          DefaultMaxUnwrap,
		MapPreferElem:      DefaultMapPreferElem,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithDefaultIndex sets the DefaultIndex option.
func WithDefaultIndex(index string) Option {
	return func(c *apis.Config) {
		c.DefaultIndex = index
	}
}

// WithInferIndexFromType sets the InferIndexFromType option.
func WithInferIndexFromType(infer bool) Option {
	return func(c *apis.Config) {
		c.InferIndexFromType = infer
	}
}

// WithTypeNameCase sets the TypeNameCase option.
func WithTypeNameCase(nc apis.NameCase) Option {
	return func(c *apis.Config) {
		c.TypeNameCase = nc
	}
}

// WithPluralizeTypeNames sets the PluralizeTypeNames option.
func WithPluralizeTypeNames(pluralize bool) Option {
	return func(c *apis.Config) {
		c.PluralizeTypeNames = pluralize
	}
}

// WithIDField sets the IDField option.
// An empty name resets to the default.
func WithIDField(field string) Option {
	return func(c *apis.Config) {
		if field == "" {
			field = DefaultIDField
		}
		c.IDField = field
	}
}

// WithIncludeBuiltins sets the IncludeBuiltins option.
func WithIncludeBuiltins(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeBuiltins = include
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMapPreferElem sets the MapPreferElem option.
func WithMapPreferElem(prefer bool) Option {
	return func(c *apis.Config) {
		c.MapPreferElem = prefer
	}
}

// ParseNameCase maps the settings-file spelling of a NameCase back to its
// value. The empty string selects the default.
func ParseNameCase(s string) (apis.NameCase, error) {
	switch s {
	case "":
		return DefaultTypeNameCase, nil
	case "camel":
		return apis.CaseCamel, nil
	case "lower":
		return apis.CaseLower, nil
	case "snake":
		return apis.CaseSnake, nil
	case "preserve":
		return apis.CasePreserve, nil
	}
	return 0, ErrUnknownNameCase
}
