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
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/go-playground/validator/v10"

	"dirpx.dev/docroute/apis"
)

var (
	// ErrInvalidSettings is returned when settings fail validation.
	ErrInvalidSettings = errors.New("docroute(config): invalid settings")
	// ErrUnknownNameCase is returned for an unrecognized type name case.
	ErrUnknownNameCase = errors.New("docroute(config): unknown type name case")
)

// indexNamePattern encodes the server-side index naming rules: lowercase
// only, none of \ / * ? " < > | , # : or whitespace, must not start with
// - _ or +, must not be "." or "..", at most 255 characters.
var indexNamePattern = regexp2.MustCompile(
	`^(?![-_+])(?!\.{1,2}$)[^A-Z\\/*?"<>|\s,#:]{1,255}$`, regexp2.None)

// identifierPattern matches a Go identifier.
var identifierPattern = regexp2.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`, regexp2.None)

func init() {
	indexNamePattern.MatchTimeout = 50 * time.Millisecond
	identifierPattern.MatchTimeout = 50 * time.Millisecond

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = validate.RegisterValidation("index_name", func(fl validator.FieldLevel) bool {
		return ValidIndexName(fl.Field().String())
	})
	_ = validate.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return match(identifierPattern, fl.Field().String())
	})
}

// validate is shared by settings and config validation.
var validate = validator.New()

// ValidIndexName reports whether name is acceptable as an index name.
func ValidIndexName(name string) bool {
	return match(indexNamePattern, name)
}

func match(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// Validate checks a programmatic configuration with the same rules that
// apply to settings files.
func Validate(cfg apis.Config) error {
	var msgs []string
	if err := validate.Var(cfg.DefaultIndex, "omitempty,index_name"); err != nil {
		msgs = append(msgs, "default_index: "+describe(err))
	}
	if err := validate.Var(cfg.IDField, "omitempty,identifier"); err != nil {
		msgs = append(msgs, "id_field: "+describe(err))
	}
	if cfg.TypeNameCase < apis.CaseCamel || cfg.TypeNameCase > apis.CasePreserve {
		msgs = append(msgs, "type_name_case: "+ErrUnknownNameCase.Error())
	}
	if cfg.MaxUnwrap < 0 {
		msgs = append(msgs, "max_unwrap: must be at least 0")
	}
	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(msgs, "; "))
	}
	return nil
}

// translate flattens validator errors into a single ErrInvalidSettings.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	msgs := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msgs = append(msgs, ve.Field()+": "+formatFieldError(ve))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(msgs, "; "))
}

// describe renders the first field error of a validator.Var call.
func describe(err error) string {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) && len(valErrs) > 0 {
		return formatFieldError(valErrs[0])
	}
	return err.Error()
}

// formatFieldError converts a validator.FieldError to a human-readable message.
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "index_name":
		return fmt.Sprintf("%q is not a valid index name", fe.Value())
	case "identifier":
		return fmt.Sprintf("%q is not a valid field name", fe.Value())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
