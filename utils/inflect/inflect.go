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

// Package inflect formats Go identifiers as document type and index names.
package inflect

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"dirpx.dev/docroute/apis"
)

// wordBoundary matches the empty position between two words of a Go
// identifier: "blogPost" -> blog|Post, "HTTPServer" -> HTTP|Server,
// "Post2Tag" -> Post2|Tag.
var wordBoundary = regexp2.MustCompile(`(?<=[\p{Ll}\p{N}])(?=\p{Lu})|(?<=\p{Lu})(?=\p{Lu}\p{Ll})`, regexp2.None)

func init() {
	wordBoundary.MatchTimeout = 50 * time.Millisecond
}

// Format applies nc and, when plural is set, pluralizes the result.
func Format(name string, nc apis.NameCase, plural bool) string {
	if name == "" {
		return ""
	}
	switch nc {
	case apis.CaseLower:
		name = strings.ToLower(name)
	case apis.CaseSnake:
		name = Snake(name)
	case apis.CasePreserve:
	default:
		name = Camel(name)
	}
	if plural {
		name = Pluralize(name)
	}
	return name
}

// Camel lowercases the leading run of upper-case runes, keeping the last
// one of a multi-rune acronym when it starts the next word:
// "BlogPost" -> "blogPost", "HTTPServer" -> "httpServer", "ID" -> "id".
func Camel(s string) string {
	runes := []rune(s)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	switch {
	case n == 0:
		return s
	case n > 1 && n < len(runes) && unicode.IsLower(runes[n]):
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// Snake splits s into words and joins them lowercased with underscores:
// "BlogPost" -> "blog_post", "HTTPServer" -> "http_server".
func Snake(s string) string {
	out, err := wordBoundary.Replace(s, "_", -1, -1)
	if err != nil {
		// Only a match timeout gets here; lowercase is the safe fallback.
		out = s
	}
	return strings.ToLower(out)
}

// Pluralize applies the regular English plural rules to the last word of
// s: "post" -> "posts", "entry" -> "entries", "box" -> "boxes".
func Pluralize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	switch {
	case hasAnySuffix(lower, "s", "x", "z", "ch", "sh"):
		return s + matchCase(s, "es")
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(lower[len(lower)-2]):
		return s[:len(s)-1] + matchCase(s, "ies")
	default:
		return s + matchCase(s, "s")
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}

// matchCase upper-cases suffix when s ends in an upper-case rune.
func matchCase(s, suffix string) string {
	r, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsUpper(r) {
		return strings.ToUpper(suffix)
	}
	return suffix
}
