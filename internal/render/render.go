// Package render performs literal $TOKEN substitution over template text.
//
// Substitution is a single regexp pass over the original text: each token is
// looked up in the mapping at match time and the replacement value is never
// re-scanned, so a value containing a $TOKEN-shaped substring cannot corrupt
// later replacements.
package render

import (
	"regexp"
	"slices"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\$[A-Z][A-Z0-9_]*`)

// Render replaces every $TOKEN occurrence that has a mapping in vars with its
// value. Tokens without a mapping are left untouched.
func Render(text string, vars map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		if value, ok := vars[strings.TrimPrefix(match, "$")]; ok {
			return value
		}
		return match
	})
}

// Tokens returns the distinct token names in text, without the $ prefix, in
// order of first appearance.
func Tokens(text string) []string {
	var names []string

	for _, match := range tokenPattern.FindAllString(text, -1) {
		name := strings.TrimPrefix(match, "$")
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	return names
}

// Unresolved describes a token in template text that has no mapping.
type Unresolved struct {
	Name   string
	Offset int // byte offset of the $ in the original text
}

// FirstUnresolved returns the first token in text with no entry in vars, or
// nil if every token is mapped.
func FirstUnresolved(text string, vars map[string]string) *Unresolved {
	loc := tokenPattern.FindAllStringIndex(text, -1)

	for _, span := range loc {
		name := text[span[0]+1 : span[1]]
		if _, ok := vars[name]; !ok {
			return &Unresolved{Name: name, Offset: span[0]}
		}
	}

	return nil
}
