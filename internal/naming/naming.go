// Package naming provides the casing transforms used across code generation.
package naming

import (
	"regexp"
	"strings"
)

var (
	// First pass splits an uppercase run followed by a lowercase word
	// ("FooBARBaz" -> "Foo_BARBaz" -> handled fully by the second pass),
	// second pass splits plain lower-to-upper boundaries ("fooBar").
	acronymBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	caseBoundary    = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ToSnakeCase converts a PascalCase or camelCase identifier to snake_case.
// Both regex passes are required: the first handles acronym runs
// ("FooBARBaz" -> "foo_bar_baz"), the second simple transitions
// ("fooBar" -> "foo_bar").
func ToSnakeCase(s string) string {
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = caseBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// ToUpperSnakeCase converts an identifier to UPPER_SNAKE_CASE.
func ToUpperSnakeCase(s string) string {
	return strings.ToUpper(ToSnakeCase(s))
}

// ToCamelCase lowercases the first character only, leaving the rest intact.
func ToCamelCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Capitalize uppercases the first character only.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// GetterName returns the Java getter name for a field: "is" prefix for
// Boolean-typed fields, "get" otherwise.
func GetterName(fieldName, typeTag string) string {
	if typeTag == "Boolean" {
		return "is" + Capitalize(fieldName)
	}
	return "get" + Capitalize(fieldName)
}

// SetterName returns the Java setter name for a field.
func SetterName(fieldName string) string {
	return "set" + Capitalize(fieldName)
}
