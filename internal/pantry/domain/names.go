package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims, collapses inner whitespace and title-cases a resource
// name so "milk ", "Milk" and "MILK" collide under the per-family unique
// index. An empty result means the name was blank.
func NormalizeName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// Casers carry state and must not be shared between goroutines.
	return cases.Title(language.Und).String(s)
}

// NormalizeEmail only trims. Matching stays case sensitive.
func NormalizeEmail(s string) string {
	return strings.TrimSpace(s)
}

// DefaultFamilyName is used at signup when neither an invitation nor a
// family name was given.
func DefaultFamilyName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		local = email
	}
	return local + "'s Family"
}
