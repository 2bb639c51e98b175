// Package textfmt holds display fallbacks used when profile data is missing.
package textfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const unknownInitials = "?"

// Initials returns the upper-cased first letters of up to two words of name.
// A blank name yields "?".
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.'
	})
	if len(words) == 0 {
		return unknownInitials
	}

	var b strings.Builder
	for i, w := range words {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// OrPlaceholder returns s, or placeholder when s is blank
func OrPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// FullName joins first and last name, skipping blanks
func FullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
