package secure

import (
	"strings"
	"unicode"
)

// trimCollapse trims leading/trailing whitespace and collapses internal
// runs of whitespace into a single space.
func trimCollapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripRunes removes every rune of cutset and all whitespace from s.
func stripRunes(s, cutset string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune(cutset, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// printableNoSpace reports whether every rune is printable and none is
// whitespace. Used for tokens, keys and identifiers.
func printableNoSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// noControl reports whether s is free of control characters.
func noControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
