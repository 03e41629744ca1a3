package domain

import (
	"regexp"
	"strings"
)

var codeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// NormalizeCode trims and upper-cases a user supplied code.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidCode reports whether s is a three letter upper-case currency code.
func ValidCode(s string) bool {
	return codeRe.MatchString(s)
}
