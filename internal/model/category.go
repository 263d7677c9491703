package model

import "strings"

// DefaultCategories is the fixed, non-deletable category set every
// installation starts with, in display order.
var DefaultCategories = []string{
	"food",
	"transport",
	"shopping",
	"entertainment",
	"bills",
	"health",
	"education",
	"other",
}

// NormalizeCategory canonicalizes a category name for storage and
// comparison. Categories are stored lower-cased and compared
// case-insensitively.
func NormalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsDefaultCategory reports whether name is one of the fixed defaults.
func IsDefaultCategory(name string) bool {
	normalized := NormalizeCategory(name)
	for _, c := range DefaultCategories {
		if c == normalized {
			return true
		}
	}
	return false
}
