// Package entities contains core domain data structures.
package entities

import "strings"

// Category is the two-valued attribute that splits a roster into pools.
type Category string

// Default category tokens.
const (
	CategoryMale   Category = "male"
	CategoryFemale Category = "female"
)

// Entity represents a roster member. Names are not unique; two entities
// with the same name are distinct individuals and are told apart by pointer.
type Entity struct {
	Name     string   `json:"name"`
	Category Category `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"` // Secondary attributes (e.g. class, department)
	Line     int      `json:"line,omitempty"` // Source row (1-indexed, 0 if unknown)
}

// Tag returns the tag at position i, or "" when the entity has fewer tags.
func (e *Entity) Tag(i int) string {
	if i < 0 || i >= len(e.Tags) {
		return ""
	}
	return e.Tags[i]
}

// NormalizeCategory lower-cases and trims a raw category token.
func NormalizeCategory(raw string) Category {
	return Category(strings.ToLower(strings.TrimSpace(raw)))
}

// CategorySet is the ordered pair of recognized category tokens.
// The first token names pool 1, the second pool 2.
type CategorySet [2]Category

// DefaultCategories returns the male/female set.
func DefaultCategories() CategorySet {
	return CategorySet{CategoryMale, CategoryFemale}
}

// NewCategorySet builds a set from raw tokens, normalizing both.
func NewCategorySet(first, second string) CategorySet {
	return CategorySet{NormalizeCategory(first), NormalizeCategory(second)}
}

// Index returns 0 or 1 for a recognized category and -1 otherwise.
func (s CategorySet) Index(c Category) int {
	switch c {
	case "":
		return -1
	case s[0]:
		return 0
	case s[1]:
		return 1
	default:
		return -1
	}
}

// Contains reports whether c is one of the two recognized tokens.
func (s CategorySet) Contains(c Category) bool {
	return s.Index(c) >= 0
}

// Valid reports whether the set holds two distinct non-empty tokens.
func (s CategorySet) Valid() bool {
	return s[0] != "" && s[1] != "" && s[0] != s[1]
}
