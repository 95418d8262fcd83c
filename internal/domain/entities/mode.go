package entities

import "strings"

// Mode selects how a roster is loaded and paired.
type Mode string

// Pairing modes.
const (
	// ModeUnconstrained shuffles a single pool and pairs neighbours.
	ModeUnconstrained Mode = "unconstrained"
	// ModeSimple pairs two category pools index by index.
	ModeSimple Mode = "simple"
	// ModeScored pairs two category pools greedily, preferring differing tags.
	ModeScored Mode = "scored"
)

// ValidModes lists all supported modes.
var ValidModes = []Mode{ModeUnconstrained, ModeSimple, ModeScored}

// ParseMode converts a raw string into a Mode. The second result is false
// for unknown values.
func ParseMode(raw string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	return m, m.IsValid()
}

// IsValid reports whether m is a supported mode.
func (m Mode) IsValid() bool {
	for _, v := range ValidModes {
		if m == v {
			return true
		}
	}
	return false
}

// RequiresCategory reports whether rows must carry a category field.
func (m Mode) RequiresCategory() bool {
	return m == ModeSimple || m == ModeScored
}

// MinFields returns the minimum row width the mode accepts, given the
// number of tag columns tracked in scored mode.
func (m Mode) MinFields(tagCount int) int {
	switch m {
	case ModeSimple:
		return 2
	case ModeScored:
		return 2 + tagCount
	default:
		return 1
	}
}
