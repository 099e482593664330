// Package harmony answers whether two garment colors work together. The
// rule set is evaluated in a fixed order, short-circuiting on the first
// match: exact equality, neutral membership, the directional complement
// table, then harmony family co-membership.
package harmony

import "strings"

// neutrals go with everything.
var neutrals = map[string]bool{
	"black": true,
	"white": true,
	"gray":  true,
	"beige": true,
	"cream": true,
	"navy":  true,
	"brown": true,
	"khaki": true,
}

// complements is keyed by the FIRST argument of Match only. This
// directionality is preserved from the reference rule set: if only one
// side of a pair has a table entry, Match(a, b) and Match(b, a) can
// disagree at this step. The "any" entry matches every color.
var complements = map[string][]string{
	"blue":   {"orange", "coral", "mustard", "beige", "white", "gray"},
	"red":    {"black", "white", "navy", "beige", "denim"},
	"green":  {"brown", "beige", "white", "gold", "mustard"},
	"yellow": {"purple", "navy", "gray", "white", "denim"},
	"pink":   {"gray", "navy", "white", "green", "denim"},
	"purple": {"yellow", "mustard", "white", "gray"},
	"orange": {"blue", "navy", "white", "brown"},
	"maroon": {"beige", "gold", "cream", "white"},
	"teal":   {"coral", "peach", "white", "gold"},
	"olive":  {"rust", "tan", "cream", "white"},
	"denim":  {"any"},
}

// families are the five harmony families. Two colors that appear together
// in any one family are compatible.
var families = map[string]map[string]bool{
	"neutral": neutrals,
	"warm": {
		"red":     true,
		"orange":  true,
		"yellow":  true,
		"coral":   true,
		"mustard": true,
		"maroon":  true,
		"rust":    true,
		"gold":    true,
		"peach":   true,
	},
	"cool": {
		"blue":     true,
		"green":    true,
		"teal":     true,
		"purple":   true,
		"navy":     true,
		"mint":     true,
		"lavender": true,
		"denim":    true,
	},
	"earth": {
		"olive":   true,
		"brown":   true,
		"tan":     true,
		"rust":    true,
		"khaki":   true,
		"mustard": true,
		"beige":   true,
	},
	"pastel": {
		"pink":     true,
		"lavender": true,
		"mint":     true,
		"peach":    true,
		"lilac":    true,
		"cream":    true,
	},
}

// Match reports whether two colors are compatible. It is pure and total:
// it never errors, and an empty or missing color is treated as a wildcard.
func Match(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	// Unknown color is a wildcard
	if a == "" || b == "" {
		return true
	}

	// Monochrome
	if a == b {
		return true
	}

	if neutrals[a] || neutrals[b] {
		return true
	}

	// Directional lookup keyed by the first argument only
	for _, pair := range complements[a] {
		if pair == "any" || pair == b {
			return true
		}
	}

	for _, family := range families {
		if family[a] && family[b] {
			return true
		}
	}

	return false
}

// Neutral reports whether a color belongs to the neutral family.
func Neutral(color string) bool {
	return neutrals[strings.ToLower(strings.TrimSpace(color))]
}
