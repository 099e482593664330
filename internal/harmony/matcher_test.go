package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_Wildcards(t *testing.T) {
	colors := []string{"black", "red", "chartreuse", "", "BLUE"}

	for _, c := range colors {
		assert.True(t, Match("", c), "empty first argument should match %q", c)
		assert.True(t, Match(c, ""), "empty second argument should match %q", c)
	}
}

func TestMatch_Monochrome(t *testing.T) {
	colors := []string{"black", "red", "teal", "chartreuse", "denim"}

	for _, c := range colors {
		assert.True(t, Match(c, c), "color %q should match itself", c)
	}

	// Case-insensitive equality
	assert.True(t, Match("Red", "RED"))
}

func TestMatch_Neutrals(t *testing.T) {
	others := []string{"red", "teal", "chartreuse", "pink", "olive"}

	for _, n := range []string{"black", "white", "gray", "beige", "cream", "navy", "brown", "khaki"} {
		for _, x := range others {
			assert.True(t, Match(n, x), "neutral %q should match %q", n, x)
			assert.True(t, Match(x, n), "%q should match neutral %q", x, n)
		}
	}
}

func TestMatch_ComplementTableIsDirectional(t *testing.T) {
	// pink -> green exists in the table; green -> pink does not, and the
	// pair shares no harmony family. The lookup is keyed by the first
	// argument only, so the two orders disagree. Preserved behavior, not
	// a bug.
	assert.True(t, Match("pink", "green"))
	assert.False(t, Match("green", "pink"))

	assert.True(t, Match("teal", "coral"))
	assert.False(t, Match("coral", "teal"))
}

func TestMatch_WildcardEntry(t *testing.T) {
	// denim carries the "any" entry
	assert.True(t, Match("denim", "chartreuse"))
	assert.True(t, Match("denim", "gold"))
}

func TestMatch_Families(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"red", "orange", true},     // warm
		{"blue", "green", true},     // cool
		{"olive", "rust", true},     // earth
		{"pink", "lavender", true},  // pastel
		{"red", "mint", false},       // warm vs pastel
		{"chartreuse", "red", false}, // unknown non-empty color fails closed
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(tt.a, tt.b), "Match(%q, %q)", tt.a, tt.b)
	}
}

func TestNeutral(t *testing.T) {
	assert.True(t, Neutral("navy"))
	assert.True(t, Neutral(" Black "))
	assert.False(t, Neutral("red"))
}
