package outfit

import (
	"testing"

	"github.com/fernwood/dresscode/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestScore_BasePresenceOnly(t *testing.T) {
	// Two items with incompatible colors and no occasion: 5+5, no pair bonus.
	items := []model.Garment{
		{Color: "coral", Category: "tops"},
		{Color: "teal", Category: "bottoms"},
	}

	assert.InDelta(t, 10.0, Score(items, ""), 0.001)
}

func TestScore_CompatiblePair(t *testing.T) {
	// Two color-compatible items: 5+5+10.
	items := []model.Garment{
		{Color: "red", Category: "tops"},
		{Color: "orange", Category: "bottoms"},
	}

	assert.InDelta(t, 20.0, Score(items, ""), 0.001)
}

func TestScore_AllUnorderedPairs(t *testing.T) {
	// Three mutually compatible neutrals: 3*5 base + C(3,2)*10 pairs = 45.
	items := []model.Garment{
		{Color: "black", Category: "tops"},
		{Color: "white", Category: "bottoms"},
		{Color: "gray", Category: "shoes"},
	}

	assert.InDelta(t, 45.0, Score(items, ""), 0.001)
}

func TestScore_OccasionFacets(t *testing.T) {
	// Office prefers tops/bottoms/outerwear/shoes, formal or minimalist
	// style, and any color.
	items := []model.Garment{
		{Color: "white", Category: "shirt", Style: "formal"},
		{Color: "navy", Category: "trousers"},
	}

	// 5+5 base, +10 compatible pair, +15+15 preferred slots, +5+5
	// wildcard color, +20 formal style on the shirt.
	assert.InDelta(t, 80.0, Score(items, "office"), 0.001)
}

func TestScore_UnrecognizedOccasionSkipsFacets(t *testing.T) {
	items := []model.Garment{
		{Color: "white", Category: "shirt", Style: "formal"},
		{Color: "navy", Category: "trousers"},
	}

	assert.InDelta(t, 20.0, Score(items, "commute"), 0.001)
}

func TestScore_OccasionCaseInsensitive(t *testing.T) {
	items := []model.Garment{
		{Color: "white", Category: "shirt"},
	}

	assert.InDelta(t, Score(items, "OFFICE"), Score(items, "office"), 0.001)
}

func TestScore_EmptyItems(t *testing.T) {
	assert.InDelta(t, 0.0, Score(nil, "office"), 0.001)
}
