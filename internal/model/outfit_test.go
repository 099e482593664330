package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outfitWith(score float64, ids ...string) Outfit {
	items := make([]Garment, len(ids))
	for i, id := range ids {
		items[i] = Garment{ID: id}
	}
	return Outfit{Items: items, Score: score}
}

func TestOutfits_SortDescendingWithStableTies(t *testing.T) {
	outfits := Outfits{
		outfitWith(10, "b"),
		outfitWith(30, "c"),
		outfitWith(10, "a"),
	}

	outfits.Sort()

	assert.Equal(t, float64(30), outfits[0].Score)
	// Ties order by key so repeated sorts are deterministic
	assert.Equal(t, "a", outfits[1].Items[0].ID)
	assert.Equal(t, "b", outfits[2].Items[0].ID)
}

func TestOutfits_TopN(t *testing.T) {
	outfits := Outfits{
		outfitWith(10, "a"),
		outfitWith(30, "b"),
		outfitWith(20, "c"),
	}

	top := outfits.TopN(2)

	require.Len(t, top, 2)
	assert.Equal(t, float64(30), top[0].Score)
	assert.Equal(t, float64(20), top[1].Score)
}

func TestOutfits_TopN_Bounds(t *testing.T) {
	outfits := Outfits{outfitWith(10, "a")}

	assert.Empty(t, outfits.TopN(0))
	assert.Len(t, outfits.TopN(5), 1)
}

func TestOutfit_Key(t *testing.T) {
	o := outfitWith(0, "g1", "g2")
	assert.Equal(t, "g1+g2", o.Key())
}

func TestGarment_GenerateHash(t *testing.T) {
	a := Garment{UserID: "u1", Title: "White tee", Color: "white", Category: "t-shirt"}
	b := Garment{UserID: "u1", Title: "White tee", Color: "white", Category: "t-shirt"}
	c := Garment{UserID: "u2", Title: "White tee", Color: "white", Category: "t-shirt"}

	assert.Equal(t, a.GenerateHash(), b.GenerateHash())
	assert.NotEqual(t, a.GenerateHash(), c.GenerateHash())
}
