package outfit

import (
	"sync"
	"testing"

	"github.com/fernwood/dresscode/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewGenerator(NewSeededShuffler(42))
}

func TestGenerate_TooFewGarments(t *testing.T) {
	g := newTestGenerator()

	assert.Empty(t, g.Generate(nil, "casual", 3))
	assert.Empty(t, g.Generate([]model.Garment{{ID: "1", Color: "red", Category: "tops"}}, "casual", 3))
}

func TestGenerate_SingleCompatiblePair(t *testing.T) {
	g := newTestGenerator()
	wardrobe := []model.Garment{
		{ID: "top", Title: "White tee", Color: "white", Category: "t-shirt"},
		{ID: "bottom", Title: "Navy chinos", Color: "navy", Category: "chinos"},
	}

	outfits := g.Generate(wardrobe, "casual", 5)
	require.Len(t, outfits, 1)
	require.Len(t, outfits[0].Items, 2)
	assert.Equal(t, "top", outfits[0].Items[0].ID)
	assert.Equal(t, "bottom", outfits[0].Items[1].ID)
}

func TestGenerate_ShoeExtension(t *testing.T) {
	g := newTestGenerator()
	wardrobe := []model.Garment{
		{ID: "top", Color: "white", Category: "shirt"},
		{ID: "bottom", Color: "navy", Category: "trousers"},
		{ID: "shoe", Color: "white", Category: "sneakers"},
	}

	outfits := g.Generate(wardrobe, "casual", 1)
	require.Len(t, outfits, 1)
	require.Len(t, outfits[0].Items, 3)
	assert.Equal(t, "shoe", outfits[0].Items[2].ID)
}

func TestGenerate_OuterwearOnlyForLayeredOccasions(t *testing.T) {
	wardrobe := []model.Garment{
		{ID: "top", Color: "white", Category: "shirt"},
		{ID: "bottom", Color: "navy", Category: "trousers"},
		{ID: "coat", Color: "black", Category: "coat"},
	}

	g := newTestGenerator()
	office := g.Generate(wardrobe, "office", 1)
	require.Len(t, office, 1)
	require.Len(t, office[0].Items, 3)
	assert.Equal(t, "coat", office[0].Items[2].ID)

	casual := g.Generate(wardrobe, "casual", 1)
	require.Len(t, casual, 1)
	assert.Len(t, casual[0].Items, 2)
}

func TestGenerate_DressAsCompleteLook(t *testing.T) {
	g := newTestGenerator()
	wardrobe := []model.Garment{
		{ID: "dress", Color: "red", Category: "dress"},
		{ID: "coat", Color: "black", Category: "jacket"},
	}

	outfits := g.Generate(wardrobe, "casual", 1)
	require.Len(t, outfits, 1)

	// Outerwear attaches to the dress path regardless of occasion.
	require.Len(t, outfits[0].Items, 2)
	assert.Equal(t, "dress", outfits[0].Items[0].ID)
	assert.Equal(t, "coat", outfits[0].Items[1].ID)
}

func TestGenerate_FallbackPairTier(t *testing.T) {
	g := newTestGenerator()

	// Two shoes: no top+bottom pair and no dress, so the pair fallback
	// kicks in on color compatibility alone.
	wardrobe := []model.Garment{
		{ID: "a", Color: "white", Category: "sneakers"},
		{ID: "b", Color: "black", Category: "boots"},
	}

	outfits := g.Generate(wardrobe, "casual", 5)
	require.Len(t, outfits, 1)
	assert.Len(t, outfits[0].Items, 2)
	assert.Greater(t, outfits[0].Score, 0.0)
}

func TestGenerate_FallbackShuffleTier(t *testing.T) {
	g := newTestGenerator()

	// Mutually incompatible colors in unknown slots: the last-resort tier
	// ignores color entirely and emits min(3, len) items with score 0.
	wardrobe := []model.Garment{
		{ID: "a", Color: "coral", Category: "hat"},
		{ID: "b", Color: "teal", Category: "hat"},
		{ID: "c", Color: "chartreuse", Category: "hat"},
		{ID: "d", Color: "lilac", Category: "hat"},
	}

	outfits := g.Generate(wardrobe, "casual", 5)
	require.Len(t, outfits, 1)
	assert.Len(t, outfits[0].Items, 3)
	assert.InDelta(t, 0.0, outfits[0].Score, 0.001)
}

func TestGenerate_OfficeEndToEnd(t *testing.T) {
	g := newTestGenerator()
	wardrobe := []model.Garment{
		{ID: "top", Title: "White shirt", Color: "white", Category: "tops"},
		{ID: "bottom", Title: "Navy slacks", Color: "navy", Category: "bottoms"},
		{ID: "shoe", Title: "White sneakers", Color: "white", Category: "shoes"},
	}

	outfits := g.Generate(wardrobe, "office", 3)
	require.NotEmpty(t, outfits)

	found := false
	for _, o := range outfits {
		if len(o.Items) == 3 {
			found = true
			assert.GreaterOrEqual(t, o.Score, 60.0)
		}
	}
	assert.True(t, found, "expected a three-item top+bottom+shoe candidate")
}

func TestGenerate_CountLimits(t *testing.T) {
	g := newTestGenerator()

	var wardrobe []model.Garment
	colors := []string{"white", "black", "gray", "navy", "beige"}
	for i, c := range colors {
		wardrobe = append(wardrobe,
			model.Garment{ID: "t" + c, Color: c, Category: "tops"},
			model.Garment{ID: "b" + c, Color: colors[(i+1)%len(colors)], Category: "bottoms"},
		)
	}

	// 5 tops x 5 bottoms, all neutral-compatible: 25 candidates, top 20
	// pool, sliced to the requested count.
	outfits := g.Generate(wardrobe, "casual", 4)
	assert.Len(t, outfits, 4)

	all := g.Generate(wardrobe, "casual", 50)
	assert.Len(t, all, 20)
}

func TestGenerate_ConcurrentRequests(t *testing.T) {
	// One generator serves many requests; run with -race.
	g := NewGenerator(NewShuffler())
	wardrobe := []model.Garment{
		{ID: "t1", Color: "white", Category: "tops"},
		{ID: "t2", Color: "black", Category: "tops"},
		{ID: "b1", Color: "navy", Category: "bottoms"},
		{ID: "b2", Color: "gray", Category: "bottoms"},
		{ID: "s1", Color: "white", Category: "shoes"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				outfits := g.Generate(wardrobe, "casual", 3)
				assert.NotEmpty(t, outfits)
			}
		}()
	}
	wg.Wait()
}

func TestGenerate_SeededDeterminism(t *testing.T) {
	wardrobe := []model.Garment{
		{ID: "t1", Color: "white", Category: "tops"},
		{ID: "t2", Color: "black", Category: "tops"},
		{ID: "b1", Color: "navy", Category: "bottoms"},
		{ID: "b2", Color: "gray", Category: "bottoms"},
	}

	first := NewGenerator(NewSeededShuffler(7)).Generate(wardrobe, "casual", 2)
	second := NewGenerator(NewSeededShuffler(7)).Generate(wardrobe, "casual", 2)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key(), second[i].Key())
	}
}
