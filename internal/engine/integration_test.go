package engine_test

import (
	"context"
	"testing"

	"github.com/fernwood/dresscode/internal/engine"
	"github.com/fernwood/dresscode/internal/gaps"
	"github.com/fernwood/dresscode/internal/llm"
	"github.com/fernwood/dresscode/internal/model"
	"github.com/fernwood/dresscode/internal/outfit"
	"github.com/fernwood/dresscode/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedOracle always returns the same completion.
type scriptedOracle struct {
	response string
}

func (s *scriptedOracle) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	return s.response, nil
}

func TestStylist_EndToEnd(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	wardrobe := []model.Garment{
		{Title: "White oxford shirt", Color: "white", Category: "shirt", Style: "formal"},
		{Title: "Navy trousers", Color: "navy", Category: "trousers", Style: "formal"},
		{Title: "Black loafers", Color: "black", Category: "loafers", Style: "formal"},
		{Title: "Gray blazer", Color: "gray", Category: "blazer", Style: "formal"},
	}
	for i := range wardrobe {
		g := wardrobe[i]
		g.ID = uuid.New().String()
		g.UserID = "user-1"
		g.Source = model.GarmentSourceOwned
		g.Hash = g.GenerateHash()
		require.NoError(t, store.SaveGarment(ctx, &g))
	}

	oracle := &scriptedOracle{response: `[{"item": "brown leather belt", "reason": "Completes the office look."}]`}
	identifier := gaps.NewIdentifier(oracle, nil)
	generator := outfit.NewGenerator(outfit.NewSeededShuffler(7))

	stylist, err := engine.New(store, generator, identifier, nil)
	require.NoError(t, err)

	outfits, err := stylist.Suggest(ctx, "user-1", "office", 5)
	require.NoError(t, err)
	require.NotEmpty(t, outfits)

	// Office is a layered occasion, so the best candidate carries shoes
	// and outerwear on top of the base pair.
	assert.Len(t, outfits[0].Items, 4)
	assert.Greater(t, outfits[0].Score, float64(0))

	suggestions, err := stylist.Gaps(ctx, "user-1", outfits[0].Items, "office")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "brown leather belt", suggestions[0].Term)

	// The suggested term landed in the gap cache.
	cached, err := store.GetGapItems(ctx, []string{"brown leather belt"})
	require.NoError(t, err)
	require.Len(t, cached, 1)
}
