package engine

import (
	"context"

	"github.com/fernwood/dresscode/internal/model"
)

// OutfitGenerator produces scored outfits for an occasion.
type OutfitGenerator interface {
	Generate(wardrobe []model.Garment, occasion string, count int) []model.Outfit
}

// GapIdentifier names items missing from an outfit relative to the
// wardrobe.
type GapIdentifier interface {
	Identify(ctx context.Context, wardrobe, outfitItems []model.Garment, occasion string) ([]model.GapSuggestion, error)
}
