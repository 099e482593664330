// Package engine orchestrates the stylist workflow: it loads wardrobes
// from storage, drives the outfit generator, ranks catalog products, and
// records gap suggestions in the cache.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fernwood/dresscode/internal/common"
	"github.com/fernwood/dresscode/internal/model"
	"github.com/fernwood/dresscode/internal/service"
	"github.com/fernwood/dresscode/internal/shop"
)

// Stylist wires storage, outfit generation, and gap identification into
// the operations the CLI exposes.
type Stylist struct {
	storage   service.Storage
	generator OutfitGenerator
	gaps      GapIdentifier
	logger    *slog.Logger
}

// New creates a stylist engine. gaps may be nil when no oracle is
// configured.
func New(storage service.Storage, generator OutfitGenerator, gaps GapIdentifier, logger *slog.Logger) (*Stylist, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Stylist{
		storage:   storage,
		generator: generator,
		gaps:      gaps,
		logger:    logger,
	}, nil
}

// Suggest loads the user's wardrobe and returns up to count outfits for
// the occasion.
func (s *Stylist) Suggest(ctx context.Context, userID, occasion string, count int) ([]model.Outfit, error) {
	wardrobe, err := s.storage.GetGarments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe: %w", err)
	}

	outfits := s.generator.Generate(wardrobe, occasion, count)
	s.logger.Debug("generated outfits",
		"user_id", userID,
		"occasion", occasion,
		"wardrobe_size", len(wardrobe),
		"outfits", len(outfits))
	return outfits, nil
}

// RankProducts scores catalog products against the user's saved
// preferences. A user with no saved profile gets every product at zero.
func (s *Stylist) RankProducts(ctx context.Context, userID string, products []model.ShopProduct) ([]shop.ScoredProduct, error) {
	prefs, err := s.storage.GetPreferences(ctx, userID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return shop.Rank(products, prefs), nil
}

// Gaps identifies items missing from the outfit, reuses cached records
// for terms suggested before, and refreshes each term in the gap cache.
// Cache failures are logged but never fail the call.
func (s *Stylist) Gaps(ctx context.Context, userID string, outfitItems []model.Garment, occasion string) ([]model.GapSuggestion, error) {
	if s.gaps == nil {
		return nil, nil
	}

	wardrobe, err := s.storage.GetGarments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe: %w", err)
	}

	suggestions, err := s.gaps.Identify(ctx, wardrobe, outfitItems, occasion)
	if err != nil {
		return nil, fmt.Errorf("failed to identify gaps: %w", err)
	}
	if len(suggestions) == 0 {
		return suggestions, nil
	}

	cached := s.cachedGapItems(ctx, suggestions)

	for i := range suggestions {
		term := strings.ToLower(suggestions[i].Term)
		if item, ok := cached[term]; ok {
			suggestions[i].ImageURL = item.ImageURL
		}

		err := s.storage.UpsertGapItem(ctx, &model.CachedGapItem{
			Term:     suggestions[i].Term,
			ImageURL: suggestions[i].ImageURL,
		})
		if err != nil {
			s.logger.Warn("failed to cache gap item", "term", suggestions[i].Term, "error", err)
		}
	}

	return suggestions, nil
}

// cachedGapItems looks up prior cache records for the suggested terms,
// keyed by lower-cased term. Lookup failures degrade to an empty map.
func (s *Stylist) cachedGapItems(ctx context.Context, suggestions []model.GapSuggestion) map[string]model.CachedGapItem {
	terms := make([]string, 0, len(suggestions))
	for _, suggestion := range suggestions {
		terms = append(terms, suggestion.Term)
	}

	items, err := s.storage.GetGapItems(ctx, terms)
	if err != nil {
		s.logger.Warn("failed to consult gap cache", "error", err)
		return nil
	}

	cached := make(map[string]model.CachedGapItem, len(items))
	for _, item := range items {
		cached[strings.ToLower(item.Term)] = item
	}
	return cached
}
