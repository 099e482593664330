package outfit

import (
	"strings"

	"github.com/fernwood/dresscode/internal/harmony"
	"github.com/fernwood/dresscode/internal/model"
	"github.com/fernwood/dresscode/internal/vocab"
)

// Scoring weights. Additive with no size normalization: larger outfits and
// outfits matching more occasion facets score strictly higher, so occasion
// fit dominates raw size.
const (
	baseItemScore   = 5
	colorPairScore  = 10
	slotMatchScore  = 15
	colorMatchScore = 5
	styleMatchScore = 20
)

// Bonuses applied by the generator on top of the base score.
const (
	extensionBonus    = 3 // shoe or outerwear successfully attached
	completeLookBonus = 8 // dress or ethnic piece standing as a full look
)

// Score assigns a desirability score to a candidate combination. Pure
// given its inputs; all randomness lives in the selection policy. An empty
// or unrecognized occasion skips the occasion facets entirely.
func Score(items []model.Garment, occasion string) float64 {
	var score float64

	for range items {
		score += baseItemScore
	}

	// Every unordered pair, not just adjacent ones
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if harmony.Match(items[i].Color, items[j].Color) {
				score += colorPairScore
			}
		}
	}

	profile, ok := vocab.ProfileFor(occasion)
	if !ok {
		return score
	}

	for _, item := range items {
		if profile.PrefersSlot(vocab.NormalizeSlot(item.Category)) {
			score += slotMatchScore
		}
		if profile.PrefersColor(strings.ToLower(item.Color)) {
			score += colorMatchScore
		}
		if profile.PrefersStyle(item.Style) {
			score += styleMatchScore
		}
	}

	return score
}
