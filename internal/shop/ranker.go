// Package shop ranks external catalog products against a user's stated
// preference profile. The score is a ranking signal, not a probability:
// callers sort descending and apply their own cutoff.
package shop

import (
	"sort"
	"strings"

	"github.com/fernwood/dresscode/internal/model"
)

// Independent additive weights. Each facet contributes only when both the
// product and the profile carry a non-empty value. Maximum attainable
// score is 80.
const (
	genderWeight   = 20
	colorWeight    = 15
	styleWeight    = 15
	materialWeight = 10
	fitWeight      = 10
	sizeWeight     = 10
)

// ScoreProduct scores a product against a preference profile. A nil
// profile yields zero rather than an error.
func ScoreProduct(product model.ShopProduct, prefs *model.PreferenceProfile) float64 {
	if prefs == nil {
		return 0
	}

	var score float64

	if product.Gender != "" && prefs.Gender != "" {
		productGender := strings.ToLower(product.Gender)
		if productGender == "unisex" || productGender == strings.ToLower(prefs.Gender) {
			score += genderWeight
		}
	}

	if product.Color != "" && containsFold(prefs.Colors, product.Color) {
		score += colorWeight
	}

	if styleMatches(product, prefs.Styles) {
		score += styleWeight
	}

	if product.Material != "" && containsFold(prefs.Materials, product.Material) {
		score += materialWeight
	}

	if product.FitType != "" && containsFold(prefs.FitTypes, product.FitType) {
		score += fitWeight
	}

	if intersectsFold(product.Sizes, prefs.Sizes) {
		score += sizeWeight
	}

	return score
}

// styleMatches checks the product's single style field and its style list
// against the preferred styles.
func styleMatches(product model.ShopProduct, preferred []string) bool {
	if len(preferred) == 0 {
		return false
	}
	if product.Style != "" && containsFold(preferred, product.Style) {
		return true
	}
	for _, s := range product.Styles {
		if s != "" && containsFold(preferred, s) {
			return true
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func intersectsFold(a, b []string) bool {
	for _, x := range a {
		if x != "" && containsFold(b, x) {
			return true
		}
	}
	return false
}

// ScoredProduct pairs a product with its preference score.
type ScoredProduct struct {
	Product model.ShopProduct
	Score   float64
}

// Rank scores every product and returns them sorted by score descending,
// ties broken by product ID for stable output.
func Rank(products []model.ShopProduct, prefs *model.PreferenceProfile) []ScoredProduct {
	ranked := make([]ScoredProduct, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, ScoredProduct{Product: p, Score: ScoreProduct(p, prefs)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Product.ID < ranked[j].Product.ID
	})

	return ranked
}
