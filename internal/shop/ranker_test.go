package shop

import (
	"testing"

	"github.com/fernwood/dresscode/internal/model"
	"github.com/stretchr/testify/assert"
)

func fullProfile() *model.PreferenceProfile {
	return &model.PreferenceProfile{
		UserID:    "u1",
		Gender:    "women",
		Styles:    []string{"casual", "minimalist"},
		Colors:    []string{"white", "navy"},
		Materials: []string{"cotton", "linen"},
		FitTypes:  []string{"regular", "relaxed"},
		Sizes:     []string{"S", "M"},
	}
}

func TestScoreProduct_NilPreferences(t *testing.T) {
	product := model.ShopProduct{Gender: "women", Color: "white"}

	assert.InDelta(t, 0.0, ScoreProduct(product, nil), 0.001)
}

func TestScoreProduct_GenderColorStyleOnly(t *testing.T) {
	// Matching gender, color, and style but nothing else: 20+15+15 = 50.
	product := model.ShopProduct{
		Gender: "Women",
		Color:  "Navy",
		Style:  "casual",
	}

	assert.InDelta(t, 50.0, ScoreProduct(product, fullProfile()), 0.001)
}

func TestScoreProduct_MaximumScore(t *testing.T) {
	product := model.ShopProduct{
		Gender:   "women",
		Color:    "white",
		Style:    "minimalist",
		Material: "cotton",
		FitType:  "regular",
		Sizes:    []string{"XL", "m"},
	}

	assert.InDelta(t, 80.0, ScoreProduct(product, fullProfile()), 0.001)
}

func TestScoreProduct_UnisexMatchesAnyGender(t *testing.T) {
	product := model.ShopProduct{Gender: "unisex"}

	assert.InDelta(t, 20.0, ScoreProduct(product, fullProfile()), 0.001)
}

func TestScoreProduct_EmptyFacetsContributeNothing(t *testing.T) {
	// Product carries no gender, so even a stated preference adds nothing.
	product := model.ShopProduct{Color: "white"}

	assert.InDelta(t, 15.0, ScoreProduct(product, fullProfile()), 0.001)
}

func TestScoreProduct_StyleListFallback(t *testing.T) {
	product := model.ShopProduct{
		Style:  "formal",
		Styles: []string{"streetwear", "Minimalist"},
	}

	assert.InDelta(t, 15.0, ScoreProduct(product, fullProfile()), 0.001)
}

func TestScoreProduct_SizeIntersectionCaseInsensitive(t *testing.T) {
	product := model.ShopProduct{Sizes: []string{"s"}}

	assert.InDelta(t, 10.0, ScoreProduct(product, fullProfile()), 0.001)
}

func TestRank_SortsDescending(t *testing.T) {
	products := []model.ShopProduct{
		{ID: "low"},
		{ID: "high", Gender: "women", Color: "white", Style: "casual"},
		{ID: "mid", Color: "navy"},
	}

	ranked := Rank(products, fullProfile())

	assert.Equal(t, "high", ranked[0].Product.ID)
	assert.Equal(t, "mid", ranked[1].Product.ID)
	assert.Equal(t, "low", ranked[2].Product.ID)
}

func TestRank_NilPreferencesAllZero(t *testing.T) {
	products := []model.ShopProduct{
		{ID: "a", Gender: "women"},
		{ID: "b", Color: "white"},
	}

	for _, sp := range Rank(products, nil) {
		assert.InDelta(t, 0.0, sp.Score, 0.001)
	}
}
