package outfit

import (
	"strings"

	"github.com/fernwood/dresscode/internal/harmony"
	"github.com/fernwood/dresscode/internal/model"
	"github.com/fernwood/dresscode/internal/vocab"
)

// Occasions that get an outerwear layer on the top+bottom path. The
// dress/ethnic path layers outerwear unconditionally.
var layeredOccasions = map[vocab.Occasion]bool{
	vocab.OccasionOffice:  true,
	vocab.OccasionParty:   true,
	vocab.OccasionWedding: true,
}

// Generator enumerates slot-compatible, color-compatible garment
// combinations for a requested occasion.
type Generator struct {
	selector *Selector
}

// NewGenerator creates a generator using the given shuffler for the
// selection policy and the fallback tier.
func NewGenerator(shuffler Shuffler) *Generator {
	return &Generator{selector: NewSelector(shuffler)}
}

// wardrobePartition groups garments by normalized slot. Dresses and ethnic
// pieces share a partition because both stand as complete looks.
type wardrobePartition struct {
	tops      []model.Garment
	bottoms   []model.Garment
	dresses   []model.Garment
	shoes     []model.Garment
	outerwear []model.Garment
}

func partition(wardrobe []model.Garment) wardrobePartition {
	var p wardrobePartition
	for _, g := range wardrobe {
		switch vocab.NormalizeSlot(g.Category) {
		case string(vocab.SlotTops):
			p.tops = append(p.tops, g)
		case string(vocab.SlotBottoms):
			p.bottoms = append(p.bottoms, g)
		case string(vocab.SlotDresses), string(vocab.SlotEthnic):
			p.dresses = append(p.dresses, g)
		case string(vocab.SlotShoes):
			p.shoes = append(p.shoes, g)
		case string(vocab.SlotOuterwear):
			p.outerwear = append(p.outerwear, g)
		}
	}
	return p
}

// Generate assembles, scores, and selects up to count outfits for the
// occasion. Fewer than two garments yields no outfit.
func (g *Generator) Generate(wardrobe []model.Garment, occasion string, count int) []model.Outfit {
	candidates := g.candidates(wardrobe, occasion)
	return g.selector.Select(candidates, count)
}

// candidates produces every scored candidate across the primary,
// secondary, and fallback strategies.
func (g *Generator) candidates(wardrobe []model.Garment, occasion string) model.Outfits {
	if len(wardrobe) < 2 {
		return nil
	}

	p := partition(wardrobe)
	var candidates model.Outfits

	// Primary: every color-compatible top+bottom pair
	for _, top := range p.tops {
		for _, bottom := range p.bottoms {
			if !harmony.Match(top.Color, bottom.Color) {
				continue
			}
			items := []model.Garment{top, bottom}
			var bonus float64

			if shoe, ok := firstCompatible(p.shoes, top.Color, bottom.Color); ok {
				items = append(items, shoe)
				bonus += extensionBonus
			}
			if layeredOccasions[vocab.Occasion(strings.ToLower(occasion))] {
				if layer, ok := firstCompatible(p.outerwear, top.Color, bottom.Color); ok {
					items = append(items, layer)
					bonus += extensionBonus
				}
			}

			candidates = append(candidates, model.Outfit{
				Items: items,
				Score: Score(items, occasion) + bonus,
			})
		}
	}

	// Secondary: a dress or ethnic piece as a complete look. Outerwear is
	// layered regardless of occasion here, unlike the top+bottom path.
	for _, dress := range p.dresses {
		items := []model.Garment{dress}
		bonus := float64(completeLookBonus)

		if shoe, ok := firstCompatible(p.shoes, dress.Color); ok {
			items = append(items, shoe)
			bonus += extensionBonus
		}
		if layer, ok := firstCompatible(p.outerwear, dress.Color); ok {
			items = append(items, layer)
			bonus += extensionBonus
		}

		candidates = append(candidates, model.Outfit{
			Items: items,
			Score: Score(items, occasion) + bonus,
		})
	}

	if len(candidates) > 0 {
		return candidates
	}

	// Fallback: any color-compatible pair, ignoring slots
	for i := 0; i < len(wardrobe); i++ {
		for j := i + 1; j < len(wardrobe); j++ {
			if harmony.Match(wardrobe[i].Color, wardrobe[j].Color) {
				items := []model.Garment{wardrobe[i], wardrobe[j]}
				candidates = append(candidates, model.Outfit{
					Items: items,
					Score: Score(items, occasion),
				})
			}
		}
	}

	if len(candidates) > 0 {
		return candidates
	}

	// Last resort: ignore color compatibility entirely
	shuffled := make([]model.Garment, len(wardrobe))
	copy(shuffled, wardrobe)
	g.selector.shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled)
	if n > 3 {
		n = 3
	}
	return model.Outfits{{Items: shuffled[:n], Score: 0}}
}

// firstCompatible returns the first garment whose color matches any of the
// anchor colors.
func firstCompatible(garments []model.Garment, anchors ...string) (model.Garment, bool) {
	for _, g := range garments {
		for _, anchor := range anchors {
			if harmony.Match(g.Color, anchor) {
				return g, true
			}
		}
	}
	return model.Garment{}, false
}
