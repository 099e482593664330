package gaps

import (
	"fmt"
	"strings"

	"github.com/fernwood/dresscode/internal/model"
	"github.com/fernwood/dresscode/internal/vocab"
)

const systemPrompt = `You are a wardrobe stylist. Given a user's wardrobe and a chosen outfit, name the items that would complete the outfit but are missing from the wardrobe. Respond with ONLY a JSON array of at most 3 objects, each with an "item" field (a short shopping search term) and a "reason" field (one sentence). Respond with [] if nothing is missing. No markdown, no commentary.`

// buildUserPrompt summarizes the wardrobe and the chosen outfit in
// natural language for the oracle.
func buildUserPrompt(wardrobe, outfitItems []model.Garment, occasion string) string {
	var sb strings.Builder

	if occasion != "" {
		fmt.Fprintf(&sb, "Occasion: %s\n\n", occasion)
	}

	sb.WriteString("Wardrobe:\n")
	if len(wardrobe) == 0 {
		sb.WriteString("- (empty)\n")
	}
	for _, g := range wardrobe {
		sb.WriteString("- " + describeGarment(g) + "\n")
	}

	sb.WriteString("\nChosen outfit:\n")
	for _, g := range outfitItems {
		sb.WriteString("- " + describeGarment(g) + "\n")
	}

	sb.WriteString("\nWhat is missing?")
	return sb.String()
}

func describeGarment(g model.Garment) string {
	parts := []string{}
	if g.Color != "" {
		parts = append(parts, g.Color)
	}
	if g.Title != "" {
		parts = append(parts, g.Title)
	} else if g.Category != "" {
		parts = append(parts, g.Category)
	}

	desc := strings.Join(parts, " ")
	if slot := vocab.NormalizeSlot(g.Category); slot != "" && slot != g.Title {
		desc += fmt.Sprintf(" (%s)", slot)
	}
	return desc
}
