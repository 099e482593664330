package vocab

// Colors lists the canonical color vocabulary. Garment colors are free
// text and may fall outside this list; unknown colors never crash the
// pipeline, they only fail occasion and preference matches.
func Colors() []string {
	return []string{
		"black", "white", "gray", "beige", "cream", "navy", "brown", "khaki",
		"red", "orange", "yellow", "coral", "mustard", "maroon", "rust",
		"blue", "green", "teal", "purple", "olive", "tan", "gold", "silver",
		"pink", "lavender", "mint", "peach", "lilac", "denim",
	}
}

// AnyColor is the wildcard entry used in occasion profiles and the
// complement table to mean "matches every color".
const AnyColor = "any"
