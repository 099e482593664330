package vocab

import "strings"

// Style is an aesthetic style tag.
type Style string

const (
	StyleCasual     Style = "casual"
	StyleFormal     Style = "formal"
	StyleStreetwear Style = "streetwear"
	StyleEthnic     Style = "ethnic"
	StyleSporty     Style = "sporty"
	StyleBohemian   Style = "bohemian"
	StyleMinimalist Style = "minimalist"
	StyleVintage    Style = "vintage"
	StyleEdgy       Style = "edgy"
)

// Styles lists every aesthetic style.
func Styles() []Style {
	return []Style{
		StyleCasual,
		StyleFormal,
		StyleStreetwear,
		StyleEthnic,
		StyleSporty,
		StyleBohemian,
		StyleMinimalist,
		StyleVintage,
		StyleEdgy,
	}
}

// KnownStyle reports whether the given tag is part of the style vocabulary.
func KnownStyle(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, s := range Styles() {
		if string(s) == tag {
			return true
		}
	}
	return false
}
