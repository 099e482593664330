package vocab

import "strings"

// Occasion identifies an event the user wants to dress for.
type Occasion string

const (
	OccasionParty    Occasion = "party"
	OccasionOffice   Occasion = "office"
	OccasionCasual   Occasion = "casual"
	OccasionDate     Occasion = "date"
	OccasionWedding  Occasion = "wedding"
	OccasionVacation Occasion = "vacation"
)

// Occasions lists every recognized occasion.
func Occasions() []Occasion {
	return []Occasion{
		OccasionParty,
		OccasionOffice,
		OccasionCasual,
		OccasionDate,
		OccasionWedding,
		OccasionVacation,
	}
}

// OccasionProfile describes what an occasion prefers. Static configuration
// data; never created or destroyed at runtime.
type OccasionProfile struct {
	Slots  []Slot
	Styles []Style
	Colors []string // AnyColor means every color qualifies
}

// PrefersSlot reports whether the normalized slot is preferred.
func (p OccasionProfile) PrefersSlot(slot string) bool {
	for _, s := range p.Slots {
		if string(s) == slot {
			return true
		}
	}
	return false
}

// PrefersColor reports whether the color is preferred, honoring the
// wildcard entry. Comparison is on the lower-cased color.
func (p OccasionProfile) PrefersColor(color string) bool {
	color = strings.ToLower(color)
	for _, c := range p.Colors {
		if c == AnyColor || c == color {
			return true
		}
	}
	return false
}

// PrefersStyle reports whether the style tag matches, case-insensitively.
func (p OccasionProfile) PrefersStyle(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, s := range p.Styles {
		if string(s) == tag {
			return true
		}
	}
	return false
}

var occasionProfiles = map[Occasion]OccasionProfile{
	OccasionParty: {
		Slots:  []Slot{SlotDresses, SlotTops, SlotBottoms, SlotShoes},
		Styles: []Style{StyleEdgy, StyleStreetwear, StyleVintage},
		Colors: []string{"black", "red", "gold", "silver", "maroon"},
	},
	OccasionOffice: {
		Slots:  []Slot{SlotTops, SlotBottoms, SlotOuterwear, SlotShoes},
		Styles: []Style{StyleFormal, StyleMinimalist},
		Colors: []string{AnyColor},
	},
	OccasionCasual: {
		Slots:  []Slot{SlotTops, SlotBottoms, SlotShoes},
		Styles: []Style{StyleCasual, StyleStreetwear, StyleSporty},
		Colors: []string{AnyColor},
	},
	OccasionDate: {
		Slots:  []Slot{SlotDresses, SlotTops, SlotBottoms, SlotShoes},
		Styles: []Style{StyleCasual, StyleVintage, StyleBohemian},
		Colors: []string{"red", "pink", "maroon", "black", "white"},
	},
	OccasionWedding: {
		Slots:  []Slot{SlotEthnic, SlotDresses, SlotOuterwear, SlotShoes},
		Styles: []Style{StyleEthnic, StyleFormal},
		Colors: []string{AnyColor},
	},
	OccasionVacation: {
		Slots:  []Slot{SlotTops, SlotBottoms, SlotDresses, SlotShoes},
		Styles: []Style{StyleBohemian, StyleCasual},
		Colors: []string{AnyColor},
	},
}

// ProfileFor returns the occasion profile for a label, case-insensitively.
// The second return is false for unrecognized occasions; callers skip
// occasion scoring in that case rather than failing.
func ProfileFor(label string) (OccasionProfile, bool) {
	profile, ok := occasionProfiles[Occasion(strings.ToLower(strings.TrimSpace(label)))]
	return profile, ok
}
