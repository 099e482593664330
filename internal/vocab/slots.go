// Package vocab holds the static reference vocabularies of the matching
// engine: functional slots, aesthetic styles, colors, and occasion
// profiles. Vocabularies are closed enumerations; free-text input from
// garment classification is normalized defensively at the boundary.
package vocab

import "strings"

// Slot is a normalized functional slot for a garment.
type Slot string

const (
	SlotTops       Slot = "tops"
	SlotBottoms    Slot = "bottoms"
	SlotDresses    Slot = "dresses"
	SlotOuterwear  Slot = "outerwear"
	SlotActivewear Slot = "activewear"
	SlotEthnic     Slot = "ethnic"
	SlotShoes      Slot = "shoes"
	SlotSleepwear  Slot = "sleepwear"
	SlotInnerwear  Slot = "innerwear"
)

// Slots lists every functional slot.
func Slots() []Slot {
	return []Slot{
		SlotTops,
		SlotBottoms,
		SlotDresses,
		SlotOuterwear,
		SlotActivewear,
		SlotEthnic,
		SlotShoes,
		SlotSleepwear,
		SlotInnerwear,
	}
}

// slotAliases maps free-form classification labels to their slot. The
// mapping is many-to-one and lookups are case-insensitive.
var slotAliases = map[string]Slot{
	"top":        SlotTops,
	"tops":       SlotTops,
	"shirt":      SlotTops,
	"t-shirt":    SlotTops,
	"tshirt":     SlotTops,
	"tee":        SlotTops,
	"blouse":     SlotTops,
	"sweater":    SlotTops,
	"hoodie":     SlotTops,
	"tank top":   SlotTops,
	"polo":       SlotTops,
	"bottom":     SlotBottoms,
	"bottoms":    SlotBottoms,
	"pants":      SlotBottoms,
	"jeans":      SlotBottoms,
	"trousers":   SlotBottoms,
	"shorts":     SlotBottoms,
	"skirt":      SlotBottoms,
	"leggings":   SlotBottoms,
	"chinos":     SlotBottoms,
	"dress":      SlotDresses,
	"dresses":    SlotDresses,
	"gown":       SlotDresses,
	"jumpsuit":   SlotDresses,
	"outerwear":  SlotOuterwear,
	"jacket":     SlotOuterwear,
	"coat":       SlotOuterwear,
	"blazer":     SlotOuterwear,
	"cardigan":   SlotOuterwear,
	"activewear": SlotActivewear,
	"sportswear": SlotActivewear,
	"tracksuit":  SlotActivewear,
	"ethnic":     SlotEthnic,
	"saree":      SlotEthnic,
	"sari":       SlotEthnic,
	"kurta":      SlotEthnic,
	"lehenga":    SlotEthnic,
	"kimono":     SlotEthnic,
	"shoes":      SlotShoes,
	"footwear":   SlotShoes,
	"sneakers":   SlotShoes,
	"heels":      SlotShoes,
	"flats":      SlotShoes,
	"boots":      SlotShoes,
	"sandals":    SlotShoes,
	"loafers":    SlotShoes,
	"sleepwear":  SlotSleepwear,
	"pajamas":    SlotSleepwear,
	"nightwear":  SlotSleepwear,
	"innerwear":  SlotInnerwear,
	"underwear":  SlotInnerwear,
	"lingerie":   SlotInnerwear,
}

// NormalizeSlot maps a free-form classification label onto a functional
// slot. Unknown labels pass through unchanged: callers must treat an
// un-normalized slot as simply not matching any occasion-preferred slot.
func NormalizeSlot(raw string) string {
	if slot, ok := slotAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return string(slot)
	}
	return raw
}
