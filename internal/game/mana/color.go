package mana

// Color represents a color of mana, using the standard single-letter
// symbols. Colorless is a sixth "color" for payment purposes.
type Color string

const (
	White     Color = "W"
	Blue      Color = "U"
	Black     Color = "B"
	Red       Color = "R"
	Green     Color = "G"
	Colorless Color = "C"
)

// Colors lists every color in canonical WUBRG+C order. Payment and
// scarcity tie-breaks iterate this order so results are deterministic.
var Colors = []Color{White, Blue, Black, Red, Green, Colorless}

// Set is an ordered collection of producible colors. Order follows the
// card data and is preserved; membership checks are linear since sets
// never exceed six entries.
type Set []Color

// Has reports whether the set contains c.
func (s Set) Has(c Color) bool {
	for _, v := range s {
		if v == c {
			return true
		}
	}
	return false
}
