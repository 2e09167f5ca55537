// Package cards defines the immutable card model and the read-only
// registry the simulator draws card definitions from.
package cards

import (
	"fmt"

	"github.com/duskfold/goldfish/internal/game/mana"
)

// Kind is the closed set of card variants.
type Kind int

const (
	KindLand Kind = iota
	KindCreature
	KindInstant
	KindSorcery
	KindEnchantment
	KindSaga
)

var kindNames = map[Kind]string{
	KindLand:        "Land",
	KindCreature:    "Creature",
	KindInstant:     "Instant",
	KindSorcery:     "Sorcery",
	KindEnchantment: "Enchantment",
	KindSaga:        "Saga",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND_%d", int(k))
}

// Ability identifies a resolvable effect. Dispatch is by tag, not card
// identity, so cards can share implementations.
type Ability string

const (
	// AbilityMill mills MillCount cards.
	AbilityMill Ability = "Mill"
	// AbilityMillReturn mills MillCount cards, then may return one
	// matching card from the graveyard to hand.
	AbilityMillReturn Ability = "MillReturn"
	// AbilityDrawTwoDiscardTwo draws 2, then discards 2 by priority.
	AbilityDrawTwoDiscardTwo Ability = "DrawTwoDiscardTwo"
	// AbilityCopyFromGraveyard copies a creature card in the graveyard,
	// exiling it, and resolves the copied card's enter effect.
	AbilityCopyFromGraveyard Ability = "CopyFromGraveyard"
	// AbilityMassReanimate sends every other non-impending creature on
	// the battlefield to the graveyard, then returns all creature cards
	// from the graveyard to the battlefield.
	AbilityMassReanimate Ability = "MassReanimate"
	// AbilityDamageOnEnter deals damage to the opponent equal to the
	// power of each other creature entering the battlefield.
	AbilityDamageOnEnter Ability = "DamageOnEnter"
	// AbilityDrawOne draws a card.
	AbilityDrawOne Ability = "DrawOne"
)

var knownAbilities = map[Ability]bool{
	AbilityMill:              true,
	AbilityMillReturn:        true,
	AbilityDrawTwoDiscardTwo: true,
	AbilityCopyFromGraveyard: true,
	AbilityMassReanimate:     true,
	AbilityDamageOnEnter:     true,
	AbilityDrawOne:           true,
}

// Known reports whether a is one of the closed set of ability tags.
func (a Ability) Known() bool { return knownAbilities[a] }

// ImpendingCost is the alternate, cheaper cost that makes a creature
// enter as a non-creature permanent with countdown time counters.
type ImpendingCost struct {
	Cost     mana.Cost
	Counters int
}

// Card is an immutable card definition. Copies placed in zones are
// value copies; nothing in a game ever mutates a Card, so the slice
// fields may share backing arrays with the registry.
type Card struct {
	Name string
	Kind Kind
	Cost mana.Cost

	// Land fields.
	Subtypes        []string // basic land types, checked by verge lands
	EntersTapped    bool
	Colors          mana.Set   // fixed producible colors
	SurveilCount    int        // surveil N when the land enters
	ChoosesColor    bool       // a single color is chosen on entry
	AnyColorForType bool       // any color, only toward creatures of the chosen type
	LifeGated       bool       // colorless free; any color for 1 life while life is high
	VergeColor      mana.Color // extra color while a VergeSubtypes land is controlled
	VergeSubtypes   []string

	// Creature fields.
	Power         int
	Toughness     int
	CreatureTypes []string
	Impending     *ImpendingCost

	// Spell / creature effect tags, and saga chapters in order.
	Abilities []Ability
	Chapters  []Ability

	// MillCount parameterizes AbilityMill / AbilityMillReturn.
	MillCount int
}

// IsLand reports whether the card is a land.
func (c Card) IsLand() bool { return c.Kind == KindLand }

// IsCreature reports whether the card is a creature.
func (c Card) IsCreature() bool { return c.Kind == KindCreature }

// IsPermanent reports whether the card stays on the battlefield when it
// resolves.
func (c Card) IsPermanent() bool {
	return c.Kind != KindInstant && c.Kind != KindSorcery
}

// ManaValue returns the card's total mana value.
func (c Card) ManaValue() int { return c.Cost.Value() }

// HasAbility reports whether the card carries the given ability tag.
func (c Card) HasAbility(a Ability) bool {
	for _, tag := range c.Abilities {
		if tag == a {
			return true
		}
	}
	return false
}

// HasCreatureType reports whether the card has the given creature type.
func (c Card) HasCreatureType(t string) bool {
	for _, ct := range c.CreatureTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// HasSubtype reports whether the card has the given land subtype.
func (c Card) HasSubtype(t string) bool {
	for _, st := range c.Subtypes {
		if st == t {
			return true
		}
	}
	return false
}
