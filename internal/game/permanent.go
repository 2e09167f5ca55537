package game

import (
	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game/counters"
	"github.com/duskfold/goldfish/internal/game/mana"
)

// Permanent is a card on the battlefield plus battlefield-only state.
// Time counters serve two distinct purposes: impending creatures count
// them down, sagas count lore up; the two must never share a slot, so
// they use separate counter types.
type Permanent struct {
	Card        cards.Card
	Tapped      bool
	TurnEntered int
	Counters    *counters.Counters

	// ChosenType is the creature type picked when a type-choosing land
	// entered; ChosenColor the color picked by a color-choosing land.
	ChosenType  string
	ChosenColor mana.Color

	// CopyOf points at the copied card's static definition when this
	// permanent entered as a copy. Stats and abilities come from the
	// definition, not from re-deriving them by name.
	CopyOf *cards.Card
}

// NewPermanent creates a permanent for a card entering the battlefield
// on the given turn.
func NewPermanent(c cards.Card, turn int) *Permanent {
	return &Permanent{
		Card:        c,
		TurnEntered: turn,
		Counters:    counters.New(),
	}
}

// Def returns the definition governing the permanent's characteristics:
// the copied card when this is a copy, otherwise its own card.
func (p *Permanent) Def() cards.Card {
	if p.CopyOf != nil {
		return *p.CopyOf
	}
	return p.Card
}

// IsCreature reports whether the permanent is a creature right now. An
// impending permanent is not a creature until its time counters reach
// zero.
func (p *Permanent) IsCreature() bool {
	return p.Def().IsCreature() && !p.ImpendingPending()
}

// ImpendingPending reports whether the permanent is still in its
// non-creature impending form.
func (p *Permanent) ImpendingPending() bool {
	return p.Counters.Has(counters.Time)
}

// Power returns the permanent's power.
func (p *Permanent) Power() int { return p.Def().Power }

// CanAttack reports whether the permanent may be declared as an
// attacker on the given turn: a creature, untapped, and past summoning
// sickness.
func (p *Permanent) CanAttack(turn int) bool {
	return p.IsCreature() && !p.Tapped && p.TurnEntered < turn
}

// Tap taps the permanent. Tapping an already-tapped permanent is a
// defect.
func (p *Permanent) Tap() {
	if p.Tapped {
		panic("permanent: already tapped")
	}
	p.Tapped = true
}

// Untap clears the tapped flag.
func (p *Permanent) Untap() { p.Tapped = false }
