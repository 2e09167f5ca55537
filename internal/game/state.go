package game

import (
	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game/mana"
	"github.com/duskfold/goldfish/internal/game/rng"
)

const (
	startingLife = 20
	// maxTurns is the hard turn ceiling; a game that has not won by
	// then reports no win.
	maxTurns = 20
	// handLimit is the maximum hand size at end of turn.
	handLimit = 7
	// lifeGateThreshold guards the life-payment mode of life-gated
	// lands: colored production is offered only while life exceeds it.
	lifeGateThreshold = 5
)

// State is the single unit of mutable state for one game. Each game
// owns exactly one State and one RNG; nothing is shared between games.
type State struct {
	Library     *Library
	Hand        *Pile
	Graveyard   *Pile
	Exile       *Pile
	Battlefield *Battlefield

	Turn       int
	Phase      Phase
	OnThePlay  bool
	LandPlayed bool
	Life       int
	OppLife    int

	Pool *mana.Pool
	RNG  *rng.Source

	// DeckSize pins the card-count invariant: the cards across all five
	// zones always sum to it.
	DeckSize int
}

// NewState creates the state for one game over the given deck.
func NewState(deck []cards.Card, src *rng.Source) *State {
	return &State{
		Library:     NewLibrary(deck),
		Hand:        NewPile(),
		Graveyard:   NewPile(),
		Exile:       NewPile(),
		Battlefield: NewBattlefield(),
		Life:        startingLife,
		OppLife:     startingLife,
		Pool:        mana.NewPool(),
		RNG:         src,
		DeckSize:    len(deck),
	}
}

// CardCount sums the cards across every zone. It must equal DeckSize at
// all times; a mismatch is a defect.
func (s *State) CardCount() int {
	return s.Library.Len() + s.Hand.Len() + s.Graveyard.Len() + s.Exile.Len() + s.Battlefield.Len()
}

// UntappedLands returns the untapped lands in battlefield order.
func (s *State) UntappedLands() []*Permanent {
	var out []*Permanent
	for _, p := range s.Battlefield.Lands() {
		if !p.Tapped {
			out = append(out, p)
		}
	}
	return out
}

// ProducibleColors returns the colors a land permanent can produce
// right now. casting is the spell being paid for, or nil outside a
// cast; type-gated lands produce only in a qualifying cast context.
func (s *State) ProducibleColors(p *Permanent, casting *cards.Card) mana.Set {
	def := p.Def()

	switch {
	case def.ChoosesColor:
		if p.ChosenColor == "" {
			return nil
		}
		return mana.Set{p.ChosenColor}

	case def.AnyColorForType:
		if casting != nil && casting.IsCreature() && p.ChosenType != "" &&
			casting.HasCreatureType(p.ChosenType) {
			return mana.Set{mana.White, mana.Blue, mana.Black, mana.Red, mana.Green}
		}
		return nil

	case def.LifeGated:
		if s.Life > lifeGateThreshold {
			return mana.Set{mana.Colorless, mana.White, mana.Blue, mana.Black, mana.Red, mana.Green}
		}
		return mana.Set{mana.Colorless}

	case def.VergeColor != "":
		colors := append(mana.Set{}, def.Colors...)
		if s.controlsVergeEnabler(p, def.VergeSubtypes) {
			colors = append(colors, def.VergeColor)
		}
		return colors

	default:
		return def.Colors
	}
}

func (s *State) controlsVergeEnabler(self *Permanent, subtypes []string) bool {
	for _, land := range s.Battlefield.Lands() {
		if land == self {
			continue
		}
		for _, st := range subtypes {
			if land.Card.HasSubtype(st) {
				return true
			}
		}
	}
	return false
}

// paymentOptions pairs each untapped land with its currently-producible
// color set for a payment attempt.
func (s *State) paymentOptions(casting *cards.Card) ([]*Permanent, []mana.Option) {
	lands := s.UntappedLands()
	options := make([]mana.Option, len(lands))
	for i, p := range lands {
		options[i] = mana.Option{Colors: s.ProducibleColors(p, casting)}
	}
	return lands, options
}

// CanPay reports whether cost is payable from untapped lands, without
// tapping anything.
func (s *State) CanPay(cost mana.Cost, casting *cards.Card) bool {
	_, options := s.paymentOptions(casting)
	_, ok := mana.Plan(cost, options)
	return ok
}

// Pay selects and taps an assignment of lands covering cost and
// deducts it from the pool. On failure no lands are tapped. The
// assignment is the same one CanPay would have validated.
func (s *State) Pay(cost mana.Cost, casting *cards.Card) bool {
	lands, options := s.paymentOptions(casting)
	plan, ok := mana.Plan(cost, options)
	if !ok {
		return false
	}

	for _, a := range plan {
		land := lands[a.Index]
		land.Tap()
		s.Pool.Add(a.Color, 1)
		if land.Def().LifeGated && a.Color != mana.Colorless {
			s.Life--
		}
	}

	for _, color := range mana.Colors {
		if pips := cost.Pip(color); pips > 0 && !s.Pool.Spend(color, pips) {
			panic("game: produced mana does not cover colored pips")
		}
	}
	generic := cost.Generic
	for _, color := range mana.Colors {
		if generic == 0 {
			break
		}
		spend := s.Pool.Get(color)
		if spend > generic {
			spend = generic
		}
		if spend > 0 {
			s.Pool.Spend(color, spend)
			generic -= spend
		}
	}
	if generic != 0 {
		panic("game: produced mana does not cover generic cost")
	}

	return true
}
