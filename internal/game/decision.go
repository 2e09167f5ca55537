package game

import (
	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game/mana"
)

// The decision engine is a set of pure, deterministic priority
// functions. None of them touch the RNG: ties break by list order so a
// seed fully determines a game.

// landPick chooses which land in hand to play this turn. Preference
// order: a land that lets a spell in hand be cast this turn (it must
// enter untapped and close a color gap); then a land providing a color
// something in hand needs; then a land with surveil; then a land that
// enters tapped, saving untapped lands for later turns.
func (g *Game) landPick() (int, bool) {
	hand := g.state.Hand.Cards()

	best := -1
	var bestScore [4]bool
	for i, c := range hand {
		if !c.IsLand() {
			continue
		}
		score := [4]bool{
			!c.EntersTapped && g.landEnablesCast(c),
			g.landProvidesNeededColor(c),
			c.SurveilCount > 0,
			c.EntersTapped,
		}
		if best < 0 || scoreLess(bestScore, score) {
			best, bestScore = i, score
		}
	}
	return best, best >= 0
}

// scoreLess compares boolean criteria lexicographically.
func scoreLess(a, b [4]bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return b[i]
		}
	}
	return false
}

// landEnablesCast reports whether adding land to the battlefield right
// now would make some currently-uncastable spell in hand castable.
func (g *Game) landEnablesCast(land cards.Card) bool {
	for _, spell := range g.state.Hand.Cards() {
		if spell.IsLand() || g.state.CanPay(spell.Cost, &spell) {
			continue
		}
		_, options := g.state.paymentOptions(&spell)
		options = append(options, mana.Option{Colors: g.hypotheticalColors(land, &spell)})
		if _, ok := mana.Plan(spell.Cost, options); ok {
			return true
		}
	}
	return false
}

// landProvidesNeededColor reports whether the land can produce a color
// appearing in the pips of any spell in hand.
func (g *Game) landProvidesNeededColor(land cards.Card) bool {
	colors := g.hypotheticalColors(land, nil)
	for _, spell := range g.state.Hand.Cards() {
		if spell.IsLand() {
			continue
		}
		for _, color := range mana.Colors {
			if spell.Cost.Pip(color) > 0 && colors.Has(color) {
				return true
			}
		}
	}
	return false
}

// hypotheticalColors evaluates a land's production as if it were on the
// battlefield now, resolving its entry choices the way the play
// heuristics would.
func (g *Game) hypotheticalColors(land cards.Card, casting *cards.Card) mana.Set {
	tmp := NewPermanent(land, g.state.Turn)
	if land.ChoosesColor {
		tmp.ChosenColor = g.chooseLandColor()
	}
	if land.AnyColorForType {
		tmp.ChosenType = g.chooseCreatureType()
	}
	return g.state.ProducibleColors(tmp, casting)
}

// millReturnPick chooses a graveyard card to return to hand after a
// mill, by fixed priority. The reanimation payoff and the damage
// trigger are never returned; they belong in the graveyard.
func (g *Game) millReturnPick() (string, bool) {
	s := g.state
	gy := s.Graveyard

	landsAvailable := len(s.Battlefield.Lands())
	for _, c := range s.Hand.Cards() {
		if c.IsLand() {
			landsAvailable++
		}
	}
	stuckPiece := s.Hand.Contains(cardBringer) || s.Hand.Contains(cardTerror)

	if gy.Contains(cardMimic) && !s.Hand.Contains(cardMimic) {
		return cardMimic, true
	}
	if gy.Contains(cardKiora) && stuckPiece {
		return cardKiora, true
	}
	if landsAvailable < 2 {
		if name, ok := firstInGraveyard(gy, func(c cards.Card) bool { return c.IsLand() }); ok {
			return name, ok
		}
	}
	if gy.Contains(cardCrab) {
		return cardCrab, true
	}
	if landsAvailable < 4 {
		if name, ok := firstInGraveyard(gy, func(c cards.Card) bool { return c.IsLand() }); ok {
			return name, ok
		}
	}
	if name, ok := firstInGraveyard(gy, func(c cards.Card) bool {
		return c.IsCreature() && !millReturnExcluded(c.Name)
	}); ok {
		return name, ok
	}
	return firstInGraveyard(gy, func(c cards.Card) bool {
		return c.IsPermanent() && !c.IsLand() && !millReturnExcluded(c.Name)
	})
}

func millReturnExcluded(name string) bool {
	return name == cardBringer || name == cardTerror
}

func firstInGraveyard(gy *Pile, match func(cards.Card) bool) (string, bool) {
	for _, c := range gy.Cards() {
		if match(c) {
			return c.Name, true
		}
	}
	return "", false
}

// discardPick returns the hand index to discard: the highest-scoring
// card under the static priority table. Combo pieces wanted in the
// graveyard score highest; the castable combo pieces carry negative
// scores so they are only ever discarded when nothing else remains.
func (g *Game) discardPick() int {
	hand := g.state.Hand.Cards()
	best, bestScore := 0, discardScoreFloor
	for i, c := range hand {
		score := g.discardScore(c)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

const discardScoreFloor = -100

func (g *Game) discardScore(c cards.Card) int {
	switch c.Name {
	case cardBringer:
		return 10
	case cardTerror:
		return 9
	case cardMimic:
		return -5
	case cardKiora:
		return -4
	}

	hand := g.state.Hand.Cards()
	if c.IsLand() {
		lands := 0
		for _, h := range hand {
			if h.IsLand() {
				lands++
			}
		}
		if lands > 2 {
			return 5
		}
		return 0
	}
	if c.IsCreature() {
		copies := 0
		for _, h := range hand {
			if h.Name == c.Name {
				copies++
			}
		}
		if copies > 1 {
			return 3
		}
	}
	if c.ManaValue() <= 2 {
		return 1
	}
	return 0
}

// castPick selects the next spell to cast: among castable non-land
// cards, the one with the lowest priority number. The combo enabler is
// priority one only when the lethality estimate says executing now
// wins; otherwise it is held unless a second copy backs the dig line.
func (g *Game) castPick() (idx int, impending bool, ok bool) {
	s := g.state

	bestIdx, bestPriority, bestImpending := -1, 0, false
	for i, c := range s.Hand.Cards() {
		if c.IsLand() {
			continue
		}
		priority, considered := g.castPriority(c)
		if !considered {
			continue
		}

		useImpending := false
		if !s.CanPay(c.Cost, &c) {
			if c.Impending == nil || !s.CanPay(c.Impending.Cost, &c) {
				continue
			}
			useImpending = true
		}

		if bestIdx < 0 || priority < bestPriority {
			bestIdx, bestPriority, bestImpending = i, priority, useImpending
		}
	}
	return bestIdx, bestImpending, bestIdx >= 0
}

func (g *Game) castPriority(c cards.Card) (int, bool) {
	stuckPiece := g.state.Hand.Contains(cardBringer) || g.state.Hand.Contains(cardTerror)

	switch c.Name {
	case cardMimic:
		if g.comboLethal() {
			return 1, true
		}
		if g.state.Hand.Count(cardMimic) >= 2 {
			return 5, true
		}
		return 0, false
	case cardKiora:
		if stuckPiece {
			return 2, true
		}
		return 6, true
	case cardCrab, millEnabler:
		return 3, true
	}
	if c.Kind == cards.KindSaga || c.HasAbility(cards.AbilityMillReturn) || c.HasAbility(cards.AbilityMill) {
		return 4, true
	}
	return 10 + c.ManaValue(), true
}
