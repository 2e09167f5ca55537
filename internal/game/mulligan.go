package game

import (
	"go.uber.org/zap"

	"github.com/duskfold/goldfish/internal/cards"
)

// resolveOpeningHand draws two seven-card hands and keeps the better
// one; if neither has two lands, both go back and the recursive
// mulligan takes over.
func (g *Game) resolveOpeningHand() {
	s := g.state

	first := g.drawCards(7)
	second := g.drawCards(7)
	firstOK := landCount(first) >= 2
	secondOK := landCount(second) >= 2

	switch {
	case firstOK && secondOK:
		// Fewer lands wins; a tie is broken by one RNG draw.
		keepFirst := landCount(first) < landCount(second)
		if landCount(first) == landCount(second) {
			keepFirst = s.RNG.Float64() < 0.5
		}
		if keepFirst {
			g.keepHand(first, second)
		} else {
			g.keepHand(second, first)
		}
	case firstOK:
		g.keepHand(first, second)
	case secondOK:
		g.keepHand(second, first)
	default:
		g.returnToLibrary(first)
		g.returnToLibrary(second)
		s.Library.Shuffle(s.RNG)
		g.mulliganDown()
	}

	g.log.Debug("kept opening hand",
		zap.Int("size", s.Hand.Len()),
		zap.Int("lands", landCount(s.Hand.Cards())),
	)
}

// mulliganDown is the recursive mulligan, flattened into a bounded loop:
// hand size strictly decreases each round and floors at one card.
func (g *Game) mulliganDown() {
	s := g.state
	for size := 6; size >= 1; size-- {
		hand := g.drawCards(size)
		if landCount(hand) < 2 && size > 4 {
			g.returnToLibrary(hand)
			s.Library.Shuffle(s.RNG)
			continue
		}

		for _, c := range hand {
			s.Hand.Add(c)
		}
		g.scry(7 - size)
		return
	}
}

// scry looks at the top n cards, bottoms the ones the keep rule
// rejects, and leaves the rest on top in their original order.
func (g *Game) scry(n int) {
	s := g.state

	looked := g.drawCards(n)
	var keep []cards.Card
	for _, c := range looked {
		if g.scryToBottom(c) {
			s.Library.PutBottom(c)
		} else {
			keep = append(keep, c)
		}
	}
	s.Library.PutTop(keep...)
}

// scryToBottom is the hand-aware bottoming rule: the two graveyard-bound
// combo cards always go under, lands go under once the hand holds
// three, and expensive spells go under while the hand is short on
// lands.
func (g *Game) scryToBottom(c cards.Card) bool {
	if c.Name == cardBringer || c.Name == cardTerror {
		return true
	}
	lands := landCount(g.state.Hand.Cards())
	if c.IsLand() && lands >= 3 {
		return true
	}
	if !c.IsLand() && c.ManaValue() >= 4 && lands < 2 {
		return true
	}
	return false
}

// ShouldKeep is the standalone keep check for an already-drawn hand: a
// small hand keeps on two lands alone; a full one also needs a cheap
// playable or the mill enabler.
func ShouldKeep(hand []cards.Card) bool {
	lands := landCount(hand)
	if len(hand) <= 4 {
		return lands >= 2
	}
	if lands < 2 || lands > 5 {
		return false
	}
	for _, c := range hand {
		if c.Name == millEnabler {
			return true
		}
		if !c.IsLand() && c.ManaValue() <= 2 {
			return true
		}
	}
	return false
}

func (g *Game) drawCards(n int) []cards.Card {
	var out []cards.Card
	for i := 0; i < n; i++ {
		c, ok := g.state.Library.Draw()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return out
}

func (g *Game) keepHand(keep, other []cards.Card) {
	for _, c := range keep {
		g.state.Hand.Add(c)
	}
	g.returnToLibrary(other)
	g.state.Library.Shuffle(g.state.RNG)
}

func (g *Game) returnToLibrary(cs []cards.Card) {
	for _, c := range cs {
		g.state.Library.PutBottom(c)
	}
}

func landCount(cs []cards.Card) int {
	n := 0
	for _, c := range cs {
		if c.IsLand() {
			n++
		}
	}
	return n
}
