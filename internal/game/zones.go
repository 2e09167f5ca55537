package game

import (
	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game/rng"
)

// Library is the ordered draw pile. Index 0 is the top.
type Library struct {
	cards []cards.Card
}

// NewLibrary creates a library from a deck's cards, copying the slice.
func NewLibrary(cs []cards.Card) *Library {
	lib := &Library{cards: make([]cards.Card, len(cs))}
	copy(lib.cards, cs)
	return lib
}

// Len returns the number of cards remaining.
func (l *Library) Len() int { return len(l.cards) }

// Shuffle permutes the library with the game's deterministic source.
func (l *Library) Shuffle(src *rng.Source) {
	src.Shuffle(len(l.cards), func(i, j int) {
		l.cards[i], l.cards[j] = l.cards[j], l.cards[i]
	})
}

// Draw removes and returns the top card. Returns false on an empty
// library; drawing from nothing is an expected no-op, not an error.
func (l *Library) Draw() (cards.Card, bool) {
	if len(l.cards) == 0 {
		return cards.Card{}, false
	}
	top := l.cards[0]
	l.cards = l.cards[1:]
	return top, true
}

// Peek returns the top card without moving it.
func (l *Library) Peek() (cards.Card, bool) {
	if len(l.cards) == 0 {
		return cards.Card{}, false
	}
	return l.cards[0], true
}

// PutTop places cs on top of the library, preserving their order: the
// first element of cs becomes the new top.
func (l *Library) PutTop(cs ...cards.Card) {
	l.cards = append(append(make([]cards.Card, 0, len(cs)+len(l.cards)), cs...), l.cards...)
}

// PutBottom places a card on the bottom of the library.
func (l *Library) PutBottom(c cards.Card) {
	l.cards = append(l.cards, c)
}

// Pile is an unordered card bag used for Hand, Graveyard, and Exile.
// Iteration order is insertion order, which keeps tie-breaks
// deterministic.
type Pile struct {
	cards []cards.Card
}

// NewPile creates an empty pile.
func NewPile() *Pile { return &Pile{} }

// Add appends a card.
func (p *Pile) Add(c cards.Card) { p.cards = append(p.cards, c) }

// Cards returns the pile contents. Callers must not mutate the slice.
func (p *Pile) Cards() []cards.Card { return p.cards }

// Len returns the number of cards.
func (p *Pile) Len() int { return len(p.cards) }

// Count returns the number of cards with the given name.
func (p *Pile) Count(name string) int {
	n := 0
	for _, c := range p.cards {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Contains reports whether the pile holds a card with the given name.
func (p *Pile) Contains(name string) bool { return p.Count(name) > 0 }

// Remove removes and returns the first card with the given name.
func (p *Pile) Remove(name string) (cards.Card, bool) {
	for i, c := range p.cards {
		if c.Name == name {
			return p.RemoveAt(i), true
		}
	}
	return cards.Card{}, false
}

// RemoveAt removes and returns the card at index i. Panics on an
// out-of-range index: removing from the wrong zone is a defect, not a
// recoverable state.
func (p *Pile) RemoveAt(i int) cards.Card {
	if i < 0 || i >= len(p.cards) {
		panic("pile: remove out of range")
	}
	c := p.cards[i]
	p.cards = append(p.cards[:i], p.cards[i+1:]...)
	return c
}

// Battlefield is the ordered list of permanents.
type Battlefield struct {
	perms []*Permanent
}

// NewBattlefield creates an empty battlefield.
func NewBattlefield() *Battlefield { return &Battlefield{} }

// Add places a permanent onto the battlefield.
func (b *Battlefield) Add(p *Permanent) { b.perms = append(b.perms, p) }

// Permanents returns all permanents in battlefield order. Callers must
// not mutate the slice.
func (b *Battlefield) Permanents() []*Permanent { return b.perms }

// Len returns the number of permanents.
func (b *Battlefield) Len() int { return len(b.perms) }

// Remove takes a permanent off the battlefield. Panics if the
// permanent is not present.
func (b *Battlefield) Remove(p *Permanent) {
	for i, q := range b.perms {
		if q == p {
			b.perms = append(b.perms[:i], b.perms[i+1:]...)
			return
		}
	}
	panic("battlefield: permanent not present")
}

// Lands returns all land permanents in battlefield order.
func (b *Battlefield) Lands() []*Permanent {
	var out []*Permanent
	for _, p := range b.perms {
		if p.Card.IsLand() {
			out = append(out, p)
		}
	}
	return out
}

// Creatures returns all permanents that are currently creatures
// (impending permanents with time counters left are excluded).
func (b *Battlefield) Creatures() []*Permanent {
	var out []*Permanent
	for _, p := range b.perms {
		if p.IsCreature() {
			out = append(out, p)
		}
	}
	return out
}
