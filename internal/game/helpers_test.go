package game

import (
	"testing"

	"go.uber.org/zap"

	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game/mana"
	"github.com/duskfold/goldfish/internal/game/rng"
)

func mustCost(t *testing.T, s string) mana.Cost {
	t.Helper()
	cost, err := mana.ParseCost(s)
	if err != nil {
		t.Fatalf("ParseCost(%q): %v", s, err)
	}
	return cost
}

func basicLand(name string, color mana.Color) cards.Card {
	return cards.Card{
		Name:     name,
		Kind:     cards.KindLand,
		Subtypes: []string{name},
		Colors:   mana.Set{color},
	}
}

func island() cards.Card { return basicLand("Island", mana.Blue) }
func swamp() cards.Card  { return basicLand("Swamp", mana.Black) }
func forest() cards.Card { return basicLand("Forest", mana.Green) }

func surveilLand(name string, colors ...mana.Color) cards.Card {
	return cards.Card{
		Name:         name,
		Kind:         cards.KindLand,
		EntersTapped: true,
		Colors:       colors,
		SurveilCount: 1,
	}
}

func bringer(t *testing.T) cards.Card {
	return cards.Card{
		Name:          cardBringer,
		Kind:          cards.KindCreature,
		Cost:          mustCost(t, "{6}{B}{B}"),
		Power:         6,
		Toughness:     6,
		CreatureTypes: []string{"Vampire"},
		Abilities:     []cards.Ability{cards.AbilityMassReanimate},
	}
}

func terror(t *testing.T) cards.Card {
	return cards.Card{
		Name:          cardTerror,
		Kind:          cards.KindCreature,
		Cost:          mustCost(t, "{3}{R}{R}"),
		Power:         5,
		Toughness:     4,
		CreatureTypes: []string{"Dragon"},
		Abilities:     []cards.Ability{cards.AbilityDamageOnEnter},
	}
}

func mimic(t *testing.T) cards.Card {
	return cards.Card{
		Name:          cardMimic,
		Kind:          cards.KindCreature,
		Cost:          mustCost(t, "{1}{G}"),
		Power:         2,
		Toughness:     1,
		CreatureTypes: []string{"Plant", "Soldier"},
		Abilities:     []cards.Ability{cards.AbilityCopyFromGraveyard},
	}
}

func kiora(t *testing.T) cards.Card {
	return cards.Card{
		Name:          cardKiora,
		Kind:          cards.KindCreature,
		Cost:          mustCost(t, "{2}{U}"),
		Power:         2,
		Toughness:     5,
		CreatureTypes: []string{"Merfolk"},
		Abilities:     []cards.Ability{cards.AbilityDrawTwoDiscardTwo},
	}
}

func crab(t *testing.T) cards.Card {
	return cards.Card{
		Name:          cardCrab,
		Kind:          cards.KindCreature,
		Cost:          mustCost(t, "{3}{U}"),
		Power:         3,
		Toughness:     3,
		CreatureTypes: []string{"Crab"},
		Abilities:     []cards.Ability{cards.AbilityMillReturn},
		MillCount:     4,
	}
}

func cacheGrab(t *testing.T) cards.Card {
	return cards.Card{
		Name:      millEnabler,
		Kind:      cards.KindSorcery,
		Cost:      mustCost(t, "{1}{G}"),
		Abilities: []cards.Ability{cards.AbilityMillReturn},
		MillCount: 4,
	}
}

func vanilla(t *testing.T, name, cost string, power int) cards.Card {
	return cards.Card{
		Name:          name,
		Kind:          cards.KindCreature,
		Cost:          mustCost(t, cost),
		Power:         power,
		Toughness:     power,
		CreatureTypes: []string{"Beast"},
	}
}

// newTestGame builds a game directly over raw cards, bypassing the
// opening sequence so tests can stage zones by hand.
func newTestGame(deck []cards.Card) *Game {
	g := &Game{
		state: NewState(deck, rng.New(1)),
		log:   zap.NewNop(),
	}
	g.state.Turn = 1
	return g
}

// addLand puts an untapped land straight onto the battlefield.
func addLand(g *Game, c cards.Card) *Permanent {
	p := NewPermanent(c, 0)
	g.state.Battlefield.Add(p)
	return p
}
