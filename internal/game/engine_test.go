package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game/mana"
)

// fullDeck assembles the sixty-card list the simulator ships with.
func fullDeck(t *testing.T) cards.Deck {
	t.Helper()

	overlord := cards.Card{
		Name:          "Overlord of the Floodpits",
		Kind:          cards.KindCreature,
		Cost:          mustCost(t, "{3}{U}{U}"),
		Power:         5,
		Toughness:     5,
		Impending:     &cards.ImpendingCost{Cost: mustCost(t, "{1}{U}"), Counters: 4},
		Abilities:     []cards.Ability{cards.AbilityMillReturn},
		MillCount:     2,
		CreatureTypes: []string{"Avatar", "Horror"},
	}
	saga := testSaga(t)
	sewers := surveilLand("Undercity Sewers", mana.Blue, mana.Black)
	mortuary := surveilLand("Underground Mortuary", mana.Black, mana.Green)
	maze := surveilLand("Hedge Maze", mana.Green, mana.Blue)
	gloomlake := cards.Card{
		Name: "Gloomlake Verge", Kind: cards.KindLand,
		Colors: mana.Set{mana.Blue}, VergeColor: mana.Black, VergeSubtypes: []string{"Swamp"},
	}
	wastewood := cards.Card{
		Name: "Wastewood Verge", Kind: cards.KindLand,
		Colors: mana.Set{mana.Black}, VergeColor: mana.Green, VergeSubtypes: []string{"Forest"},
	}
	cavern := cards.Card{Name: "Cavern of Souls", Kind: cards.KindLand, AnyColorForType: true}
	town := cards.Card{Name: "Starting Town", Kind: cards.KindLand, LifeGated: true}
	crossroads := cards.Card{Name: "Forsaken Crossroads", Kind: cards.KindLand, ChoosesColor: true, EntersTapped: true}

	var deck cards.Deck
	deck.Name = "sultai-reanimator"
	add := func(n int, c cards.Card) {
		for i := 0; i < n; i++ {
			deck.Cards = append(deck.Cards, c)
		}
	}
	add(4, bringer(t))
	add(4, terror(t))
	add(4, mimic(t))
	add(4, kiora(t))
	add(4, crab(t))
	add(4, overlord)
	add(4, cacheGrab(t))
	add(4, saga)
	add(4, sewers)
	add(4, mortuary)
	add(4, maze)
	add(4, gloomlake)
	add(4, wastewood)
	add(2, cavern)
	add(2, town)
	add(1, crossroads)
	add(1, island())
	add(1, swamp())
	add(1, forest())

	require.Len(t, deck.Cards, 60)
	return deck
}

func TestPlayFullGame(t *testing.T) {
	deck := fullDeck(t)

	for _, seed := range []uint32{1, 42, 12345, 0xDEADBEEF} {
		g := New(deck, seed, zaptest.NewLogger(t))
		res := g.Play()

		assert.LessOrEqual(t, res.WinTurn, maxTurns)
		assert.GreaterOrEqual(t, res.WinTurn, 0)
		assert.Equal(t, g.State().DeckSize, g.State().CardCount(),
			"seed %d left cards unaccounted for", seed)
		if res.Won() {
			assert.LessOrEqual(t, g.State().OppLife, 0)
		} else {
			assert.Equal(t, maxTurns, g.State().Turn)
		}
	}
}

func TestFullDeckWinTurnDistribution(t *testing.T) {
	deck := fullDeck(t)

	const runs = 300
	wins, byTurnSix := 0, 0
	for i := 0; i < runs; i++ {
		res := New(deck, uint32(i)*0x9E3779B9+1, nil).Play()
		if res.Won() {
			wins++
			if res.WinTurn <= 6 {
				byTurnSix++
			}
		}
	}

	// The list is built to close the game early: nearly every run ends
	// inside the turn ceiling, and most runs hit the reanimation line
	// on turns four through six.
	assert.Greater(t, wins, runs*9/10, "wins: %d of %d", wins, runs)
	assert.Greater(t, byTurnSix, runs/2, "wins by turn six: %d of %d", byTurnSix, runs)
}

func TestPlayIsDeterministic(t *testing.T) {
	deck := fullDeck(t)

	first := New(deck, 99, nil).Play()
	second := New(deck, 99, nil).Play()
	assert.Equal(t, first, second)
}

func TestDeckColorGoalSkipsUnproducibleColors(t *testing.T) {
	deck := fullDeck(t)
	goal := deckColorGoal(deck.Cards)

	// The deck casts into blue, black, and green; the damage trigger's
	// red pips have no land behind them and stay out of the goal.
	assert.Equal(t, 1, goal.Blue)
	assert.Equal(t, 1, goal.Black)
	assert.Equal(t, 1, goal.Green)
	assert.Equal(t, 0, goal.Red)
	assert.Equal(t, 0, goal.White)
}

func TestNewGameNilLogger(t *testing.T) {
	g := New(fullDeck(t), 7, nil)
	assert.NotPanics(t, func() { g.Play() })
}
