package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game"
	"github.com/duskfold/goldfish/internal/game/mana"
)

// smallDeck is a minimal legal list: enough lands to keep hands and a
// creature that can win by combat inside the turn ceiling.
func smallDeck(t *testing.T) cards.Deck {
	t.Helper()
	bear, err := mana.ParseCost("{1}{G}")
	require.NoError(t, err)

	creature := cards.Card{
		Name: "Grizzly Bears", Kind: cards.KindCreature,
		Cost: bear, Power: 2, Toughness: 2, CreatureTypes: []string{"Bear"},
	}
	forest := cards.Card{
		Name: "Forest", Kind: cards.KindLand,
		Subtypes: []string{"Forest"}, Colors: mana.Set{mana.Green},
	}

	deck := cards.Deck{Name: "bears"}
	for i := 0; i < 20; i++ {
		deck.Cards = append(deck.Cards, creature)
	}
	for i := 0; i < 20; i++ {
		deck.Cards = append(deck.Cards, forest)
	}
	return deck
}

func TestRunnerDeterministicAcrossWorkerCounts(t *testing.T) {
	deck := smallDeck(t)

	one := NewRunner(deck, Options{Runs: 64, Seed: 7, Workers: 1}, zaptest.NewLogger(t)).Run(context.Background())
	many := NewRunner(deck, Options{Runs: 64, Seed: 7, Workers: 8}, zaptest.NewLogger(t)).Run(context.Background())

	assert.Equal(t, one.Wins, many.Wins)
	assert.Equal(t, one.WinTurns, many.WinTurns)
	assert.Equal(t, one.TripleColorTurns, many.TripleColorTurns)
}

func TestRunnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats := NewRunner(smallDeck(t), Options{Runs: 1000, Seed: 1}, nil).Run(ctx)
	assert.Less(t, stats.Runs, 1000, "a cancelled context must not play the full batch")
}

func TestStatsAggregation(t *testing.T) {
	s := newStats(4)
	s.record(game.Result{WinTurn: 5, TripleColorTurn: 3})
	s.record(game.Result{WinTurn: 7, TripleColorTurn: 2})
	s.record(game.Result{})
	s.record(game.Result{TripleColorTurn: 4})

	assert.Equal(t, 2, s.Wins)
	assert.InDelta(t, 0.5, s.WinRate(), 1e-9)
	assert.InDelta(t, 6.0, s.AvgWinTurn(), 1e-9)
	assert.InDelta(t, 0.25, s.WinRateByTurn(5), 1e-9)
	assert.InDelta(t, 0.5, s.WinRateByTurn(7), 1e-9)
	assert.Equal(t, []int{5, 7}, s.Turns())
	assert.Len(t, s.TripleColorTurns, 3)
}

func TestGameSeedSpacing(t *testing.T) {
	seen := map[uint32]bool{}
	for i := 0; i < 1000; i++ {
		s := gameSeed(1, i)
		assert.False(t, seen[s], "seed collision at index %d", i)
		seen[s] = true
	}
}

func TestSwapLands(t *testing.T) {
	deck := smallDeck(t)
	swampCard := cards.Card{Name: "Swamp", Kind: cards.KindLand, Subtypes: []string{"Swamp"}, Colors: mana.Set{mana.Black}}

	variant := swapLands(deck, "Forest", swampCard, 3)

	count := func(d cards.Deck, name string) int {
		n := 0
		for _, c := range d.Cards {
			if c.Name == name {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 17, count(variant, "Forest"))
	assert.Equal(t, 3, count(variant, "Swamp"))
	assert.Equal(t, 20, count(deck, "Forest"), "the input deck is untouched")
	assert.Equal(t, len(deck.Cards), len(variant.Cards))
}
