// Package game implements the deterministic goldfish simulation engine:
// one game of the combo deck against a fixed, do-nothing opponent whose
// only action is losing life.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game/mana"
	"github.com/duskfold/goldfish/internal/game/rng"
)

// Result is the outcome of one game. Zero values mean "never happened".
type Result struct {
	// WinTurn is the turn the opponent's life reached zero.
	WinTurn int
	// TripleColorTurn is the first turn every color the deck needs was
	// simultaneously available from untapped lands.
	TripleColorTurn int
}

// Won reports whether the game ended in a win.
func (r Result) Won() bool { return r.WinTurn > 0 }

// Game simulates exactly one game. It owns its State and RNG; nothing
// is shared with other games, so independent games parallelize freely.
type Game struct {
	state     *State
	log       *zap.Logger
	colorGoal mana.Cost
	result    Result
}

// New creates a game over the deck with its own seeded RNG.
func New(deck cards.Deck, seed uint32, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		state:     NewState(deck.Cards, rng.New(seed)),
		log:       logger,
		colorGoal: deckColorGoal(deck.Cards),
	}
}

// Play runs the game to completion: a win or the turn ceiling.
//
// The on-the-play draw happens BEFORE the shuffle. The order is a
// reproducibility contract with other implementations sharing the RNG
// stream, not a gameplay requirement.
func (g *Game) Play() Result {
	s := g.state

	s.OnThePlay = s.RNG.Float64() < 0.5
	s.Library.Shuffle(s.RNG)
	g.resolveOpeningHand()

	for turn := 1; turn <= maxTurns; turn++ {
		g.playTurn(turn)
		if count := s.CardCount(); count != s.DeckSize {
			panic(fmt.Sprintf("game: zone card count %d != deck size %d", count, s.DeckSize))
		}
		if s.OppLife <= 0 {
			g.result.WinTurn = turn
			break
		}
	}

	g.log.Debug("game over",
		zap.Int("win_turn", g.result.WinTurn),
		zap.Int("triple_color_turn", g.result.TripleColorTurn),
		zap.Bool("on_the_play", s.OnThePlay),
	)
	return g.result
}

// State exposes the game state for inspection in tests and tracing.
func (g *Game) State() *State { return g.state }

// deckColorGoal builds a one-pip-per-color cost covering every color
// the deck both asks for in spell pips and can actually produce from
// its lands. Pips the mana base cannot cover (graveyard-only cards) do
// not count toward the goal.
func deckColorGoal(deck []cards.Card) mana.Cost {
	producible := map[mana.Color]bool{}
	for _, c := range deck {
		if !c.IsLand() {
			continue
		}
		for _, color := range c.Colors {
			producible[color] = true
		}
		if c.VergeColor != "" {
			producible[c.VergeColor] = true
		}
	}

	var goal mana.Cost
	for _, c := range deck {
		for _, color := range mana.Colors {
			if color == mana.Colorless || c.Cost.Pip(color) == 0 || !producible[color] {
				continue
			}
			switch color {
			case mana.White:
				goal.White = 1
			case mana.Blue:
				goal.Blue = 1
			case mana.Black:
				goal.Black = 1
			case mana.Red:
				goal.Red = 1
			case mana.Green:
				goal.Green = 1
			}
		}
	}
	return goal
}
