package sim

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/duskfold/goldfish/internal/cards"
)

// SwapResult is one point of the land-configuration search.
type SwapResult struct {
	Swapped int
	Stats   *Stats
}

// OptimizeOutcome holds every point of the search.
type OptimizeOutcome struct {
	Points []SwapResult
}

// Best returns the point with the highest win rate, ties going to the
// fewest swaps.
func (o OptimizeOutcome) Best() SwapResult {
	best := o.Points[0]
	for _, p := range o.Points[1:] {
		if p.Stats.WinRate() > best.Stats.WinRate() {
			best = p
		}
	}
	return best
}

// OptimizeLands grid-searches deck variants that replace n copies of
// swapOut with swapIn, for n in [0, maxSwaps], re-running the batch at
// each point with the same base seed so variants are compared on
// identical RNG streams.
func OptimizeLands(ctx context.Context, deck cards.Deck, reg *cards.Registry,
	swapOut, swapIn string, maxSwaps int, opts Options, logger *zap.Logger) (OptimizeOutcome, error) {

	replacement, ok := reg.Get(swapIn)
	if !ok {
		return OptimizeOutcome{}, fmt.Errorf("unknown land %q", swapIn)
	}
	if !replacement.IsLand() {
		return OptimizeOutcome{}, fmt.Errorf("%q is not a land", swapIn)
	}
	available := 0
	for _, c := range deck.Cards {
		if c.Name == swapOut {
			available++
		}
	}
	if maxSwaps > available {
		maxSwaps = available
	}

	var outcome OptimizeOutcome
	for n := 0; n <= maxSwaps; n++ {
		variant := swapLands(deck, swapOut, replacement, n)
		stats := NewRunner(variant, opts, logger).Run(ctx)
		outcome.Points = append(outcome.Points, SwapResult{Swapped: n, Stats: stats})

		if err := ctx.Err(); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

func swapLands(deck cards.Deck, swapOut string, swapIn cards.Card, n int) cards.Deck {
	variant := cards.Deck{
		Name:  fmt.Sprintf("%s+%d%s", deck.Name, n, swapIn.Name),
		Cards: make([]cards.Card, len(deck.Cards)),
	}
	copy(variant.Cards, deck.Cards)
	for i := range variant.Cards {
		if n == 0 {
			break
		}
		if variant.Cards[i].Name == swapOut {
			variant.Cards[i] = swapIn
			n--
		}
	}
	return variant
}
