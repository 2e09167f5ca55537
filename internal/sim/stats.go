// Package sim runs batches of independent games and aggregates their
// results.
package sim

import (
	"sort"

	"github.com/google/uuid"

	"github.com/duskfold/goldfish/internal/game"
)

// Stats aggregates the results of one batch of games.
type Stats struct {
	BatchID uuid.UUID
	Runs    int
	Wins    int

	// WinTurns histograms wins by the turn they happened.
	WinTurns map[int]int
	// TripleColorTurns histograms the first turn all needed colors were
	// simultaneously available.
	TripleColorTurns map[int]int

	totalWinTurn int
}

func newStats(runs int) *Stats {
	return &Stats{
		BatchID:          uuid.New(),
		Runs:             runs,
		WinTurns:         make(map[int]int),
		TripleColorTurns: make(map[int]int),
	}
}

func (s *Stats) record(res game.Result) {
	if res.Won() {
		s.Wins++
		s.WinTurns[res.WinTurn]++
		s.totalWinTurn += res.WinTurn
	}
	if res.TripleColorTurn > 0 {
		s.TripleColorTurns[res.TripleColorTurn]++
	}
}

// WinRate returns the fraction of games won.
func (s *Stats) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Runs)
}

// AvgWinTurn returns the mean win turn across won games.
func (s *Stats) AvgWinTurn() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.totalWinTurn) / float64(s.Wins)
}

// WinRateByTurn returns the cumulative fraction of games won on or
// before turn.
func (s *Stats) WinRateByTurn(turn int) float64 {
	if s.Runs == 0 {
		return 0
	}
	won := 0
	for t, n := range s.WinTurns {
		if t <= turn {
			won += n
		}
	}
	return float64(won) / float64(s.Runs)
}

// Turns returns the sorted turns with at least one win.
func (s *Stats) Turns() []int {
	turns := make([]int, 0, len(s.WinTurns))
	for t := range s.WinTurns {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	return turns
}
