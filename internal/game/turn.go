package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game/counters"
)

// Phase represents a step of the turn. Phases advance unconditionally
// in a fixed cyclic order; there is no player choice to skip one.
type Phase int

const (
	PhaseUntap Phase = iota
	PhaseUpkeep
	PhaseDraw
	PhaseMain1
	PhaseCombat
	PhaseMain2
	PhaseEnd
)

var phaseNames = map[Phase]string{
	PhaseUntap:  "UNTAP",
	PhaseUpkeep: "UPKEEP",
	PhaseDraw:   "DRAW",
	PhaseMain1:  "MAIN1",
	PhaseCombat: "COMBAT",
	PhaseMain2:  "MAIN2",
	PhaseEnd:    "END",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// playTurn runs one full turn through every phase.
func (g *Game) playTurn(turn int) {
	s := g.state
	s.Turn = turn

	s.Phase = PhaseUntap
	g.untapStep()

	s.Phase = PhaseUpkeep

	s.Phase = PhaseDraw
	g.drawStep()

	s.Phase = PhaseMain1
	g.advanceSagas()
	g.playLand()
	g.trackColorGoal()
	g.castSpells()

	if s.OppLife <= 0 {
		return
	}

	s.Phase = PhaseCombat
	g.combatStep()
	if s.OppLife <= 0 {
		return
	}

	s.Phase = PhaseMain2
	g.castSpells()
	if s.OppLife <= 0 {
		return
	}

	s.Phase = PhaseEnd
	g.endStep()
}

func (g *Game) untapStep() {
	s := g.state
	for _, p := range s.Battlefield.Permanents() {
		p.Untap()
	}
	s.LandPlayed = false
	s.Pool.Empty()
}

func (g *Game) drawStep() {
	s := g.state
	if s.Turn == 1 && s.OnThePlay {
		return
	}
	g.draw(1)
}

// advanceSagas gives every saga that was not played this turn a lore
// counter and resolves its chapter; a saga reaching its final chapter
// is sacrificed.
func (g *Game) advanceSagas() {
	s := g.state
	sagas := make([]*Permanent, 0)
	for _, p := range s.Battlefield.Permanents() {
		if p.Card.Kind == cards.KindSaga && p.TurnEntered < s.Turn {
			sagas = append(sagas, p)
		}
	}

	for _, saga := range sagas {
		saga.Counters.Add(counters.Lore, 1)
		chapter := saga.Counters.Count(counters.Lore)
		chapters := saga.Card.Chapters
		if chapter <= len(chapters) {
			g.log.Debug("saga chapter",
				zap.String("card", saga.Card.Name),
				zap.Int("chapter", chapter),
			)
			g.resolveAbility(chapters[chapter-1], saga)
		}
		if saga.Counters.Count(counters.Lore) >= len(chapters) {
			s.Battlefield.Remove(saga)
			s.Graveyard.Add(saga.Card)
			g.log.Debug("saga sacrificed", zap.String("card", saga.Card.Name))
		}
	}
}

// combatStep auto-declares every creature free of summoning sickness,
// untapped, and out of impending form as an attacker; there is no
// blocking, all damage goes to the opponent's face.
func (g *Game) combatStep() {
	s := g.state
	total := 0
	for _, p := range s.Battlefield.Permanents() {
		if !p.CanAttack(s.Turn) {
			continue
		}
		p.Tap()
		total += p.Power()
	}
	if total > 0 {
		s.OppLife -= total
		g.log.Debug("combat damage",
			zap.Int("damage", total),
			zap.Int("opp_life", s.OppLife),
		)
	}
}

// endStep decrements time counters on creature permanents only (sagas
// count up, not down, and must not be touched here), then discards down
// to the hand limit.
func (g *Game) endStep() {
	s := g.state
	for _, p := range s.Battlefield.Permanents() {
		if p.Card.Kind == cards.KindCreature && p.Counters.Has(counters.Time) {
			p.Counters.Remove(counters.Time, 1)
			if !p.Counters.Has(counters.Time) {
				g.log.Debug("impending complete", zap.String("card", p.Card.Name))
			}
		}
	}

	for s.Hand.Len() > handLimit {
		idx := g.discardPick()
		discarded := s.Hand.RemoveAt(idx)
		s.Graveyard.Add(discarded)
		g.log.Debug("discarded to hand limit", zap.String("card", discarded.Name))
	}
}

// trackColorGoal records the first turn the deck's colored pips are all
// simultaneously payable from untapped lands.
func (g *Game) trackColorGoal() {
	if g.result.TripleColorTurn != 0 || g.colorGoal.Value() == 0 {
		return
	}
	if g.state.CanPay(g.colorGoal, nil) {
		g.result.TripleColorTurn = g.state.Turn
	}
}
