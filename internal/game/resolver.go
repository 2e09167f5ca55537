package game

import (
	"go.uber.org/zap"

	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/game/counters"
	"github.com/duskfold/goldfish/internal/game/mana"
)

// Combo-relevant card identities. Abilities dispatch by tag, but the
// decision heuristics and the surveil/mill-return allow-lists are tuned
// to this archetype's named pieces.
const (
	cardBringer = "Bringer of the Last Gift"
	cardTerror  = "Terror of the Peaks"
	cardMimic   = "Seedglaive Mimic"
	cardKiora   = "Kiora, the Rising Tide"
	cardCrab    = "Eddymurk Crab"
)

// millEnabler is the cheap card treated as a keepable hand's engine
// starter by the mulligan heuristic.
const millEnabler = "Cache Grab"

// draw moves n cards from library to hand. An empty library makes the
// draw a no-op; the goldfish opponent never decks us out.
func (g *Game) draw(n int) {
	for i := 0; i < n; i++ {
		c, ok := g.state.Library.Draw()
		if !ok {
			return
		}
		g.state.Hand.Add(c)
		g.log.Debug("drew", zap.String("card", c.Name))
	}
}

// mill moves up to n cards from the top of the library to the
// graveyard.
func (g *Game) mill(n int) {
	for i := 0; i < n; i++ {
		c, ok := g.state.Library.Draw()
		if !ok {
			return
		}
		g.state.Graveyard.Add(c)
		g.log.Debug("milled", zap.String("card", c.Name))
	}
}

// surveil peeks at up to n top cards one at a time. Cards on the
// graveyard allow-list are binned; the first card kept on top ends the
// surveil; cards below an unmoved top card are never inspected.
func (g *Game) surveil(n int) {
	for i := 0; i < n; i++ {
		top, ok := g.state.Library.Peek()
		if !ok {
			return
		}
		if !g.surveilToGraveyard(top) {
			return
		}
		c, _ := g.state.Library.Draw()
		g.state.Graveyard.Add(c)
		g.log.Debug("surveilled to graveyard", zap.String("card", c.Name))
	}
}

// surveilToGraveyard is the surveil allow-list, re-evaluated per card
// since some entries depend on current hand contents.
func (g *Game) surveilToGraveyard(c cards.Card) bool {
	switch c.Name {
	case cardBringer, cardTerror:
		return true
	case cardMimic:
		// A spare copy fuels the dig line; bin it only while one is
		// already held.
		return g.state.Hand.Contains(cardMimic)
	default:
		return false
	}
}

// resolveEnter handles a permanent entering the battlefield: land
// choices and surveil, then the definition's enter abilities. The
// damage-trigger batch for an entering creature is the caller's
// responsibility so that simultaneous entries are handled as one batch.
func (g *Game) resolveEnter(p *Permanent) {
	def := p.Def()

	if def.IsLand() {
		if def.ChoosesColor {
			p.ChosenColor = g.chooseLandColor()
		}
		if def.AnyColorForType {
			p.ChosenType = g.chooseCreatureType()
		}
		if def.SurveilCount > 0 {
			g.surveil(def.SurveilCount)
		}
		return
	}

	for _, tag := range def.Abilities {
		g.resolveAbility(tag, p)
	}
}

// resolveAbility dispatches one ability tag.
func (g *Game) resolveAbility(tag cards.Ability, self *Permanent) {
	def := self.Def()
	switch tag {
	case cards.AbilityMill:
		g.mill(def.MillCount)

	case cards.AbilityMillReturn:
		g.mill(def.MillCount)
		if name, ok := g.millReturnPick(); ok {
			c, _ := g.state.Graveyard.Remove(name)
			g.state.Hand.Add(c)
			g.log.Debug("returned from graveyard", zap.String("card", c.Name))
		}

	case cards.AbilityDrawTwoDiscardTwo:
		// Draw before discarding: a discard target may be one of the
		// cards just drawn.
		g.draw(2)
		for i := 0; i < 2 && g.state.Hand.Len() > 0; i++ {
			idx := g.discardPick()
			c := g.state.Hand.RemoveAt(idx)
			g.state.Graveyard.Add(c)
			g.log.Debug("discarded", zap.String("card", c.Name))
		}

	case cards.AbilityDrawOne:
		g.draw(1)

	case cards.AbilityCopyFromGraveyard:
		g.copyFromGraveyard(self)

	case cards.AbilityMassReanimate:
		g.massReanimate(self)

	case cards.AbilityDamageOnEnter:
		// Triggers on other creatures entering; nothing resolves on the
		// bearer's own entry.

	default:
		panic("game: unknown ability tag " + string(tag))
	}
}

// copyFromGraveyard turns self into a copy of a creature card in the
// graveyard, chosen by fixed priority: the reanimator if present, else
// the damage trigger when it has company to bring back, else the mill
// engine when a spare copier in hand keeps the chain alive.
// Copying exiles the copied card and resolves its enter ability.
func (g *Game) copyFromGraveyard(self *Permanent) {
	gy := g.state.Graveyard

	var target string
	switch {
	case gy.Contains(cardBringer):
		target = cardBringer
	case gy.Contains(cardTerror) && g.graveyardCreatureCount() >= 2:
		target = cardTerror
	case g.state.Hand.Contains(cardMimic) && gy.Contains(cardCrab):
		target = cardCrab
	default:
		return
	}

	copied, _ := gy.Remove(target)
	g.state.Exile.Add(copied)
	self.CopyOf = &copied
	g.log.Debug("entered as copy", zap.String("copy_of", copied.Name))

	for _, tag := range copied.Abilities {
		g.resolveAbility(tag, self)
	}
}

func (g *Game) graveyardCreatureCount() int {
	n := 0
	for _, c := range g.state.Graveyard.Cards() {
		if c.IsCreature() {
			n++
		}
	}
	return n
}

// massReanimate is the combo payoff: every other non-impending creature
// on the battlefield goes to the graveyard, then every creature card in
// the graveyard enters the battlefield simultaneously; their enter
// abilities resolve one at a time, and finally the damage triggers fire
// for the whole batch. The reanimator only fires on a cast or copy
// entry, so a second reanimator brought back in the batch does not
// trigger again.
func (g *Game) massReanimate(self *Permanent) {
	s := g.state

	snapshot := append([]*Permanent(nil), s.Battlefield.Permanents()...)
	for _, p := range snapshot {
		if p == self || !p.IsCreature() {
			continue
		}
		s.Battlefield.Remove(p)
		s.Graveyard.Add(p.Card)
	}

	var entered []*Permanent
	for _, c := range s.Graveyard.Cards() {
		if c.IsCreature() {
			entered = append(entered, NewPermanent(c, s.Turn))
		}
	}
	for _, p := range entered {
		s.Graveyard.Remove(p.Card.Name)
		s.Battlefield.Add(p)
	}
	g.log.Debug("mass reanimation", zap.Int("creatures", len(entered)))

	for _, p := range entered {
		g.resolveEnterReanimated(p)
	}

	g.damageTriggers(entered)
}

// resolveEnterReanimated resolves the enter abilities of a creature
// returning via the reanimation batch, skipping the reanimation tag
// itself.
func (g *Game) resolveEnterReanimated(p *Permanent) {
	for _, tag := range p.Def().Abilities {
		if tag == cards.AbilityMassReanimate {
			continue
		}
		g.resolveAbility(tag, p)
	}
}

// damageTriggers resolves the damage-trigger creature for a batch of
// simultaneously entering creatures: each trigger instance present
// (entering ones included) deals damage equal to each entering
// creature's power, except that an instance never triggers for itself.
func (g *Game) damageTriggers(entered []*Permanent) {
	instances := 0
	for _, p := range g.state.Battlefield.Permanents() {
		if p.IsCreature() && p.Def().HasAbility(cards.AbilityDamageOnEnter) {
			instances++
		}
	}
	if instances == 0 {
		return
	}

	total := 0
	for _, p := range entered {
		if !p.IsCreature() {
			continue
		}
		triggers := instances
		if p.Def().HasAbility(cards.AbilityDamageOnEnter) {
			triggers--
		}
		total += p.Power() * triggers
	}
	if total > 0 {
		g.state.OppLife -= total
		g.log.Debug("damage triggers",
			zap.Int("damage", total),
			zap.Int("opp_life", g.state.OppLife),
		)
	}
}

// comboDamageEstimate is a pure advisory estimate of the damage the
// reanimation chain would deal this turn if executed now: trigger
// damage for everything that would re-enter, scaled by every
// damage-trigger instance on the field or bound for it, plus combat
// damage from creatures already able to attack.
func (g *Game) comboDamageEstimate() int {
	s := g.state

	instances := 0
	var pending []cards.Card
	for _, c := range s.Graveyard.Cards() {
		if !c.IsCreature() {
			continue
		}
		pending = append(pending, c)
		if c.HasAbility(cards.AbilityDamageOnEnter) {
			instances++
		}
	}
	var fielded []cards.Card
	for _, p := range s.Battlefield.Permanents() {
		if !p.IsCreature() {
			continue
		}
		fielded = append(fielded, p.Def())
		if p.Def().HasAbility(cards.AbilityDamageOnEnter) {
			instances++
		}
	}

	trigger := 0
	for _, c := range append(pending, fielded...) {
		n := instances
		if c.HasAbility(cards.AbilityDamageOnEnter) {
			n--
		}
		if n > 0 {
			trigger += c.Power * n
		}
	}

	combat := 0
	for _, p := range s.Battlefield.Permanents() {
		if p.CanAttack(s.Turn) {
			combat += p.Power()
		}
	}

	return trigger + combat
}

// comboLethal reports whether executing the combo now is estimated to
// win this turn.
func (g *Game) comboLethal() bool {
	return g.comboDamageEstimate() >= g.state.OppLife
}

// castSpells repeatedly casts the highest-priority castable spell until
// nothing is castable.
func (g *Game) castSpells() {
	for {
		idx, impending, ok := g.castPick()
		if !ok {
			return
		}
		g.castSpell(idx, impending)
		if g.state.OppLife <= 0 {
			return
		}
	}
}

// castSpell casts the hand card at idx, optionally for its impending
// cost.
func (g *Game) castSpell(idx int, impending bool) {
	s := g.state
	c := s.Hand.Cards()[idx]

	cost := c.Cost
	if impending {
		cost = c.Impending.Cost
	}
	if !s.Pay(cost, &c) {
		panic("game: cast selected an unpayable spell")
	}
	s.Hand.RemoveAt(idx)
	g.log.Debug("cast",
		zap.String("card", c.Name),
		zap.Bool("impending", impending),
	)

	if !c.IsPermanent() {
		for _, tag := range c.Abilities {
			g.resolveAbilitySpell(tag, c)
		}
		s.Graveyard.Add(c)
		return
	}

	p := NewPermanent(c, s.Turn)
	if impending {
		p.Counters.Add(counters.Time, c.Impending.Counters)
	}
	s.Battlefield.Add(p)
	g.resolveEnter(p)
	if p.IsCreature() {
		g.damageTriggers([]*Permanent{p})
	}
}

// resolveAbilitySpell resolves a tag for an instant or sorcery, which
// has no permanent of its own.
func (g *Game) resolveAbilitySpell(tag cards.Ability, c cards.Card) {
	tmp := NewPermanent(c, g.state.Turn)
	g.resolveAbility(tag, tmp)
}

// playLand plays the chosen land for the turn, if any.
func (g *Game) playLand() {
	s := g.state
	if s.LandPlayed {
		return
	}
	idx, ok := g.landPick()
	if !ok {
		return
	}
	c := s.Hand.RemoveAt(idx)
	p := NewPermanent(c, s.Turn)
	p.Tapped = c.EntersTapped
	s.Battlefield.Add(p)
	s.LandPlayed = true
	g.log.Debug("played land", zap.String("card", c.Name))
	g.resolveEnter(p)
}

// chooseLandColor picks the color for a color-choosing land: the color
// of the most common unmet pip across the hand, falling back to black.
func (g *Game) chooseLandColor() mana.Color {
	counts := map[mana.Color]int{}
	for _, c := range g.state.Hand.Cards() {
		for _, color := range mana.Colors {
			counts[color] += c.Cost.Pip(color)
		}
	}
	best := mana.Black
	bestCount := 0
	for _, color := range mana.Colors {
		if counts[color] > bestCount {
			best, bestCount = color, counts[color]
		}
	}
	return best
}

// chooseCreatureType picks the creature type for a type-choosing land:
// the type of the combo enabler if anywhere in our deck's plan, else
// the most common type in hand.
func (g *Game) chooseCreatureType() string {
	if mimic, ok := g.registryType(cardMimic); ok {
		return mimic
	}
	counts := map[string]int{}
	var best string
	bestCount := 0
	for _, c := range g.state.Hand.Cards() {
		for _, t := range c.CreatureTypes {
			counts[t]++
			if counts[t] > bestCount {
				best, bestCount = t, counts[t]
			}
		}
	}
	return best
}

// registryType finds the first creature type of the named card anywhere
// in the game's card pool.
func (g *Game) registryType(name string) (string, bool) {
	zones := [][]cards.Card{g.state.Hand.Cards(), g.state.Library.cards, g.state.Graveyard.Cards()}
	for _, zone := range zones {
		for _, c := range zone {
			if c.Name == name && len(c.CreatureTypes) > 0 {
				return c.CreatureTypes[0], true
			}
		}
	}
	return "", false
}
