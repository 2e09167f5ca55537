package mana

import "sort"

// Option describes one untapped land available to a payment attempt:
// the set of colors it can produce right now. An empty set marks a land
// whose production is fully gated off at the moment.
type Option struct {
	Colors Set
}

// Assignment pairs an option index with the color that land was chosen
// to produce.
type Assignment struct {
	Index int
	Color Color
}

// Plan computes a full land-to-color assignment for cost, or reports
// that the cost is unpayable. It mutates nothing: callers tap exactly
// the assigned lands on success and nothing on failure, which keeps the
// affordability check and the actual payment on the same code path.
//
// Colors are paid in ascending scarcity order (rarest first), and for
// each requirement the least flexible candidate land is taken, so
// flexible lands stay free for later requirements. Greedy assignment in
// list order is wrong here: it can burn the only land able to pay a
// rare pip on a generic slot.
func Plan(cost Cost, options []Option) ([]Assignment, bool) {
	required := cost.Value()
	if required == 0 {
		return nil, true
	}
	if len(options) < required {
		return nil, false
	}

	assigned := make([]bool, len(options))
	plan := make([]Assignment, 0, required)

	type requirement struct {
		color    Color
		pips     int
		scarcity int
	}
	var reqs []requirement
	for _, color := range Colors {
		pips := cost.Pip(color)
		if pips == 0 {
			continue
		}
		scarcity := 0
		for _, opt := range options {
			if opt.Colors.Has(color) {
				scarcity++
			}
		}
		reqs = append(reqs, requirement{color: color, pips: pips, scarcity: scarcity})
	}
	// Stable sort keeps WUBRG order for equal scarcity, which makes tie
	// resolution deterministic.
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].scarcity < reqs[j].scarcity
	})

	for _, req := range reqs {
		for need := req.pips; need > 0; need-- {
			idx := pickLeastFlexible(options, assigned, req.color)
			if idx < 0 {
				return nil, false
			}
			assigned[idx] = true
			plan = append(plan, Assignment{Index: idx, Color: req.color})
		}
	}

	for need := cost.Generic; need > 0; need-- {
		idx := pickLeastFlexible(options, assigned, "")
		if idx < 0 {
			return nil, false
		}
		assigned[idx] = true
		plan = append(plan, Assignment{Index: idx, Color: options[idx].Colors[0]})
	}

	return plan, true
}

// pickLeastFlexible returns the unassigned option with the fewest
// producible colors that can produce color (any producible color when
// color is empty), breaking ties by list order. Returns -1 if no
// candidate exists.
func pickLeastFlexible(options []Option, assigned []bool, color Color) int {
	best := -1
	for i, opt := range options {
		if assigned[i] || len(opt.Colors) == 0 {
			continue
		}
		if color != "" && !opt.Colors.Has(color) {
			continue
		}
		if best < 0 || len(opt.Colors) < len(options[best].Colors) {
			best = i
		}
	}
	return best
}
