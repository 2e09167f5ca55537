package mana

// Pool accumulates mana produced by tapping lands within a single
// payment attempt. It is owned by one game and cleared every untap
// step, so no locking is needed.
type Pool struct {
	amounts map[Color]int
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{amounts: make(map[Color]int)}
}

// Add adds mana of the given color.
func (p *Pool) Add(color Color, amount int) {
	if amount <= 0 {
		return
	}
	p.amounts[color] += amount
}

// Get returns the amount of the given color.
func (p *Pool) Get(color Color) int {
	return p.amounts[color]
}

// Spend removes mana of the given color. Returns false, leaving the
// pool untouched, if the pool holds less than the requested amount.
func (p *Pool) Spend(color Color, amount int) bool {
	if amount <= 0 {
		return true
	}
	if p.amounts[color] < amount {
		return false
	}
	p.amounts[color] -= amount
	return true
}

// Total returns the total mana across all colors.
func (p *Pool) Total() int {
	total := 0
	for _, v := range p.amounts {
		total += v
	}
	return total
}

// Empty clears the pool.
func (p *Pool) Empty() {
	p.amounts = make(map[Color]int)
}
