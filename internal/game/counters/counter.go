// Package counters tracks named counters on permanents.
package counters

// Type names a kind of counter.
type Type string

const (
	// Time counters count down on impending creatures; the permanent
	// becomes a creature when they reach zero.
	Time Type = "time"
	// Lore counters count up on sagas, one per chapter.
	Lore Type = "lore"
)

// Counters manages the counters on one permanent. Counts never go
// negative.
type Counters struct {
	counts map[Type]int
}

// New creates an empty collection.
func New() *Counters {
	return &Counters{counts: make(map[Type]int)}
}

// Add adds the specified amount of the given counter type.
func (c *Counters) Add(t Type, amount int) {
	if amount <= 0 {
		return
	}
	c.counts[t] += amount
}

// Remove removes up to amount counters of the given type, flooring at
// zero. Returns the number actually removed.
func (c *Counters) Remove(t Type, amount int) int {
	if amount <= 0 {
		return 0
	}
	have := c.counts[t]
	if amount > have {
		amount = have
	}
	if amount == have {
		delete(c.counts, t)
	} else {
		c.counts[t] = have - amount
	}
	return amount
}

// Count returns the current count of the given counter type.
func (c *Counters) Count(t Type) int {
	return c.counts[t]
}

// Has reports whether any counters of the given type are present.
func (c *Counters) Has(t Type) bool {
	return c.counts[t] > 0
}

// Copy creates a deep copy of the collection.
func (c *Counters) Copy() *Counters {
	out := New()
	for t, n := range c.counts {
		out.counts[t] = n
	}
	return out
}
