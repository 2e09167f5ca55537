package mana

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Cost represents a parsed mana cost: a generic amount plus per-color
// pip counts.
type Cost struct {
	Generic   int
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
}

var symbolPattern = regexp.MustCompile(`\{([^}]+)\}`)

// ParseCost parses a mana cost string (e.g., "{1}{G}", "{6}{B}{B}").
// Supports generic amounts, the five colors, and {C}.
func ParseCost(costStr string) (Cost, error) {
	var cost Cost
	if costStr == "" {
		return cost, nil
	}

	matches := symbolPattern.FindAllStringSubmatch(costStr, -1)
	if len(matches) == 0 {
		return cost, fmt.Errorf("malformed mana cost %q", costStr)
	}

	for _, match := range matches {
		symbol := strings.ToUpper(strings.TrimSpace(match[1]))
		switch symbol {
		case "W":
			cost.White++
		case "U":
			cost.Blue++
		case "B":
			cost.Black++
		case "R":
			cost.Red++
		case "G":
			cost.Green++
		case "C":
			cost.Colorless++
		default:
			num, err := strconv.Atoi(symbol)
			if err != nil {
				return Cost{}, fmt.Errorf("unknown mana symbol {%s}", symbol)
			}
			cost.Generic += num
		}
	}

	return cost, nil
}

// Pip returns the pip count for a color.
func (c Cost) Pip(color Color) int {
	switch color {
	case White:
		return c.White
	case Blue:
		return c.Blue
	case Black:
		return c.Black
	case Red:
		return c.Red
	case Green:
		return c.Green
	case Colorless:
		return c.Colorless
	default:
		return 0
	}
}

// Value returns the total mana value: generic plus every pip.
func (c Cost) Value() int {
	return c.Generic + c.White + c.Blue + c.Black + c.Red + c.Green + c.Colorless
}

// String returns the canonical cost string.
func (c Cost) String() string {
	var b strings.Builder
	if c.Generic > 0 {
		fmt.Fprintf(&b, "{%d}", c.Generic)
	}
	for _, color := range Colors {
		for i := 0; i < c.Pip(color); i++ {
			fmt.Fprintf(&b, "{%s}", color)
		}
	}
	return b.String()
}
