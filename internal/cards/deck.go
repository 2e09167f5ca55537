package cards

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Deck is an ordered multiset of cards resolved against the registry.
type Deck struct {
	Name  string
	Cards []Card
}

// Size returns the number of cards in the deck.
func (d Deck) Size() int { return len(d.Cards) }

// LoadDeck reads a deck list from path. Lines are "<count> <card name>";
// blank lines and lines starting with '#' are skipped. Every name must
// resolve against the registry; an unknown name fails the whole load
// before any game starts.
func LoadDeck(path string, reg *Registry) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return Deck{}, fmt.Errorf("opening deck list: %w", err)
	}
	defer f.Close()

	deck := Deck{Name: deckName(path)}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		count, name, err := parseDeckLine(line)
		if err != nil {
			return Deck{}, fmt.Errorf("deck line %d: %w", lineNo, err)
		}
		card, ok := reg.Get(name)
		if !ok {
			return Deck{}, fmt.Errorf("deck line %d: unknown card %q", lineNo, name)
		}
		for i := 0; i < count; i++ {
			deck.Cards = append(deck.Cards, card)
		}
	}
	if err := scanner.Err(); err != nil {
		return Deck{}, fmt.Errorf("reading deck list: %w", err)
	}
	if deck.Size() == 0 {
		return Deck{}, fmt.Errorf("deck list %s is empty", path)
	}

	return deck, nil
}

func parseDeckLine(line string) (int, string, error) {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) != 2 {
		return 0, "", fmt.Errorf("malformed line %q", line)
	}
	count, err := strconv.Atoi(strings.TrimSuffix(fields[0], "x"))
	if err != nil || count <= 0 {
		return 0, "", fmt.Errorf("bad count in %q", line)
	}
	name := strings.TrimSpace(fields[1])
	if name == "" {
		return 0, "", fmt.Errorf("missing card name in %q", line)
	}
	return count, name, nil
}

func deckName(path string) string {
	base := path
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}
	return base
}
