package cards

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/duskfold/goldfish/internal/game/mana"
)

// Registry holds every card definition, keyed by name. It is loaded
// once at process start and never mutated during simulation.
type Registry struct {
	cards map[string]Card
}

// cardRecord is the on-disk JSON shape of one card. Costs are mana
// cost strings; kinds are the variant names.
type cardRecord struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Cost            string   `json:"cost,omitempty"`
	Subtypes        []string `json:"subtypes,omitempty"`
	EntersTapped    bool     `json:"entersTapped,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	Surveil         int      `json:"surveil,omitempty"`
	ChoosesColor    bool     `json:"choosesColor,omitempty"`
	AnyColorForType bool     `json:"anyColorForType,omitempty"`
	LifeGated       bool     `json:"lifeGated,omitempty"`
	VergeColor      string   `json:"vergeColor,omitempty"`
	VergeSubtypes   []string `json:"vergeSubtypes,omitempty"`
	Power           int      `json:"power,omitempty"`
	Toughness       int      `json:"toughness,omitempty"`
	CreatureTypes   []string `json:"creatureTypes,omitempty"`
	ImpendingCost   string   `json:"impendingCost,omitempty"`
	ImpendingCount  int      `json:"impendingCount,omitempty"`
	Abilities       []string `json:"abilities,omitempty"`
	Chapters        []string `json:"chapters,omitempty"`
	MillCount       int      `json:"millCount,omitempty"`
}

var kindsByName = map[string]Kind{
	"Land":        KindLand,
	"Creature":    KindCreature,
	"Instant":     KindInstant,
	"Sorcery":     KindSorcery,
	"Enchantment": KindEnchantment,
	"Saga":        KindSaga,
}

// LoadRegistry reads a JSON card database from path.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading card database: %w", err)
	}

	var records []cardRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing card database: %w", err)
	}

	out := make([]Card, 0, len(records))
	for _, rec := range records {
		card, err := rec.toCard()
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", rec.Name, err)
		}
		out = append(out, card)
	}

	return NewRegistry(out)
}

// NewRegistry builds a registry from card definitions. Duplicate names
// are a data error.
func NewRegistry(defs []Card) (*Registry, error) {
	byName := make(map[string]Card, len(defs))
	for _, card := range defs {
		if card.Name == "" {
			return nil, fmt.Errorf("card with empty name")
		}
		if _, exists := byName[card.Name]; exists {
			return nil, fmt.Errorf("duplicate card %q", card.Name)
		}
		byName[card.Name] = card
	}
	return &Registry{cards: byName}, nil
}

// Get returns the card definition for name.
func (r *Registry) Get(name string) (Card, bool) {
	card, ok := r.cards[name]
	return card, ok
}

// Len returns the number of definitions in the registry.
func (r *Registry) Len() int { return len(r.cards) }

func (rec cardRecord) toCard() (Card, error) {
	kind, ok := kindsByName[rec.Type]
	if !ok {
		return Card{}, fmt.Errorf("unknown card type %q", rec.Type)
	}

	cost, err := mana.ParseCost(rec.Cost)
	if err != nil {
		return Card{}, err
	}

	card := Card{
		Name:            rec.Name,
		Kind:            kind,
		Cost:            cost,
		Subtypes:        rec.Subtypes,
		EntersTapped:    rec.EntersTapped,
		SurveilCount:    rec.Surveil,
		ChoosesColor:    rec.ChoosesColor,
		AnyColorForType: rec.AnyColorForType,
		LifeGated:       rec.LifeGated,
		VergeSubtypes:   rec.VergeSubtypes,
		Power:           rec.Power,
		Toughness:       rec.Toughness,
		CreatureTypes:   rec.CreatureTypes,
		MillCount:       rec.MillCount,
	}

	for _, sym := range rec.Colors {
		color, err := parseColor(sym)
		if err != nil {
			return Card{}, err
		}
		card.Colors = append(card.Colors, color)
	}
	if rec.VergeColor != "" {
		color, err := parseColor(rec.VergeColor)
		if err != nil {
			return Card{}, err
		}
		card.VergeColor = color
	}

	for _, tag := range rec.Abilities {
		a := Ability(tag)
		if !a.Known() {
			return Card{}, fmt.Errorf("unknown ability %q", tag)
		}
		card.Abilities = append(card.Abilities, a)
	}
	for _, tag := range rec.Chapters {
		a := Ability(tag)
		if !a.Known() {
			return Card{}, fmt.Errorf("unknown chapter ability %q", tag)
		}
		card.Chapters = append(card.Chapters, a)
	}

	if rec.ImpendingCost != "" {
		impCost, err := mana.ParseCost(rec.ImpendingCost)
		if err != nil {
			return Card{}, err
		}
		if rec.ImpendingCount <= 0 {
			return Card{}, fmt.Errorf("impending cost without a counter count")
		}
		card.Impending = &ImpendingCost{Cost: impCost, Counters: rec.ImpendingCount}
	}

	if kind == KindSaga && len(card.Chapters) == 0 {
		return Card{}, fmt.Errorf("saga without chapters")
	}

	return card, nil
}

func parseColor(sym string) (mana.Color, error) {
	for _, c := range mana.Colors {
		if string(c) == sym {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", sym)
}
