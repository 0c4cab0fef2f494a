package rarity

import (
	"strings"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// Rarity is the quality tier of an item
type Rarity string

const (
	Common    Rarity = "Common"
	Rare      Rarity = "Rare"
	Epic      Rarity = "Epic"
	Legendary Rarity = "Legendary"
)

// SpellResources is the inclusive resource range a spell of a given rarity draws from
type SpellResources struct {
	Min int
	Max int
}

type entry struct {
	multiplier     int
	percentBase    int
	spellOdds      int
	spellResources SpellResources
}

var table = map[Rarity]entry{
	Common:    {multiplier: 10, percentBase: 100, spellOdds: 8, spellResources: SpellResources{Min: 1, Max: 10}},
	Rare:      {multiplier: 20, percentBase: 200, spellOdds: 6, spellResources: SpellResources{Min: 11, Max: 20}},
	Epic:      {multiplier: 30, percentBase: 300, spellOdds: 4, spellResources: SpellResources{Min: 21, Max: 30}},
	Legendary: {multiplier: 40, percentBase: 400, spellOdds: 2, spellResources: SpellResources{Min: 31, Max: 40}},
}

// All returns every rarity ordered from lowest to highest
func All() []Rarity {
	return []Rarity{Common, Rare, Epic, Legendary}
}

// Parse resolves a rarity name, ignoring case
func Parse(name string) (Rarity, error) {
	for _, r := range All() {
		if strings.EqualFold(string(r), strings.TrimSpace(name)) {
			return r, nil
		}
	}
	return "", generr.Lookupf("unknown rarity %q", name)
}

// Lower is the rarity as it appears in output identifiers
func (r Rarity) Lower() string {
	return strings.ToLower(string(r))
}

func (r Rarity) lookup() (entry, error) {
	e, ok := table[r]
	if !ok {
		return entry{}, generr.Lookupf("unknown rarity %q", string(r)).WithMeta("rarity", string(r))
	}
	return e, nil
}

// Multiplier is the power multiplier: 10, 20, 30 or 40
func Multiplier(r Rarity) (int, error) {
	e, err := r.lookup()
	if err != nil {
		return 0, err
	}
	return e.multiplier, nil
}

// PercentBaseMultiplier is added to the percent-feature upper bound: 100..400
func PercentBaseMultiplier(r Rarity) (int, error) {
	e, err := r.lookup()
	if err != nil {
		return 0, err
	}
	return e.percentBase, nil
}

// SpellOdds is the spell odds value: 8, 6, 4 or 2
func SpellOdds(r Rarity) (int, error) {
	e, err := r.lookup()
	if err != nil {
		return 0, err
	}
	return e.spellOdds, nil
}

// SpellResourceRange returns the resource range for spells of this rarity
func SpellResourceRange(r Rarity) (SpellResources, error) {
	e, err := r.lookup()
	if err != nil {
		return SpellResources{}, err
	}
	return e.spellResources, nil
}
