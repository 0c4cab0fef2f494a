package asset

import (
	"strings"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// SpellType is the effect of a spellbook
type SpellType string

const (
	SpellFire       SpellType = "Fire"
	SpellEarth      SpellType = "Earth"
	SpellWater      SpellType = "Water"
	SpellExperience SpellType = "Experience"
	SpellCraft      SpellType = "Craft"
	SpellItem       SpellType = "Item"
)

// SpellTypes returns every spell type
func SpellTypes() []SpellType {
	return []SpellType{SpellFire, SpellEarth, SpellWater, SpellExperience, SpellCraft, SpellItem}
}

// ParseSpellType resolves a spell type name, ignoring case
func ParseSpellType(name string) (SpellType, error) {
	for _, s := range SpellTypes() {
		if strings.EqualFold(string(s), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return "", generr.Lookupf("unknown spell type %q", name)
}

// HasValue is false for spells whose value is always 0
func (s SpellType) HasValue() bool {
	return s != SpellCraft && s != SpellItem
}

// ValueMultiplier is the trailing factor of the spell value formula
func (s SpellType) ValueMultiplier() (int, error) {
	switch s {
	case SpellExperience:
		return 2, nil
	case SpellFire, SpellEarth, SpellWater:
		return 1, nil
	case SpellCraft, SpellItem:
		return 0, nil
	default:
		return 0, generr.Lookupf("unknown spell type %q", string(s))
	}
}
