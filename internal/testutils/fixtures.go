package testutils

import (
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	"github.com/KirkDiggler/laddercast-metadata/internal/enumerator"
	"github.com/KirkDiggler/laddercast-metadata/internal/formula"
)

// CreateTestChest creates a chest attribute set with the tier derived from level
func CreateTestChest(level int) asset.AttributeSet {
	tier, err := rarity.Tier(level)
	if err != nil {
		panic(err)
	}
	return asset.AttributeSet{Category: asset.CategoryChest, Level: level, Tier: tier}
}

// CreateTestEquipment creates an equipment attribute set
func CreateTestEquipment(equipType asset.EquipmentType, level int, feature asset.Feature, r rarity.Rarity, value int) asset.AttributeSet {
	tier, err := rarity.Tier(level)
	if err != nil {
		panic(err)
	}
	return asset.AttributeSet{
		Category:      asset.CategoryEquipment,
		Level:         level,
		Tier:          tier,
		EquipmentType: equipType,
		Feature:       feature,
		Rarity:        r,
		Value:         value,
	}
}

// CreateTestSpellbook creates a spellbook attribute set with its value computed
func CreateTestSpellbook(spell asset.SpellType, level, cost int, costFeature asset.CostFeature, r rarity.Rarity) asset.AttributeSet {
	tier, err := rarity.Tier(level)
	if err != nil {
		panic(err)
	}
	value, err := formula.SpellValue(spell, r, cost)
	if err != nil {
		panic(err)
	}
	return asset.AttributeSet{
		Category:    asset.CategorySpellbook,
		Level:       level,
		Tier:        tier,
		SpellType:   spell,
		CostFeature: costFeature,
		Rarity:      r,
		Cost:        cost,
		Value:       value,
	}
}

// SmallBounds keeps a full run of every category small enough for unit tests:
// levels 1..2 everywhere, 2 caster editions.
func SmallBounds() enumerator.Bounds {
	b := enumerator.DefaultBounds()
	b.ChestLevels = formula.Range{Min: 1, Max: 2}
	b.EquipmentLevels = formula.Range{Min: 1, Max: 2}
	b.SpellbookLevels = formula.Range{Min: 1, Max: 2}
	b.CasterLevels = formula.Range{Min: 1, Max: 2}
	b.CasterEditions = 2
	return b
}
