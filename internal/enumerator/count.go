package enumerator

import (
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/formula"
)

// Count computes how many sets a category yields without visiting them
func (e *Enumerator) Count(c asset.Category) (int, error) {
	switch c {
	case asset.CategoryChest:
		return e.bounds.ChestLevels.Len(), nil
	case asset.CategoryCaster:
		return e.bounds.CasterLevels.Len() * e.bounds.CasterEditions, nil
	case asset.CategoryEquipment:
		return e.countEquipment()
	case asset.CategorySpellbook:
		return e.countSpellbook()
	default:
		return 0, generr.Lookupf("unknown category %q", string(c))
	}
}

func (e *Enumerator) countEquipment() (int, error) {
	perType := 0
	for level := e.bounds.EquipmentLevels.Min; level <= e.bounds.EquipmentLevels.Max; level++ {
		for _, r := range rarity.All() {
			for _, feature := range asset.Features() {
				values, err := formula.EquipmentRange(level, r, feature)
				if err != nil {
					return 0, err
				}
				perType += values.Len()
			}
		}
	}
	return perType * len(asset.EquipmentTypes()), nil
}

func (e *Enumerator) countSpellbook() (int, error) {
	costs := 0
	for level := e.bounds.SpellbookLevels.Min; level <= e.bounds.SpellbookLevels.Max; level++ {
		points, err := formula.SpellCostPoints(level, e.bounds.SpellCostMode)
		if err != nil {
			return 0, err
		}
		costs += len(points)
	}
	return costs * len(asset.SpellTypes()) * len(rarity.All()) * len(asset.CostFeatures()), nil
}
