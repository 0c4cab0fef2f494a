package enumerator

import (
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/formula"
)

// Visitor receives each resolved attribute set. Returning an error stops the walk.
type Visitor func(set asset.AttributeSet) error

// Bounds configures the parameter axes that are not fixed by the tables
type Bounds struct {
	ChestLevels     formula.Range
	EquipmentLevels formula.Range
	SpellbookLevels formula.Range
	CasterLevels    formula.Range
	CasterEditions  int
	SpellCostMode   formula.CostMode
}

// DefaultBounds mirrors the production catalog: equipment up to level 10,
// everything else up to level 30, one caster edition per level.
func DefaultBounds() Bounds {
	return Bounds{
		ChestLevels:     formula.Range{Min: 1, Max: rarity.MaxLevel},
		EquipmentLevels: formula.Range{Min: 1, Max: 10},
		SpellbookLevels: formula.Range{Min: 1, Max: rarity.MaxLevel},
		CasterLevels:    formula.Range{Min: 1, Max: rarity.MaxLevel},
		CasterEditions:  1,
		SpellCostMode:   formula.CostModeEndpoints,
	}
}

// Validate checks every level range against the tier domain
func (b Bounds) Validate() error {
	levels := map[asset.Category]formula.Range{
		asset.CategoryChest:     b.ChestLevels,
		asset.CategoryEquipment: b.EquipmentLevels,
		asset.CategorySpellbook: b.SpellbookLevels,
		asset.CategoryCaster:    b.CasterLevels,
	}
	for category, r := range levels {
		if err := r.Validate(); err != nil {
			return generr.Wrapf(err, "%s levels", category)
		}
		if err := formula.CheckLevel(r.Min); err != nil {
			return generr.Wrapf(err, "%s levels", category)
		}
		if err := formula.CheckLevel(r.Max); err != nil {
			return generr.Wrapf(err, "%s levels", category)
		}
	}
	if b.CasterEditions < 1 {
		return generr.OutOfRangef("caster editions must be at least 1, got %d", b.CasterEditions)
	}
	if _, err := formula.ParseCostMode(string(b.SpellCostMode)); err != nil {
		return err
	}
	return nil
}

// Enumerator walks the cross product of every category's parameter axes
type Enumerator struct {
	bounds Bounds
}

// New creates an enumerator over validated bounds
func New(bounds Bounds) (*Enumerator, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Enumerator{bounds: bounds}, nil
}

// Bounds returns the configured bounds
func (e *Enumerator) Bounds() Bounds {
	return e.bounds
}

// All walks every category in generation order
func (e *Enumerator) All(visit Visitor) error {
	for _, c := range asset.Categories() {
		if err := e.Category(c, visit); err != nil {
			return err
		}
	}
	return nil
}

// Category walks a single category
func (e *Enumerator) Category(c asset.Category, visit Visitor) error {
	switch c {
	case asset.CategoryChest:
		return e.Chest(visit)
	case asset.CategoryEquipment:
		return e.Equipment(visit)
	case asset.CategorySpellbook:
		return e.Spellbook(visit)
	case asset.CategoryCaster:
		return e.Caster(visit)
	default:
		return generr.Lookupf("unknown category %q", string(c))
	}
}

// Chest yields one set per level; the tier follows from the level
func (e *Enumerator) Chest(visit Visitor) error {
	for level := e.bounds.ChestLevels.Min; level <= e.bounds.ChestLevels.Max; level++ {
		tier, err := rarity.Tier(level)
		if err != nil {
			return err
		}
		if err := visit(asset.AttributeSet{
			Category: asset.CategoryChest,
			Level:    level,
			Tier:     tier,
		}); err != nil {
			return err
		}
	}
	return nil
}

// Equipment yields type x level x rarity x feature x every value in the feature's range
func (e *Enumerator) Equipment(visit Visitor) error {
	for _, equipType := range asset.EquipmentTypes() {
		for level := e.bounds.EquipmentLevels.Min; level <= e.bounds.EquipmentLevels.Max; level++ {
			tier, err := rarity.Tier(level)
			if err != nil {
				return err
			}
			for _, r := range rarity.All() {
				for _, feature := range asset.Features() {
					values, err := formula.EquipmentRange(level, r, feature)
					if err != nil {
						return generr.Wrapf(err, "%s level %d %s %s", equipType, level, r, feature)
					}
					for value := values.Min; value <= values.Max; value++ {
						if err := visit(asset.AttributeSet{
							Category:      asset.CategoryEquipment,
							Level:         level,
							Tier:          tier,
							EquipmentType: equipType,
							Feature:       feature,
							Rarity:        r,
							Value:         value,
						}); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

// Spellbook yields spell type x level x cost x rarity x cost feature, with the value derived
func (e *Enumerator) Spellbook(visit Visitor) error {
	for _, spell := range asset.SpellTypes() {
		for level := e.bounds.SpellbookLevels.Min; level <= e.bounds.SpellbookLevels.Max; level++ {
			tier, err := rarity.Tier(level)
			if err != nil {
				return err
			}
			costs, err := formula.SpellCostPoints(level, e.bounds.SpellCostMode)
			if err != nil {
				return err
			}
			for _, cost := range costs {
				for _, r := range rarity.All() {
					value, err := formula.SpellValue(spell, r, cost)
					if err != nil {
						return generr.Wrapf(err, "%s level %d %s cost %d", spell, level, r, cost)
					}
					for _, costFeature := range asset.CostFeatures() {
						if err := visit(asset.AttributeSet{
							Category:    asset.CategorySpellbook,
							Level:       level,
							Tier:        tier,
							SpellType:   spell,
							CostFeature: costFeature,
							Rarity:      r,
							Cost:        cost,
							Value:       value,
						}); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

// Caster yields level x edition
func (e *Enumerator) Caster(visit Visitor) error {
	for level := e.bounds.CasterLevels.Min; level <= e.bounds.CasterLevels.Max; level++ {
		for index := 1; index <= e.bounds.CasterEditions; index++ {
			if err := visit(asset.AttributeSet{
				Category: asset.CategoryCaster,
				Level:    level,
				Index:    index,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
