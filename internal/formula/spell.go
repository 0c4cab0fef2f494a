package formula

import (
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// CostMode selects which spell costs are enumerated
type CostMode string

const (
	// CostModeEndpoints samples the two ends of the cost range
	CostModeEndpoints CostMode = "endpoints"
	// CostModeFull walks every cost in the range
	CostModeFull CostMode = "full"
)

// ParseCostMode validates a cost mode name
func ParseCostMode(s string) (CostMode, error) {
	switch CostMode(s) {
	case CostModeEndpoints, CostModeFull:
		return CostMode(s), nil
	default:
		return "", generr.InvalidArgumentf("unknown spell cost mode %q", s)
	}
}

// SpellCostRange is [level, level+10]
func SpellCostRange(level int) (Range, error) {
	if err := CheckLevel(level); err != nil {
		return Range{}, err
	}
	out := Range{Min: level, Max: level + SpellCostSpan}
	return out, out.Validate()
}

// SpellCostPoints lists the costs enumerated for a level
func SpellCostPoints(level int, mode CostMode) ([]int, error) {
	costs, err := SpellCostRange(level)
	if err != nil {
		return nil, err
	}

	switch mode {
	case CostModeEndpoints, "":
		return []int{costs.Min, costs.Max}, nil
	case CostModeFull:
		return costs.Values(), nil
	default:
		return nil, generr.InvalidArgumentf("unknown spell cost mode %q", string(mode))
	}
}

// AverageResources is round(min*max/2) over the rarity's resource range
func AverageResources(r rarity.Rarity) (int, error) {
	res, err := rarity.SpellResourceRange(r)
	if err != nil {
		return 0, err
	}
	return roundHalfEven(float64(res.Min*res.Max) / 2), nil
}

// SpellValue computes the spell value:
//
//	(cost*(odds-1) + SpellMultiple*avgResources) * multiplier
//
// Craft and Item spells are always worth 0.
func SpellValue(spell asset.SpellType, r rarity.Rarity, cost int) (int, error) {
	mult, err := spell.ValueMultiplier()
	if err != nil {
		return 0, err
	}
	if !spell.HasValue() {
		return 0, nil
	}
	if cost < 0 {
		return 0, generr.OutOfRangef("spell cost %d is negative", cost).WithMeta("cost", cost)
	}

	odds, err := rarity.SpellOdds(r)
	if err != nil {
		return 0, err
	}
	avg, err := AverageResources(r)
	if err != nil {
		return 0, err
	}

	return (cost*(odds-1) + SpellMultiple*avg) * mult, nil
}
