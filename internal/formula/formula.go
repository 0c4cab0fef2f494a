// Package formula computes value ranges and derived values for each asset category.
// Every function is pure; results depend only on the arguments and the rarity tables.
package formula

import (
	"math"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

const (
	// SpellMultiple scales the average resources term of the spell value
	SpellMultiple = 4

	// PercentMin is the lower bound of every percent feature
	PercentMin = 100

	// SpellCostSpan is the width of the spell cost range above the level
	SpellCostSpan = 10
)

// Range is an inclusive integer range
type Range struct {
	Min int
	Max int
}

// Len is the number of integers in the range, 0 when inverted
func (r Range) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Contains reports whether v lies in the range
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Validate fails for empty or inverted ranges
func (r Range) Validate() error {
	if r.Max < r.Min {
		return generr.OutOfRangef("range [%d, %d] is inverted", r.Min, r.Max).
			WithMeta("min", r.Min).
			WithMeta("max", r.Max)
	}
	return nil
}

// Values lists every integer in the range in ascending order
func (r Range) Values() []int {
	out := make([]int, 0, r.Len())
	for v := r.Min; v <= r.Max; v++ {
		out = append(out, v)
	}
	return out
}

// CheckLevel fails for levels outside the supported domain
func CheckLevel(level int) error {
	if level < rarity.MinLevel || level > rarity.MaxLevel {
		return generr.OutOfRangef("level %d outside %d..%d", level, rarity.MinLevel, rarity.MaxLevel).
			WithMeta("level", level)
	}
	return nil
}

// EquipmentPercentRange is the value range of Power and Magic equipment:
// [100, round(level/3 + 100) + percent base of the rarity]
func EquipmentPercentRange(level int, r rarity.Rarity) (Range, error) {
	if err := CheckLevel(level); err != nil {
		return Range{}, err
	}
	base, err := rarity.PercentBaseMultiplier(r)
	if err != nil {
		return Range{}, err
	}

	out := Range{
		Min: PercentMin,
		Max: roundHalfEven(float64(level)/3+100) + base,
	}
	return out, out.Validate()
}

// EquipmentNumericRange is the value range of Fire, Earth and Water equipment:
// [level*(multiplier-10)+1, level*multiplier]
func EquipmentNumericRange(level int, r rarity.Rarity) (Range, error) {
	if err := CheckLevel(level); err != nil {
		return Range{}, err
	}
	mult, err := rarity.Multiplier(r)
	if err != nil {
		return Range{}, err
	}

	out := Range{
		Min: level*(mult-10) + 1,
		Max: level * mult,
	}
	return out, out.Validate()
}

// EquipmentRange dispatches on the feature kind
func EquipmentRange(level int, r rarity.Rarity, feature asset.Feature) (Range, error) {
	kind, err := feature.Kind()
	if err != nil {
		return Range{}, err
	}

	switch kind {
	case asset.FeatureKindPercent:
		return EquipmentPercentRange(level, r)
	case asset.FeatureKindNumeric:
		return EquipmentNumericRange(level, r)
	default:
		return Range{}, generr.Lookupf("no formula for feature kind %s", kind)
	}
}

// roundHalfEven rounds halves to the nearest even integer, as the production tables were built
func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}
