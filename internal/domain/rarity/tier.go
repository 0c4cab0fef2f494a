package rarity

import (
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

const (
	MinLevel = 1
	MaxLevel = 30

	MinTier = 1
	MaxTier = 4
)

// Tier maps a level to its art bucket. Levels outside MinLevel..MaxLevel
// have no tier.
func Tier(level int) (int, error) {
	switch {
	case level < MinLevel || level > MaxLevel:
		return 0, generr.OutOfRangef("level %d outside %d..%d", level, MinLevel, MaxLevel).
			WithMeta("level", level)
	case level <= 10:
		return 1, nil
	case level <= 15:
		return 2, nil
	case level <= 20:
		return 3, nil
	default:
		return 4, nil
	}
}

// Tiers returns every tier in ascending order
func Tiers() []int {
	return []int{1, 2, 3, 4}
}
