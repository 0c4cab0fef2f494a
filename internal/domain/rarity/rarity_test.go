package rarity_test

import (
	"testing"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplierStrictlyIncreases(t *testing.T) {
	expected := []int{10, 20, 30, 40}

	prev := 0
	for i, r := range rarity.All() {
		m, err := rarity.Multiplier(r)
		require.NoError(t, err)
		assert.Equal(t, expected[i], m, r)
		assert.Greater(t, m, prev)
		prev = m
	}
}

func TestSpellTables(t *testing.T) {
	tests := []struct {
		rarity      rarity.Rarity
		odds        int
		resources   rarity.SpellResources
		percentBase int
	}{
		{rarity.Common, 8, rarity.SpellResources{Min: 1, Max: 10}, 100},
		{rarity.Rare, 6, rarity.SpellResources{Min: 11, Max: 20}, 200},
		{rarity.Epic, 4, rarity.SpellResources{Min: 21, Max: 30}, 300},
		{rarity.Legendary, 2, rarity.SpellResources{Min: 31, Max: 40}, 400},
	}

	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			odds, err := rarity.SpellOdds(tt.rarity)
			require.NoError(t, err)
			assert.Equal(t, tt.odds, odds)

			res, err := rarity.SpellResourceRange(tt.rarity)
			require.NoError(t, err)
			assert.Equal(t, tt.resources, res)

			base, err := rarity.PercentBaseMultiplier(tt.rarity)
			require.NoError(t, err)
			assert.Equal(t, tt.percentBase, base)
		})
	}
}

func TestUnknownRarityIsLookupError(t *testing.T) {
	_, err := rarity.Multiplier(rarity.Rarity("Mythic"))
	require.Error(t, err)
	assert.True(t, generr.IsLookup(err))

	_, err = rarity.SpellResourceRange(rarity.Rarity(""))
	assert.True(t, generr.IsLookup(err))
}

func TestParse(t *testing.T) {
	r, err := rarity.Parse("legendary")
	require.NoError(t, err)
	assert.Equal(t, rarity.Legendary, r)
	assert.Equal(t, "legendary", r.Lower())

	_, err = rarity.Parse("shiny")
	assert.True(t, generr.IsLookup(err))
}

func TestTierMonotonic(t *testing.T) {
	prev := 0
	for level := rarity.MinLevel; level <= rarity.MaxLevel; level++ {
		tier, err := rarity.Tier(level)
		require.NoError(t, err)
		assert.Contains(t, rarity.Tiers(), tier)
		assert.GreaterOrEqual(t, tier, prev, "level %d", level)
		prev = tier
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		level int
		tier  int
	}{
		{1, 1}, {10, 1}, {11, 2}, {15, 2}, {16, 3}, {20, 3}, {21, 4}, {30, 4},
	}

	for _, tt := range tests {
		tier, err := rarity.Tier(tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.tier, tier, "level %d", tt.level)
	}
}

func TestTierOutsideDomain(t *testing.T) {
	for _, level := range []int{0, -1, 31, 100} {
		_, err := rarity.Tier(level)
		require.Error(t, err)
		assert.True(t, generr.IsOutOfRange(err), "level %d", level)
	}
}
