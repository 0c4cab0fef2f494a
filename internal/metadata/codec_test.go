package metadata_test

import (
	"testing"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/images"
	"github.com/KirkDiggler/laddercast-metadata/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	catalog, err := images.Default()
	require.NoError(t, err)
	b := newBuilder(t, catalog)

	sets := []asset.AttributeSet{
		{Category: asset.CategoryChest, Level: 17, Tier: 3},
		{
			Category: asset.CategoryEquipment, Level: 9, Tier: 1, EquipmentType: asset.EquipmentRobe,
			Feature: asset.FeatureMagic, Rarity: rarity.Epic, Value: 403,
		},
		{
			Category: asset.CategorySpellbook, Level: 22, Tier: 4, SpellType: asset.SpellExperience,
			CostFeature: asset.CostFire, Rarity: rarity.Legendary, Cost: 32, Value: 5024,
		},
		{Category: asset.CategoryCaster, Level: 30},
	}

	for _, set := range sets {
		t.Run(set.ID(), func(t *testing.T) {
			record, err := b.Build(set)
			require.NoError(t, err)

			data, err := metadata.Encode(record)
			require.NoError(t, err)

			decoded, err := metadata.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, record.Image, decoded.Image)

			got, err := decoded.AttributeSet()
			require.NoError(t, err)
			assert.Equal(t, set, got)
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := metadata.Decode([]byte(`{"name":`))
	assert.True(t, generr.Is(err, generr.CodeInvalidArgument))

	record, err := metadata.Decode([]byte(`{"name":"Head","attributes":[{"trait_type":"level","value":"five"},{"trait_type":"type","value":"Head"}]}`))
	require.NoError(t, err)
	_, err = record.AttributeSet()
	assert.Error(t, err)

	record, err = metadata.Decode([]byte(`{"name":"Odd","attributes":[{"trait_type":"level","value":1},{"trait_type":"mood","value":"x"}]}`))
	require.NoError(t, err)
	_, err = record.AttributeSet()
	assert.True(t, generr.IsLookup(err))
}

func TestEncodeNil(t *testing.T) {
	_, err := metadata.Encode(nil)
	assert.Error(t, err)
}
