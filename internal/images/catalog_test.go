package images_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/images"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogResolves(t *testing.T) {
	catalog, err := images.Default()
	require.NoError(t, err)

	tests := []struct {
		name string
		set  asset.AttributeSet
		want string
	}{
		{
			name: "chest tier 1",
			set:  asset.AttributeSet{Category: asset.CategoryChest, Level: 1, Tier: 1},
			want: "https://arweave.net/0hY6eGAP0MhUwe767vBNgyPGFCeHlh2hXLhDv6TuUxU",
		},
		{
			name: "robe common tier 1",
			set: asset.AttributeSet{
				Category: asset.CategoryEquipment, EquipmentType: asset.EquipmentRobe,
				Rarity: rarity.Common, Level: 3, Tier: 1,
			},
			want: "https://arweave.net/jsu9Lxv7V8DL1sF-LnjK0CgwK2yWlmlBR8Xn7Qg9na8",
		},
		{
			name: "staff legendary tier 4",
			set: asset.AttributeSet{
				Category: asset.CategoryEquipment, EquipmentType: asset.EquipmentStaff,
				Rarity: rarity.Legendary, Level: 25, Tier: 4,
			},
			want: "https://arweave.net/xtxc0pPLafQ5BxinGjW4dlXFpb_DS3-ELxYV5eVUGZo",
		},
		{
			name: "spellbook epic tier 2",
			set:  asset.AttributeSet{Category: asset.CategorySpellbook, Rarity: rarity.Epic, Level: 12, Tier: 2},
			want: "https://arweave.net/s60SSiWPx-dsVZR7yVNNmmed9QAXXeaz6N6O7Jymd5s",
		},
		{
			name: "caster",
			set:  asset.AttributeSet{Category: asset.CategoryCaster, Level: 9, Index: 1},
			want: "https://arweave.net/F2TR14Rptj_LaS2iEd7t2FfUICVBccos8UEOPoBvEUo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Resolve(tt.set)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMissIsLookupError(t *testing.T) {
	catalog, err := images.Default()
	require.NoError(t, err)

	tests := []struct {
		name string
		set  asset.AttributeSet
	}{
		{name: "tier 5 chest", set: asset.AttributeSet{Category: asset.CategoryChest, Level: 40, Tier: 5}},
		{name: "unknown rarity", set: asset.AttributeSet{Category: asset.CategorySpellbook, Rarity: "Mythic", Tier: 1}},
		{name: "unknown equipment", set: asset.AttributeSet{Category: asset.CategoryEquipment, EquipmentType: "Boots", Rarity: rarity.Common, Tier: 1}},
		{name: "unknown category", set: asset.AttributeSet{Category: "Pet", Level: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Resolve(tt.set)
			require.Error(t, err)
			assert.True(t, generr.IsLookup(err))
		})
	}
}

func TestParseRejectsIncompleteCatalog(t *testing.T) {
	_, err := images.Parse([]byte(`{"chest":{"1":"a","2":"b","3":"c"},"caster":"x"}`))
	require.Error(t, err)
	assert.True(t, generr.IsLookup(err))

	_, err = images.Parse([]byte(`{not json`))
	require.Error(t, err)
	assert.True(t, generr.IsConfiguration(err))
}

func TestLoadFile(t *testing.T) {
	_, err := images.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, generr.IsConfiguration(err))

	raw, err := os.ReadFile("images.json")
	require.NoError(t, err)

	replaced := strings.ReplaceAll(string(raw), "https://arweave.net/", "ipfs://")
	path := filepath.Join(t.TempDir(), "images.json")
	require.NoError(t, os.WriteFile(path, []byte(replaced), 0o644))

	catalog, err := images.LoadFile(path)
	require.NoError(t, err)

	uri, err := catalog.Resolve(asset.AttributeSet{Category: asset.CategoryCaster, Level: 1, Index: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "ipfs://"))
}
