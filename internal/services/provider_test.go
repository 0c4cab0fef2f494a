package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/laddercast-metadata/internal/config"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/formula"
	"github.com/KirkDiggler/laddercast-metadata/internal/services"
	"github.com/KirkDiggler/laddercast-metadata/internal/services/generator"
	"github.com/KirkDiggler/laddercast-metadata/internal/uuid"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Output:    config.OutputConfig{Dir: dir, Overwrite: true},
		Generator: config.GeneratorConfig{Workers: 1},
		Catalog: config.CatalogConfig{
			ChestMaxLevel:     2,
			EquipmentMaxLevel: 1,
			SpellbookMaxLevel: 1,
			CasterMaxLevel:    1,
			CasterEditions:    1,
			SpellCostMode:     formula.CostModeEndpoints,
		},
		Metadata: config.MetadataConfig{
			CreatorAddress:  "creator",
			SplitterAddress: "splitter",
		},
		Redis: config.RedisConfig{KeyTTL: time.Hour},
	}
}

func TestProviderGeneratesAndVerifies(t *testing.T) {
	dir := t.TempDir()
	provider, err := services.NewProvider(&services.ProviderConfig{Config: testConfig(dir)})
	require.NoError(t, err)

	ctx := context.Background()
	summary, err := provider.GeneratorService.Run(ctx, nil)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, summary.Total)

	report, err := provider.VerifyService.Verify(ctx, dir)
	require.NoError(t, err)
	assert.True(t, report.OK(), "%v", report.Problems)
	assert.Equal(t, summary.Total, report.Checked)
}

func TestProviderUsesRedisRegistry(t *testing.T) {
	client, mock := redismock.NewClientMock()
	key := "metadata:run:run-7:ids"

	for _, id := range []string{"chest_1_1", "chest_2_1"} {
		mock.ExpectSAdd(key, id).SetVal(1)
		mock.ExpectExpire(key, time.Hour).SetVal(true)
	}
	mock.ExpectSCard(key).SetVal(2)
	mock.ExpectDel(key).SetVal(1)

	cfg := testConfig("")
	cfg.Generator.DryRun = true

	provider, err := services.NewProvider(&services.ProviderConfig{
		Config:        cfg,
		RedisClient:   client,
		UUIDGenerator: uuid.StaticGenerator("run-7"),
	})
	require.NoError(t, err)

	summary, err := provider.GeneratorService.Run(context.Background(), &generator.RunInput{
		Categories: []asset.Category{asset.CategoryChest},
		DryRun:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderImageCatalogOverride(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Metadata.ImageCatalogPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := services.NewProvider(&services.ProviderConfig{Config: cfg})
	assert.True(t, generr.IsConfiguration(err))
}

func TestProviderConfigurationErrors(t *testing.T) {
	_, err := services.NewProvider(nil)
	assert.True(t, generr.IsConfiguration(err))

	_, err = services.NewProvider(&services.ProviderConfig{
		Config: testConfig(filepath.Join(t.TempDir(), "missing")),
	})
	assert.True(t, generr.IsConfiguration(err))

	cfg := testConfig(t.TempDir())
	cfg.Catalog.ChestMaxLevel = 40
	_, err = services.NewProvider(&services.ProviderConfig{Config: cfg})
	assert.True(t, generr.IsConfiguration(err))
}
