package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/enumerator"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/formula"
	"github.com/KirkDiggler/laddercast-metadata/internal/metadata"
)

// Config holds all configuration for a generation run
type Config struct {
	Output    OutputConfig
	Generator GeneratorConfig
	Catalog   CatalogConfig
	Metadata  MetadataConfig
	Redis     RedisConfig
}

// OutputConfig holds the output directory settings
type OutputConfig struct {
	Dir       string
	CreateDir bool
	Overwrite bool
}

// GeneratorConfig holds run settings
type GeneratorConfig struct {
	Workers    int
	Categories []asset.Category
	DryRun     bool
}

// CatalogConfig holds the level bounds of each category
type CatalogConfig struct {
	ChestMaxLevel     int
	EquipmentMaxLevel int
	SpellbookMaxLevel int
	CasterMaxLevel    int
	CasterEditions    int
	SpellCostMode     formula.CostMode
}

// MetadataConfig holds record boilerplate overrides
type MetadataConfig struct {
	CreatorAddress   string
	SplitterAddress  string
	ImageCatalogPath string // Optional: replaces the embedded image table
}

// RedisConfig enables the shared identifier registry when URL is set
type RedisConfig struct {
	URL    string
	KeyTTL time.Duration
}

// Load loads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads environment variables without the cross-field checks, so callers
// can apply flag overrides before calling Validate
func FromEnv() (*Config, error) {
	var errs []string
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	cfg := &Config{
		Output: OutputConfig{
			Dir: strings.TrimSpace(os.Getenv("OUTPUT_DIR")),
		},
		Catalog: CatalogConfig{
			SpellCostMode: formula.CostMode(getEnvOrDefault("SPELL_COST_MODE", string(formula.CostModeEndpoints))),
		},
		Metadata: MetadataConfig{
			CreatorAddress:   getEnvOrDefault("CREATOR_ADDRESS", metadata.DefaultCreatorAddress),
			SplitterAddress:  getEnvOrDefault("SPLITTER_ADDRESS", metadata.DefaultSplitterAddress),
			ImageCatalogPath: os.Getenv("IMAGE_CATALOG_PATH"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
	}

	var err error
	cfg.Output.CreateDir, err = getEnvAsBoolOrDefault("OUTPUT_CREATE_DIR", false)
	collect(err)
	cfg.Output.Overwrite, err = getEnvAsBoolOrDefault("OUTPUT_OVERWRITE", true)
	collect(err)
	cfg.Generator.DryRun, err = getEnvAsBoolOrDefault("GENERATOR_DRY_RUN", false)
	collect(err)
	cfg.Generator.Workers, err = getEnvAsIntOrDefault("GENERATOR_WORKERS", 1)
	collect(err)
	cfg.Generator.Categories, err = ParseCategories(os.Getenv("GENERATOR_CATEGORIES"))
	collect(err)

	defaults := enumerator.DefaultBounds()
	cfg.Catalog.ChestMaxLevel, err = getEnvAsIntOrDefault("CHEST_MAX_LEVEL", defaults.ChestLevels.Max)
	collect(err)
	cfg.Catalog.EquipmentMaxLevel, err = getEnvAsIntOrDefault("EQUIPMENT_MAX_LEVEL", defaults.EquipmentLevels.Max)
	collect(err)
	cfg.Catalog.SpellbookMaxLevel, err = getEnvAsIntOrDefault("SPELLBOOK_MAX_LEVEL", defaults.SpellbookLevels.Max)
	collect(err)
	cfg.Catalog.CasterMaxLevel, err = getEnvAsIntOrDefault("CASTER_MAX_LEVEL", defaults.CasterLevels.Max)
	collect(err)
	cfg.Catalog.CasterEditions, err = getEnvAsIntOrDefault("CASTER_EDITIONS", defaults.CasterEditions)
	collect(err)
	cfg.Redis.KeyTTL, err = getEnvAsDurationOrDefault("REDIS_KEY_TTL", 24*time.Hour)
	collect(err)

	if len(errs) > 0 {
		return nil, generr.Configurationf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// Validate checks cross-field rules. Every failure is a configuration error.
func (c *Config) Validate() error {
	if c.Output.Dir == "" && !c.Generator.DryRun {
		return generr.Configurationf("OUTPUT_DIR is required")
	}
	if c.Generator.Workers < 1 {
		return generr.Configurationf("GENERATOR_WORKERS must be at least 1, got %d", c.Generator.Workers)
	}
	if c.Metadata.CreatorAddress == "" || c.Metadata.SplitterAddress == "" {
		return generr.Configurationf("creator and splitter addresses are required")
	}
	if err := c.Bounds().Validate(); err != nil {
		return generr.WrapWithCode(err, generr.CodeConfiguration, "invalid catalog bounds")
	}
	return nil
}

// Bounds converts the catalog settings to enumerator bounds
func (c *Config) Bounds() enumerator.Bounds {
	return enumerator.Bounds{
		ChestLevels:     formula.Range{Min: 1, Max: c.Catalog.ChestMaxLevel},
		EquipmentLevels: formula.Range{Min: 1, Max: c.Catalog.EquipmentMaxLevel},
		SpellbookLevels: formula.Range{Min: 1, Max: c.Catalog.SpellbookMaxLevel},
		CasterLevels:    formula.Range{Min: 1, Max: c.Catalog.CasterMaxLevel},
		CasterEditions:  c.Catalog.CasterEditions,
		SpellCostMode:   c.Catalog.SpellCostMode,
	}
}

// Boilerplate returns the record boilerplate with configured creator addresses
func (c *Config) Boilerplate() metadata.Boilerplate {
	bp := metadata.DefaultBoilerplate()
	bp.CreatorAddress = c.Metadata.CreatorAddress
	bp.SplitterAddress = c.Metadata.SplitterAddress
	return bp
}

// ParseCategories parses a comma separated category list; empty means all
func ParseCategories(value string) ([]asset.Category, error) {
	if strings.TrimSpace(value) == "" {
		return asset.Categories(), nil
	}

	var out []asset.Category
	seen := make(map[asset.Category]bool)
	for _, name := range strings.Split(value, ",") {
		c, err := asset.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, generr.Configurationf("%s must be an integer, got %q", key, value)
	}
	return intValue, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, generr.Configurationf("%s must be a boolean, got %q", key, value)
	}
	return boolValue, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, generr.Configurationf("%s must be a duration, got %q", key, value)
	}
	return d, nil
}
