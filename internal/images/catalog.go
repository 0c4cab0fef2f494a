package images

import (
	_ "embed"
	"encoding/json"
	"io"
	"os"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

//go:embed images.json
var defaultCatalog []byte

type tierURIs map[int]string

// Data is the serialized form of the image table
type Data struct {
	Chest     tierURIs                                           `json:"chest"`
	Equipment map[asset.EquipmentType]map[rarity.Rarity]tierURIs `json:"equipment"`
	Spellbook map[rarity.Rarity]tierURIs                         `json:"spellbook"`
	Caster    string                                             `json:"caster"`
}

// Catalog resolves the image URI of an attribute set. It is read-only once built.
type Catalog struct {
	data Data
}

// Default returns the catalog of production image references
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, generr.Wrap(err, "embedded image catalog")
	}
	return c, nil
}

// LoadFile reads a catalog override from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, generr.WrapWithCode(err, generr.CodeConfiguration, "open image catalog")
	}
	defer f.Close()

	return Load(f)
}

// Load reads a catalog from r
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, generr.WrapWithCode(err, generr.CodeConfiguration, "read image catalog")
	}
	return Parse(raw)
}

// Parse decodes and validates a catalog
func Parse(raw []byte) (*Catalog, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, generr.WrapWithCode(err, generr.CodeConfiguration, "decode image catalog")
	}

	c := &Catalog{data: data}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every family has a URI for every rarity and tier
func (c *Catalog) Validate() error {
	for _, tier := range rarity.Tiers() {
		if c.data.Chest[tier] == "" {
			return generr.Lookupf("no chest image for tier %d", tier).WithMeta("tier", tier)
		}
	}
	for _, equipType := range asset.EquipmentTypes() {
		if err := checkRarityTiers(string(equipType), c.data.Equipment[equipType]); err != nil {
			return err
		}
	}
	if err := checkRarityTiers("spellbook", c.data.Spellbook); err != nil {
		return err
	}
	if c.data.Caster == "" {
		return generr.Lookupf("no caster image")
	}
	return nil
}

func checkRarityTiers(family string, byRarity map[rarity.Rarity]tierURIs) error {
	for _, r := range rarity.All() {
		for _, tier := range rarity.Tiers() {
			if byRarity[r][tier] == "" {
				return generr.Lookupf("no %s image for %s tier %d", family, r, tier).
					WithMeta("rarity", string(r)).
					WithMeta("tier", tier)
			}
		}
	}
	return nil
}

// Resolve returns the image URI for the set. A miss is a Lookup error; no default
// image is ever substituted.
func (c *Catalog) Resolve(set asset.AttributeSet) (string, error) {
	var uri string
	switch set.Category {
	case asset.CategoryChest:
		uri = c.data.Chest[set.Tier]
	case asset.CategoryEquipment:
		uri = c.data.Equipment[set.EquipmentType][set.Rarity][set.Tier]
	case asset.CategorySpellbook:
		uri = c.data.Spellbook[set.Rarity][set.Tier]
	case asset.CategoryCaster:
		uri = c.data.Caster
	default:
		return "", generr.Lookupf("unknown category %q", string(set.Category))
	}

	if uri == "" {
		return "", generr.Lookupf("no image for %s", set).
			WithMeta("id", set.ID()).
			WithMeta("category", string(set.Category)).
			WithMeta("rarity", string(set.Rarity)).
			WithMeta("tier", set.Tier)
	}
	return uri, nil
}
