package metadata

import (
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

const (
	DefaultCreatorAddress  = "LCz1zm4nzTPLpfkC7y4t7Vr2RTEDGow7t3Q9eBp3yGj"
	DefaultSplitterAddress = "4HAz1eNba28njBhWKeVRUUn4tSobY1rNPP6MdUwMoBpa"
)

// ImageResolver finds the image URI of an attribute set
type ImageResolver interface {
	Resolve(set asset.AttributeSet) (string, error)
}

// Boilerplate holds the fields shared by every record
type Boilerplate struct {
	Symbol               string
	Description          string
	ExternalURL          string
	SellerFeeBasisPoints int
	FileType             string
	CreatorAddress       string
	SplitterAddress      string
}

// DefaultBoilerplate returns the LadderCaster collection values
func DefaultBoilerplate() Boilerplate {
	return Boilerplate{
		Symbol:               "LC",
		Description:          "LadderCaster NFT",
		ExternalURL:          "https://laddercaster.com",
		SellerFeeBasisPoints: 100,
		FileType:             "image/png",
		CreatorAddress:       DefaultCreatorAddress,
		SplitterAddress:      DefaultSplitterAddress,
	}
}

// creators returns the two creator entries: the verified creator with no share
// and the unverified splitter with the full share
func (b Boilerplate) creators() []Creator {
	return []Creator{
		{Address: b.CreatorAddress, Verified: true, Share: 0},
		{Address: b.SplitterAddress, Verified: false, Share: 100},
	}
}

// BuilderConfig holds the dependencies of a Builder
type BuilderConfig struct {
	Images      ImageResolver
	Boilerplate Boilerplate
}

// Builder turns attribute sets into records
type Builder struct {
	images      ImageResolver
	boilerplate Boilerplate
}

// NewBuilder creates a record builder
func NewBuilder(cfg *BuilderConfig) (*Builder, error) {
	if cfg == nil || cfg.Images == nil {
		return nil, generr.Configurationf("builder requires an image resolver")
	}
	if cfg.Boilerplate.CreatorAddress == "" || cfg.Boilerplate.SplitterAddress == "" {
		return nil, generr.Configurationf("builder requires creator and splitter addresses")
	}

	return &Builder{
		images:      cfg.Images,
		boilerplate: cfg.Boilerplate,
	}, nil
}

// Build assembles the record of one attribute set
func (b *Builder) Build(set asset.AttributeSet) (*Record, error) {
	name, attributes, err := schema(set)
	if err != nil {
		return nil, err
	}

	image, err := b.images.Resolve(set)
	if err != nil {
		return nil, generr.Wrapf(err, "build %s", set.ID())
	}

	return &Record{
		Name:                 name,
		Symbol:               b.boilerplate.Symbol,
		Description:          b.boilerplate.Description,
		SellerFeeBasisPoints: b.boilerplate.SellerFeeBasisPoints,
		Image:                image,
		ExternalURL:          b.boilerplate.ExternalURL,
		Attributes:           attributes,
		Properties: Properties{
			Files:    []File{{URI: image, Type: b.boilerplate.FileType}},
			Creators: b.boilerplate.creators(),
		},
	}, nil
}

// schema selects the record name and attribute list of the set's category
func schema(set asset.AttributeSet) (string, []Attribute, error) {
	switch set.Category {
	case asset.CategoryChest:
		return "Chest", []Attribute{
			{TraitType: TraitLevel, Value: set.Level},
			{TraitType: TraitTier, Value: set.Tier},
		}, nil
	case asset.CategoryEquipment:
		return string(set.EquipmentType), []Attribute{
			{TraitType: TraitLevel, Value: set.Level},
			{TraitType: TraitFeature, Value: string(set.Feature)},
			{TraitType: TraitRarity, Value: string(set.Rarity)},
			{TraitType: TraitType, Value: string(set.EquipmentType)},
			{TraitType: TraitValue, Value: set.Value},
		}, nil
	case asset.CategorySpellbook:
		return string(set.SpellType), []Attribute{
			{TraitType: TraitLevel, Value: set.Level},
			{TraitType: TraitSpellType, Value: string(set.SpellType)},
			{TraitType: TraitCost, Value: set.Cost},
			{TraitType: TraitCostFeature, Value: string(set.CostFeature)},
			{TraitType: TraitRarity, Value: string(set.Rarity)},
			{TraitType: TraitValue, Value: set.Value},
		}, nil
	case asset.CategoryCaster:
		return "Caster", []Attribute{
			{TraitType: TraitLevel, Value: set.Level},
		}, nil
	default:
		return "", nil, generr.Lookupf("no attribute schema for category %q", string(set.Category))
	}
}
