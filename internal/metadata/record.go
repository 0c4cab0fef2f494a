package metadata

// Record is the metadata document of one NFT. Field order is the serialized order.
type Record struct {
	Name                 string      `json:"name"`
	Symbol               string      `json:"symbol"`
	Description          string      `json:"description"`
	SellerFeeBasisPoints int         `json:"seller_fee_basis_points"`
	Image                string      `json:"image"`
	ExternalURL          string      `json:"external_url"`
	Attributes           []Attribute `json:"attributes"`
	Collection           Collection  `json:"collection"`
	Properties           Properties  `json:"properties"`
}

// Attribute is a trait_type/value pair. Value holds an int or a string.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// Collection is always serialized as an empty object
type Collection struct{}

type Properties struct {
	Files    []File    `json:"files"`
	Creators []Creator `json:"creators"`
}

type File struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

type Creator struct {
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
	Share    int    `json:"share"`
}

// Trait names
const (
	TraitLevel       = "level"
	TraitTier        = "tier"
	TraitFeature     = "feature"
	TraitRarity      = "rarity"
	TraitType        = "type"
	TraitValue       = "value"
	TraitSpellType   = "spell_type"
	TraitCost        = "cost"
	TraitCostFeature = "cost_feature"
)
