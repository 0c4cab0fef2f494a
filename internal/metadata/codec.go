package metadata

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// Encode serializes a record as compact JSON: no indentation, no insignificant
// whitespace, no trailing newline, URLs left unescaped.
func Encode(record *Record) ([]byte, error) {
	if record == nil {
		return nil, generr.InvalidArgumentf("record is nil")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record); err != nil {
		return nil, generr.WrapWithCode(err, generr.CodeInternal, "encode record")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses a record. Numeric attribute values are kept as json.Number.
func Decode(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var record Record
	if err := dec.Decode(&record); err != nil {
		return nil, generr.WrapWithCode(err, generr.CodeInvalidArgument, "decode record")
	}
	return &record, nil
}

// Trait returns the value of the named attribute
func (r *Record) Trait(name string) (any, bool) {
	for _, attr := range r.Attributes {
		if attr.TraitType == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// AttributeSet reconstructs the attribute set a record was built from.
// The caster edition index is not part of the content and stays 0.
func (r *Record) AttributeSet() (asset.AttributeSet, error) {
	level, err := r.intTrait(TraitLevel)
	if err != nil {
		return asset.AttributeSet{}, err
	}

	switch {
	case r.has(TraitSpellType):
		return r.spellbookSet(level)
	case r.has(TraitType):
		return r.equipmentSet(level)
	case r.has(TraitTier):
		tier, err := r.intTrait(TraitTier)
		if err != nil {
			return asset.AttributeSet{}, err
		}
		return asset.AttributeSet{Category: asset.CategoryChest, Level: level, Tier: tier}, nil
	case len(r.Attributes) == 1:
		return asset.AttributeSet{Category: asset.CategoryCaster, Level: level}, nil
	default:
		return asset.AttributeSet{}, generr.Lookupf("record %q matches no attribute schema", r.Name)
	}
}

func (r *Record) equipmentSet(level int) (asset.AttributeSet, error) {
	typeName, err := r.stringTrait(TraitType)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	equipType, err := asset.ParseEquipmentType(typeName)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	featureName, err := r.stringTrait(TraitFeature)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	feature, err := asset.ParseFeature(featureName)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	rar, err := r.rarityTrait()
	if err != nil {
		return asset.AttributeSet{}, err
	}
	value, err := r.intTrait(TraitValue)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	tier, err := rarity.Tier(level)
	if err != nil {
		return asset.AttributeSet{}, err
	}

	return asset.AttributeSet{
		Category:      asset.CategoryEquipment,
		Level:         level,
		Tier:          tier,
		EquipmentType: equipType,
		Feature:       feature,
		Rarity:        rar,
		Value:         value,
	}, nil
}

func (r *Record) spellbookSet(level int) (asset.AttributeSet, error) {
	spellName, err := r.stringTrait(TraitSpellType)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	spell, err := asset.ParseSpellType(spellName)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	costFeatureName, err := r.stringTrait(TraitCostFeature)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	costFeature, err := asset.ParseCostFeature(costFeatureName)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	rar, err := r.rarityTrait()
	if err != nil {
		return asset.AttributeSet{}, err
	}
	cost, err := r.intTrait(TraitCost)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	value, err := r.intTrait(TraitValue)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	tier, err := rarity.Tier(level)
	if err != nil {
		return asset.AttributeSet{}, err
	}

	return asset.AttributeSet{
		Category:    asset.CategorySpellbook,
		Level:       level,
		Tier:        tier,
		SpellType:   spell,
		CostFeature: costFeature,
		Rarity:      rar,
		Cost:        cost,
		Value:       value,
	}, nil
}

func (r *Record) has(name string) bool {
	_, ok := r.Trait(name)
	return ok
}

func (r *Record) rarityTrait() (rarity.Rarity, error) {
	name, err := r.stringTrait(TraitRarity)
	if err != nil {
		return "", err
	}
	return rarity.Parse(name)
}

func (r *Record) stringTrait(name string) (string, error) {
	v, ok := r.Trait(name)
	if !ok {
		return "", generr.Lookupf("record %q has no %s attribute", r.Name, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", generr.InvalidArgumentf("attribute %s is not a string (got %T)", name, v)
	}
	return s, nil
}

func (r *Record) intTrait(name string) (int, error) {
	v, ok := r.Trait(name)
	if !ok {
		return 0, generr.Lookupf("record %q has no %s attribute", r.Name, name)
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, generr.WrapWithCode(err, generr.CodeInvalidArgument, "attribute "+name)
		}
		return i, nil
	case float64:
		if n != float64(int(n)) {
			return 0, generr.InvalidArgumentf("attribute %s is not an integer: %v", name, n)
		}
		return int(n), nil
	default:
		return 0, generr.InvalidArgumentf("attribute %s is not a number (got %T)", name, v)
	}
}
