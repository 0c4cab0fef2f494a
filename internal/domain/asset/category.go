package asset

import (
	"strings"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// Category selects the attribute schema and formula set of an asset
type Category string

const (
	CategoryChest     Category = "Chest"
	CategoryEquipment Category = "Equipment"
	CategorySpellbook Category = "Spellbook"
	CategoryCaster    Category = "Caster"
)

// Categories returns every category in generation order
func Categories() []Category {
	return []Category{CategoryChest, CategoryEquipment, CategorySpellbook, CategoryCaster}
}

// ParseCategory resolves a category name, ignoring case
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return "", generr.Lookupf("unknown category %q", name)
}

// EquipmentType is the equipment slot; it names the record and selects its art family
type EquipmentType string

const (
	EquipmentHead  EquipmentType = "Head"
	EquipmentStaff EquipmentType = "Staff"
	EquipmentRobe  EquipmentType = "Robe"
)

// EquipmentTypes returns every equipment type
func EquipmentTypes() []EquipmentType {
	return []EquipmentType{EquipmentHead, EquipmentStaff, EquipmentRobe}
}

// ParseEquipmentType resolves an equipment type name, ignoring case
func ParseEquipmentType(name string) (EquipmentType, error) {
	for _, e := range EquipmentTypes() {
		if strings.EqualFold(string(e), strings.TrimSpace(name)) {
			return e, nil
		}
	}
	return "", generr.Lookupf("unknown equipment type %q", name)
}
