package asset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// AttributeSet is one fully resolved combination of category parameters.
// Fields that do not belong to the category are left at their zero value.
type AttributeSet struct {
	Category Category
	Level    int
	Tier     int

	// Equipment and Spellbook
	Rarity rarity.Rarity
	Value  int

	// Equipment
	EquipmentType EquipmentType
	Feature       Feature

	// Spellbook
	SpellType   SpellType
	CostFeature CostFeature
	Cost        int

	// Caster edition, 1-based
	Index int
}

// ID is the output identifier of the set. It doubles as the uniqueness key of a run
// and as the output file name without extension.
func (a AttributeSet) ID() string {
	var parts []string
	switch a.Category {
	case CategoryChest:
		parts = []string{"chest", itoa(a.Level), itoa(a.Tier)}
	case CategoryEquipment:
		parts = []string{string(a.EquipmentType), itoa(a.Level), string(a.Feature), string(a.Rarity), itoa(a.Value)}
	case CategorySpellbook:
		parts = []string{"spellbook", itoa(a.Level), string(a.SpellType), string(a.CostFeature), string(a.Rarity), itoa(a.Cost), itoa(a.Value)}
	case CategoryCaster:
		parts = []string{"caster", itoa(a.Level), itoa(a.Index)}
	default:
		parts = []string{string(a.Category), itoa(a.Level)}
	}
	return strings.ToLower(strings.Join(parts, "_"))
}

// String implements fmt.Stringer for log lines
func (a AttributeSet) String() string {
	return fmt.Sprintf("%s[%s]", a.Category, a.ID())
}

// ParseID reconstructs the attribute set encoded in an output identifier.
// A trailing ".json" is accepted.
func ParseID(id string) (AttributeSet, error) {
	parts := strings.Split(strings.TrimSuffix(id, ".json"), "_")
	if len(parts) < 3 {
		return AttributeSet{}, generr.InvalidArgumentf("identifier %q has too few parts", id)
	}

	var (
		set AttributeSet
		err error
	)
	switch parts[0] {
	case "chest":
		set, err = parseChestID(parts)
	case "caster":
		set, err = parseCasterID(parts)
	case "spellbook":
		set, err = parseSpellbookID(parts)
	default:
		set, err = parseEquipmentID(parts)
	}
	if err != nil {
		return AttributeSet{}, generr.Wrapf(err, "parse identifier %q", id)
	}
	return set, nil
}

func parseChestID(parts []string) (AttributeSet, error) {
	ints, err := atois(parts, 3, 1, 2)
	if err != nil {
		return AttributeSet{}, err
	}
	return AttributeSet{Category: CategoryChest, Level: ints[0], Tier: ints[1]}, nil
}

func parseCasterID(parts []string) (AttributeSet, error) {
	ints, err := atois(parts, 3, 1, 2)
	if err != nil {
		return AttributeSet{}, err
	}
	return AttributeSet{Category: CategoryCaster, Level: ints[0], Index: ints[1]}, nil
}

func parseEquipmentID(parts []string) (AttributeSet, error) {
	ints, err := atois(parts, 5, 1, 4)
	if err != nil {
		return AttributeSet{}, err
	}
	equipType, err := ParseEquipmentType(parts[0])
	if err != nil {
		return AttributeSet{}, err
	}
	feature, err := ParseFeature(parts[2])
	if err != nil {
		return AttributeSet{}, err
	}
	r, err := rarity.Parse(parts[3])
	if err != nil {
		return AttributeSet{}, err
	}
	tier, err := rarity.Tier(ints[0])
	if err != nil {
		return AttributeSet{}, err
	}

	return AttributeSet{
		Category:      CategoryEquipment,
		Level:         ints[0],
		Tier:          tier,
		EquipmentType: equipType,
		Feature:       feature,
		Rarity:        r,
		Value:         ints[1],
	}, nil
}

func parseSpellbookID(parts []string) (AttributeSet, error) {
	ints, err := atois(parts, 7, 1, 5, 6)
	if err != nil {
		return AttributeSet{}, err
	}
	spellType, err := ParseSpellType(parts[2])
	if err != nil {
		return AttributeSet{}, err
	}
	costFeature, err := ParseCostFeature(parts[3])
	if err != nil {
		return AttributeSet{}, err
	}
	r, err := rarity.Parse(parts[4])
	if err != nil {
		return AttributeSet{}, err
	}
	tier, err := rarity.Tier(ints[0])
	if err != nil {
		return AttributeSet{}, err
	}

	return AttributeSet{
		Category:    CategorySpellbook,
		Level:       ints[0],
		Tier:        tier,
		SpellType:   spellType,
		CostFeature: costFeature,
		Rarity:      r,
		Cost:        ints[1],
		Value:       ints[2],
	}, nil
}

// atois checks the part count and converts the parts at the given positions
func atois(parts []string, want int, positions ...int) ([]int, error) {
	if len(parts) != want {
		return nil, generr.InvalidArgumentf("expected %d parts, got %d", want, len(parts))
	}

	out := make([]int, 0, len(positions))
	for _, pos := range positions {
		n, err := strconv.Atoi(parts[pos])
		if err != nil {
			return nil, generr.WrapWithCode(err, generr.CodeInvalidArgument, fmt.Sprintf("part %d is not a number", pos))
		}
		out = append(out, n)
	}
	return out, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
