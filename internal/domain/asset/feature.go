package asset

import (
	"strings"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// FeatureKind tells which formula computes a feature's value range
type FeatureKind int

const (
	// FeatureKindPercent values run from 100 up to a level and rarity dependent cap
	FeatureKindPercent FeatureKind = iota + 1
	// FeatureKindNumeric values run over a level times multiplier band
	FeatureKindNumeric
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureKindPercent:
		return "percent"
	case FeatureKindNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Feature is the stat an equipment item affects
type Feature string

const (
	FeaturePower Feature = "Power"
	FeatureMagic Feature = "Magic"
	FeatureFire  Feature = "Fire"
	FeatureEarth Feature = "Earth"
	FeatureWater Feature = "Water"
)

// PercentFeatures are the features valued with the percent formula
func PercentFeatures() []Feature {
	return []Feature{FeaturePower, FeatureMagic}
}

// NumericFeatures are the features valued with the numeric formula
func NumericFeatures() []Feature {
	return []Feature{FeatureFire, FeatureEarth, FeatureWater}
}

// Features returns percent features followed by numeric features
func Features() []Feature {
	return append(PercentFeatures(), NumericFeatures()...)
}

// Kind returns the formula family of the feature
func (f Feature) Kind() (FeatureKind, error) {
	switch f {
	case FeaturePower, FeatureMagic:
		return FeatureKindPercent, nil
	case FeatureFire, FeatureEarth, FeatureWater:
		return FeatureKindNumeric, nil
	default:
		return 0, generr.Lookupf("unknown equipment feature %q", string(f))
	}
}

// ParseFeature resolves a feature name, ignoring case
func ParseFeature(name string) (Feature, error) {
	for _, f := range Features() {
		if strings.EqualFold(string(f), strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return "", generr.Lookupf("unknown equipment feature %q", name)
}

// CostFeature is the resource a spell is paid with
type CostFeature string

const (
	CostFire  CostFeature = "Fire"
	CostWater CostFeature = "Water"
	CostEarth CostFeature = "Earth"
)

// CostFeatures returns every cost feature
func CostFeatures() []CostFeature {
	return []CostFeature{CostFire, CostWater, CostEarth}
}

// ParseCostFeature resolves a cost feature name, ignoring case
func ParseCostFeature(name string) (CostFeature, error) {
	for _, c := range CostFeatures() {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return "", generr.Lookupf("unknown cost feature %q", name)
}
