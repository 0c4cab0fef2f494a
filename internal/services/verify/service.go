package verify

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/rarity"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/formula"
	"github.com/KirkDiggler/laddercast-metadata/internal/metadata"
	"github.com/KirkDiggler/laddercast-metadata/internal/sink"
)

// Service checks a directory of generated records
type Service interface {
	// Verify inspects every record file in dir. Problems with individual files are
	// collected in the report; only an unreadable directory is an error.
	Verify(ctx context.Context, dir string) (*Report, error)
}

// Problem describes one file that failed a check
type Problem struct {
	File   string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.File, p.Reason)
}

// Report is the outcome of a verification
type Report struct {
	Checked  int
	Counts   map[asset.Category]int
	Problems []Problem
}

// OK is true when no file failed a check
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// ServiceConfig holds the dependencies of the service
type ServiceConfig struct {
	Images metadata.ImageResolver
}

type service struct {
	images metadata.ImageResolver
}

// NewService creates a new verify service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil || cfg.Images == nil {
		return nil, generr.Configurationf("verify requires an image resolver")
	}

	return &service{
		images: cfg.Images,
	}, nil
}

func (s *service) Verify(ctx context.Context, dir string) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, generr.WrapWithCode(err, generr.CodeConfiguration, "read output directory").
			WithMeta("dir", dir)
	}

	report := &Report{
		Counts: make(map[asset.Category]int),
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sink.Extension) {
			continue
		}

		report.Checked++
		set, err := s.check(filepath.Join(dir, entry.Name()))
		if err != nil {
			report.Problems = append(report.Problems, Problem{File: entry.Name(), Reason: err.Error()})
			continue
		}
		report.Counts[set.Category]++
	}

	sort.Slice(report.Problems, func(i, j int) bool {
		return report.Problems[i].File < report.Problems[j].File
	})

	log.Printf("Verified %d records in %s: %d problems", report.Checked, dir, len(report.Problems))
	return report, nil
}

// check runs every content check on one file
func (s *service) check(path string) (asset.AttributeSet, error) {
	name := filepath.Base(path)

	fromName, err := asset.ParseID(name)
	if err != nil {
		return asset.AttributeSet{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return asset.AttributeSet{}, generr.Wrap(err, "read record")
	}

	record, err := metadata.Decode(data)
	if err != nil {
		return asset.AttributeSet{}, err
	}

	fromContent, err := record.AttributeSet()
	if err != nil {
		return asset.AttributeSet{}, err
	}

	// The edition index lives only in the name
	fromContent.Index = fromName.Index
	if fromContent != fromName {
		return asset.AttributeSet{}, generr.Newf(generr.CodeInvalidArgument,
			"content encodes %s but the file is named %s", fromContent.ID(), fromName.ID())
	}

	if err := checkValue(fromName); err != nil {
		return asset.AttributeSet{}, err
	}

	image, err := s.images.Resolve(fromName)
	if err != nil {
		return asset.AttributeSet{}, err
	}
	if record.Image != image {
		return asset.AttributeSet{}, generr.Newf(generr.CodeInvalidArgument, "image %s, want %s", record.Image, image)
	}
	if len(record.Properties.Files) != 1 || record.Properties.Files[0].URI != image {
		return asset.AttributeSet{}, generr.Newf(generr.CodeInvalidArgument, "properties.files does not reference the image")
	}

	return fromName, nil
}

// checkValue recomputes the formula of the set
func checkValue(set asset.AttributeSet) error {
	if set.Category == asset.CategoryCaster {
		return nil
	}

	tier, err := rarity.Tier(set.Level)
	if err != nil {
		return err
	}
	if tier != set.Tier {
		return generr.OutOfRangef("tier %d, level %d is tier %d", set.Tier, set.Level, tier)
	}

	switch set.Category {
	case asset.CategoryEquipment:
		r, err := formula.EquipmentRange(set.Level, set.Rarity, set.Feature)
		if err != nil {
			return err
		}
		if !r.Contains(set.Value) {
			return generr.OutOfRangef("value %d outside %d..%d", set.Value, r.Min, r.Max)
		}
	case asset.CategorySpellbook:
		costs, err := formula.SpellCostRange(set.Level)
		if err != nil {
			return err
		}
		if !costs.Contains(set.Cost) {
			return generr.OutOfRangef("cost %d outside %d..%d", set.Cost, costs.Min, costs.Max)
		}
		want, err := formula.SpellValue(set.SpellType, set.Rarity, set.Cost)
		if err != nil {
			return err
		}
		if want != set.Value {
			return generr.OutOfRangef("value %d, want %d", set.Value, want)
		}
	}

	return nil
}
