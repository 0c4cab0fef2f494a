package generator

//go:generate mockgen -destination=mock/mock_service.go -package=mockgenerator -source=service.go

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/enumerator"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/metadata"
	"github.com/KirkDiggler/laddercast-metadata/internal/repositories/identifiers"
	"github.com/KirkDiggler/laddercast-metadata/internal/sink"
	"github.com/KirkDiggler/laddercast-metadata/internal/uuid"
)

// Service defines the metadata generation interface
type Service interface {
	// Plan counts the records a run over the categories would emit without building any
	Plan(ctx context.Context, categories []asset.Category) (*Summary, error)

	// Run enumerates, builds and writes every record of the categories.
	// The first failure aborts the run.
	Run(ctx context.Context, input *RunInput) (*Summary, error)
}

// RecordBuilder turns an attribute set into a record
type RecordBuilder interface {
	Build(set asset.AttributeSet) (*metadata.Record, error)
}

// RunInput selects what a run emits
type RunInput struct {
	Categories []asset.Category // Empty means every category
	DryRun     bool             // Build and claim ids but write nothing
}

// Summary reports the records of a run
type Summary struct {
	RunID  string
	Counts map[asset.Category]int
	Total  int
	DryRun bool
}

// ServiceConfig holds the dependencies of the service
type ServiceConfig struct {
	Enumerator    *enumerator.Enumerator
	Builder       RecordBuilder
	Sink          sink.Sink            // Optional for dry runs
	Registry      identifiers.Registry // Optional: defaults to in-memory
	UUIDGenerator uuid.Generator       // Optional: defaults to google uuid
	Workers       int                  // Values below 1 mean sequential
}

type service struct {
	enumerator *enumerator.Enumerator
	builder    RecordBuilder
	sink       sink.Sink
	registry   identifiers.Registry
	uuidGen    uuid.Generator
	workers    int
}

// NewService creates a new generator service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, generr.Configurationf("generator config is required")
	}
	if cfg.Enumerator == nil {
		return nil, generr.Configurationf("generator requires an enumerator")
	}
	if cfg.Builder == nil {
		return nil, generr.Configurationf("generator requires a record builder")
	}

	svc := &service{
		enumerator: cfg.Enumerator,
		builder:    cfg.Builder,
		sink:       cfg.Sink,
		registry:   cfg.Registry,
		uuidGen:    cfg.UUIDGenerator,
		workers:    cfg.Workers,
	}

	if svc.registry == nil {
		svc.registry = identifiers.NewInMemory()
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	if svc.workers < 1 {
		svc.workers = 1
	}

	return svc, nil
}

// Plan counts the records of each category
func (s *service) Plan(ctx context.Context, categories []asset.Category) (*Summary, error) {
	summary := &Summary{
		Counts: make(map[asset.Category]int),
		DryRun: true,
	}

	for _, c := range orAll(categories) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := s.enumerator.Count(c)
		if err != nil {
			return nil, generr.Wrapf(err, "count %s", c)
		}
		summary.Counts[c] = n
		summary.Total += n
	}

	return summary, nil
}

// Run generates every record of the selected categories
func (s *service) Run(ctx context.Context, input *RunInput) (*Summary, error) {
	if input == nil {
		input = &RunInput{}
	}
	if !input.DryRun && s.sink == nil {
		return nil, generr.Configurationf("generator has no sink; use a dry run")
	}

	summary := &Summary{
		RunID:  s.uuidGen.New(),
		Counts: make(map[asset.Category]int),
		DryRun: input.DryRun,
	}
	log.Printf("Starting generation run %s with %d workers (dry run: %v)", summary.RunID, s.workers, input.DryRun)

	defer func() {
		// Release with a fresh context so a cancelled run still cleans up
		if err := s.registry.Release(context.Background(), summary.RunID); err != nil {
			log.Printf("Failed to release identifiers of run %s: %v", summary.RunID, err)
		}
	}()

	var mu sync.Mutex
	count := func(c asset.Category) {
		mu.Lock()
		summary.Counts[c]++
		summary.Total++
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	var walkErr error
	for _, c := range orAll(input.Categories) {
		walkErr = s.enumerator.Category(c, func(set asset.AttributeSet) error {
			if err := gctx.Err(); err != nil {
				return err
			}
			g.Go(func() error {
				if err := s.emit(gctx, summary.RunID, set, input.DryRun); err != nil {
					return err
				}
				count(set.Category)
				return nil
			})
			return nil
		})
		if walkErr != nil {
			break
		}
	}

	// A worker failure cancels gctx and surfaces as the walk error, so the
	// worker's own error takes precedence
	if err := g.Wait(); err != nil {
		log.Printf("Generation run %s failed: %v", summary.RunID, err)
		return nil, err
	}
	if walkErr != nil {
		log.Printf("Generation run %s failed: %v", summary.RunID, walkErr)
		return nil, walkErr
	}

	claimed, err := s.registry.Count(ctx, summary.RunID)
	if err != nil {
		return nil, generr.Wrap(err, "count claimed identifiers")
	}
	if claimed != int64(summary.Total) {
		return nil, generr.Internalf("run %s emitted %d records but claimed %d identifiers", summary.RunID, summary.Total, claimed)
	}

	for _, c := range orAll(input.Categories) {
		log.Printf("Generated %d %s records", summary.Counts[c], c)
	}
	log.Printf("Generation run %s complete: %d records", summary.RunID, summary.Total)

	return summary, nil
}

// emit builds one record, claims its identifier and writes it
func (s *service) emit(ctx context.Context, runID string, set asset.AttributeSet, dryRun bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := set.ID()

	record, err := s.builder.Build(set)
	if err != nil {
		return generr.Wrapf(err, "build %s", id).WithMeta("id", id)
	}

	data, err := metadata.Encode(record)
	if err != nil {
		return generr.Wrapf(err, "encode %s", id).WithMeta("id", id)
	}

	if err := s.registry.Claim(ctx, runID, id); err != nil {
		return generr.Wrapf(err, "claim %s", id).WithMeta("id", id)
	}

	if dryRun {
		return nil
	}

	if err := s.sink.Write(ctx, id, data); err != nil {
		return generr.Wrapf(err, "write %s", id).WithMeta("id", id)
	}

	return nil
}

func orAll(categories []asset.Category) []asset.Category {
	if len(categories) == 0 {
		return asset.Categories()
	}
	return categories
}
