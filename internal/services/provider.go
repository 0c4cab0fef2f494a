package services

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/laddercast-metadata/internal/config"
	"github.com/KirkDiggler/laddercast-metadata/internal/enumerator"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/images"
	"github.com/KirkDiggler/laddercast-metadata/internal/metadata"
	"github.com/KirkDiggler/laddercast-metadata/internal/repositories/identifiers"
	"github.com/KirkDiggler/laddercast-metadata/internal/services/generator"
	"github.com/KirkDiggler/laddercast-metadata/internal/services/verify"
	"github.com/KirkDiggler/laddercast-metadata/internal/sink"
	"github.com/KirkDiggler/laddercast-metadata/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	GeneratorService generator.Service
	VerifyService    verify.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Config        *config.Config
	RedisClient   redis.UniversalClient // Optional: in-memory identifier registry when nil
	Sink          sink.Sink             // Optional: a file sink on Config.Output when nil
	UUIDGenerator uuid.Generator        // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, generr.Configurationf("provider requires a config")
	}
	c := cfg.Config

	catalog, err := loadCatalog(c.Metadata.ImageCatalogPath)
	if err != nil {
		return nil, err
	}

	builder, err := metadata.NewBuilder(&metadata.BuilderConfig{
		Images:      catalog,
		Boilerplate: c.Boilerplate(),
	})
	if err != nil {
		return nil, err
	}

	e, err := enumerator.New(c.Bounds())
	if err != nil {
		return nil, generr.WrapWithCode(err, generr.CodeConfiguration, "invalid catalog bounds")
	}

	out := cfg.Sink
	if out == nil && !c.Generator.DryRun {
		out, err = sink.NewFileSink(&sink.FileSinkConfig{
			Dir:       c.Output.Dir,
			CreateDir: c.Output.CreateDir,
			Overwrite: c.Output.Overwrite,
		})
		if err != nil {
			return nil, err
		}
	}

	// Use in-memory registry if no redis client provided
	registry := identifiers.NewInMemory()
	if cfg.RedisClient != nil {
		registry = identifiers.NewRedis(&identifiers.RedisRepoConfig{
			Client: cfg.RedisClient,
			TTL:    c.Redis.KeyTTL,
		})
	}

	genService, err := generator.NewService(&generator.ServiceConfig{
		Enumerator:    e,
		Builder:       builder,
		Sink:          out,
		Registry:      registry,
		UUIDGenerator: cfg.UUIDGenerator,
		Workers:       c.Generator.Workers,
	})
	if err != nil {
		return nil, err
	}

	verifyService, err := verify.NewService(&verify.ServiceConfig{
		Images: catalog,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		GeneratorService: genService,
		VerifyService:    verifyService,
	}, nil
}

func loadCatalog(path string) (*images.Catalog, error) {
	if path == "" {
		return images.Default()
	}
	log.Printf("Loading image catalog from %s", path)
	return images.LoadFile(path)
}
