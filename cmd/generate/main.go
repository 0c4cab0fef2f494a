package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/laddercast-metadata/internal/config"
	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/services"
	"github.com/KirkDiggler/laddercast-metadata/internal/services/generator"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		log.Printf("Generation failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(out)
	categories := fs.String("categories", "", "comma separated categories to generate (default all)")
	dryRun := fs.Bool("dry-run", false, "build every record without writing files")
	plan := fs.Bool("plan", false, "print the expected record counts and exit")
	workers := fs.Int("workers", 0, "parallel writers (default GENERATOR_WORKERS)")
	outputDir := fs.String("out", "", "output directory (default OUTPUT_DIR)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return generr.WrapWithCode(err, generr.CodeConfiguration, "parse flags")
	}

	// Load configuration, flags override the environment
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if *categories != "" {
		if cfg.Generator.Categories, err = config.ParseCategories(*categories); err != nil {
			return generr.WrapWithCode(err, generr.CodeConfiguration, "parse -categories")
		}
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *workers > 0 {
		cfg.Generator.Workers = *workers
	}
	if *dryRun || *plan {
		cfg.Generator.DryRun = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	providerConfig := &services.ProviderConfig{Config: cfg}

	if cfg.Redis.URL != "" && !*plan {
		redisClient := connectRedis(ctx, cfg.Redis.URL)
		if redisClient != nil {
			defer func() {
				if closeErr := redisClient.Close(); closeErr != nil {
					log.Printf("Failed to close Redis client: %v", closeErr)
				}
			}()
			providerConfig.RedisClient = redisClient
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory identifier registry")
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		return err
	}

	return generate(ctx, provider.GeneratorService, &generator.RunInput{
		Categories: cfg.Generator.Categories,
		DryRun:     cfg.Generator.DryRun,
	}, *plan, cfg.Output.Dir, out)
}

// generate runs or plans the generation and prints the outcome
func generate(ctx context.Context, svc generator.Service, input *generator.RunInput, plan bool, dir string, out io.Writer) error {
	var (
		summary *generator.Summary
		err     error
	)
	if plan {
		summary, err = svc.Plan(ctx, input.Categories)
	} else {
		summary, err = svc.Run(ctx, input)
	}
	if err != nil {
		return err
	}

	for _, c := range asset.Categories() {
		if n, ok := summary.Counts[c]; ok {
			fmt.Fprintf(out, "%-10s %d\n", c, n)
		}
	}

	switch {
	case plan:
		fmt.Fprintf(out, "planned %d files\n", summary.Total)
	case summary.DryRun:
		fmt.Fprintf(out, "dry run built %d records\n", summary.Total)
	default:
		fmt.Fprintf(out, "generated %d files in %s\n", summary.Total, dir)
	}
	return nil
}

// connectRedis returns nil when Redis is unreachable so the run falls back to the
// in-memory registry
func connectRedis(ctx context.Context, redisURL string) *redis.Client {
	log.Printf("Connecting to Redis at: %s", redisURL)

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory identifier registry")
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory identifier registry")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
