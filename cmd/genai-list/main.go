// Command genai-list pages through a GenAI collection and prints the
// resource names, one per line. Configuration comes from the environment;
// set GENAI_REDIS_URL to enable the shared response cache and quota state.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skandig/genai-list-client/pkg/client"
	"github.com/skandig/genai-list-client/pkg/logging"
	"github.com/skandig/genai-list-client/pkg/pager"
)

func main() {
	var (
		collection = flag.String("collection", "models", "collection to list (models, files, tuning_jobs, batch_jobs, cached_contents)")
		pageSize   = flag.Int("page-size", 0, "requested page size (0 uses the server default)")
		filter     = flag.String("filter", "", "server-side filter expression")
	)
	flag.Parse()

	logger := logging.Setup(logging.DefaultConfig())

	baseURL := getEnv("GENAI_BASE_URL", "https://generativelanguage.googleapis.com")
	apiKey := os.Getenv("GENAI_API_KEY")
	if apiKey == "" {
		logger.Fatal().Msg("GENAI_API_KEY is required")
	}

	cfg := client.DefaultConfig(baseURL, apiKey)

	// Redis is optional; without it the client runs uncached and ungated
	if redisURL := os.Getenv("GENAI_REDIS_URL"); redisURL != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal().Err(err).Str("redis_url", redisURL).Msg("Failed to connect to Redis")
		}
		cfg.Redis = redisClient
		logger.Info().Str("redis_url", redisURL).Msg("Response cache and quota gating enabled")
	}

	genai, err := client.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create GenAI client")
	}
	defer genai.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	opts := &client.ListOptions{
		PageSize: *pageSize,
		Filter:   *filter,
	}

	count, err := listCollection(ctx, genai, pager.Collection(*collection), opts)
	if err != nil {
		logger.Fatal().Err(err).Str("collection", *collection).Msg("Listing failed")
	}

	logger.Info().
		Str("collection", *collection).
		Int("items", count).
		Msg("Listing complete")
}

// listCollection dispatches to the typed list endpoint for the collection
// and prints every item's resource name.
func listCollection(ctx context.Context, genai *client.Client, name pager.Collection, opts *client.ListOptions) (int, error) {
	switch name {
	case pager.CollectionModels:
		p, err := genai.ListModels(ctx, opts)
		if err != nil {
			return 0, err
		}
		return printAll(ctx, p, func(m client.Model) string { return m.Name })
	case pager.CollectionFiles:
		p, err := genai.ListFiles(ctx, opts)
		if err != nil {
			return 0, err
		}
		return printAll(ctx, p, func(f client.File) string { return f.Name })
	case pager.CollectionTuningJobs:
		p, err := genai.ListTuningJobs(ctx, opts)
		if err != nil {
			return 0, err
		}
		return printAll(ctx, p, func(j client.TuningJob) string { return j.Name })
	case pager.CollectionBatchJobs:
		p, err := genai.ListBatchJobs(ctx, opts)
		if err != nil {
			return 0, err
		}
		return printAll(ctx, p, func(j client.BatchJob) string { return j.Name })
	case pager.CollectionCachedContents:
		p, err := genai.ListCachedContents(ctx, opts)
		if err != nil {
			return 0, err
		}
		return printAll(ctx, p, func(c client.CachedContent) string { return c.Name })
	default:
		return 0, fmt.Errorf("unknown collection %q", name)
	}
}

func printAll[T any](ctx context.Context, p *pager.AsyncPager[T], nameOf func(T) string) (int, error) {
	count := 0
	for item, err := range p.All(ctx) {
		if err != nil {
			return count, err
		}
		fmt.Println(nameOf(item))
		count++
	}
	return count, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
