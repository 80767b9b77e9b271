// Copyright 2025 SuperNetworkAI Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	supernetwork "github.com/SriramKintada/SuperNetworkAI"
	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/ai/openai"
	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/reembed"
	"github.com/SriramKintada/SuperNetworkAI/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "supernetwork",
		Usage: "Semantic profile matching for professional networks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search profiles with a natural-language query",
				Action:    searchCommand,
				ArgsUsage: "QUERY...",
				Flags: append(dbFlags(), aiFlags(
					&cli.StringFlag{
						Name:     "requester",
						Usage:    "User id of the person searching",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "community",
						Usage: "Scope the search to one community id",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
				)...),
			},
			{
				Name:   "refresh",
				Usage:  "Regenerate stale embeddings for all profiles",
				Action: refreshCommand,
				Flags:  append(dbFlags(), aiFlags()...),
			},
			{
				Name:   "reembed",
				Usage:  "Reembed every profile with a new embedding model",
				Action: reembedCommand,
				Flags: append(dbFlags(), aiFlags(
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of profiles to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N profiles",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				)...),
			},
			{
				Name:   "insight",
				Usage:  "Explain why a target profile could be valuable to a viewer",
				Action: insightCommand,
				Flags: append(dbFlags(), aiFlags(
					&cli.StringFlag{
						Name:     "viewer",
						Usage:    "Profile id of the viewer",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "target",
						Usage:    "Profile id of the target",
						Required: true,
					},
				)...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
	}
}

func aiFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "text-embedding-3-small",
		},
		&cli.StringFlag{
			Name:  "ranker-model",
			Usage: "Chat model name for ranking and insights",
			Value: "gpt-4o-mini",
		},
	}
	return append(flags, extra...)
}

func aiConfigFromFlags(c *cli.Context) (*ai.Config, error) {
	cfg := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithRankerModel(c.String("ranker-model")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return cfg, nil
}

func openNetwork(c *cli.Context) (*supernetwork.Network, error) {
	cfg, err := aiConfigFromFlags(c)
	if err != nil {
		return nil, err
	}
	return supernetwork.Open(c.String("db"), supernetwork.WithAIConfig(cfg))
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("a query is required")
	}

	network, err := openNetwork(c)
	if err != nil {
		return fmt.Errorf("failed to open network: %w", err)
	}
	defer network.Close()

	req := core.SearchRequest{
		Query:       strings.Join(c.Args().Slice(), " "),
		RequesterId: core.ID(c.String("requester")),
		CommunityId: core.ID(c.String("community")),
		Limit:       c.Int("limit"),
	}

	results, err := network.Search(context.Background(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d matches\n", len(results))
	for i, r := range results {
		fmt.Printf("%d: %s - %s [similarity %.3f, relevance %.2f]\n",
			i+1, r.Profile.Name, r.Profile.Headline, r.Similarity, r.Relevance)
		if r.Explanation != "" {
			fmt.Printf("   %s\n", r.Explanation)
		}
	}
	return nil
}

func refreshCommand(c *cli.Context) error {
	network, err := openNetwork(c)
	if err != nil {
		return fmt.Errorf("failed to open network: %w", err)
	}
	defer network.Close()

	written, err := network.RefreshEmbeddings(context.Background())
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	fmt.Printf("Refreshed %d embeddings\n", written)
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	embedder, err := openai.NewEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(
		badger.NewProfileRepository(backend),
		badger.NewEmbeddingRepository(backend),
		embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", cfg.EmbeddingHost)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", cfg.EmbeddingModel)
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}
	return nil
}

func insightCommand(c *cli.Context) error {
	network, err := openNetwork(c)
	if err != nil {
		return fmt.Errorf("failed to open network: %w", err)
	}
	defer network.Close()

	insight, err := network.MatchInsight(context.Background(),
		core.ID(c.String("viewer")), core.ID(c.String("target")))
	if err != nil {
		return fmt.Errorf("insight failed: %w", err)
	}

	fmt.Printf("%s (%s match, score %d, confidence %s)\n",
		insight.Headline, insight.Category, insight.Score, insight.Confidence)
	if insight.ValueProposition != "" {
		fmt.Printf("\n%s\n", insight.ValueProposition)
	}
	printList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Printf("\n%s:\n", title)
		for _, item := range items {
			fmt.Printf("  - %s\n", item)
		}
	}
	printList("Key strengths", insight.KeyStrengths)
	printList("Complementary skills", insight.ComplementarySkills)
	printList("Shared context", insight.SharedContext)
	printList("Next steps", insight.NextSteps)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
