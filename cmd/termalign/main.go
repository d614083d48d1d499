// Copyright 2025 Poiesic Systems
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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/termalign/batch"
	"github.com/poiesic/termalign/core"
	"github.com/poiesic/termalign/embedding"
	"github.com/poiesic/termalign/embedding/openai"
	"github.com/poiesic/termalign/embedding/wordvec"
	"github.com/poiesic/termalign/report"
	"github.com/poiesic/termalign/similarity"
	"github.com/poiesic/termalign/standardize"
)

func main() {
	app := &cli.App{
		Name:  "termalign",
		Usage: "Standardize free-text terms against a controlled vocabulary",
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
				Name:      "standardize",
				Usage:     "Map reported terms onto vocabulary labels by similarity voting",
				ArgsUsage: "[term ...]",
				Action:    standardizeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "vocabulary",
						Aliases:  []string{"V"},
						Usage:    "Path to vocabulary file, one label per line",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "terms",
						Aliases: []string{"t"},
						Usage:   "Path to reported-terms file, one term per line (positional args otherwise)",
					},
					&cli.StringFlag{
						Name:  "vectors",
						Usage: "Path to word vectors file (.vec) for local semantic matching",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "OpenAI-compatible embedding service host URL (overrides --vectors)",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
					},
					&cli.Float64Flag{
						Name:  "lexical-threshold",
						Usage: "Minimum TF-IDF cosine similarity to accept a lexical match",
						Value: similarity.DefaultLexicalThreshold,
					},
					&cli.Float64Flag{
						Name:  "fuzzy-threshold",
						Usage: "Minimum token-set ratio to accept a fuzzy match",
						Value: similarity.DefaultFuzzyThreshold,
					},
					&cli.Float64Flag{
						Name:  "semantic-threshold",
						Usage: "Minimum embedding cosine similarity to accept a semantic match",
						Value: similarity.DefaultSemanticThreshold,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size (0 uses half the CPU count)",
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for transient embedding failures",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func standardizeCommand(c *cli.Context) error {
	ctx := context.Background()

	vocab, err := loadLines(c.String("vocabulary"))
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	terms, err := gatherTerms(c)
	if err != nil {
		return err
	}
	if len(terms) == 0 {
		return fmt.Errorf("no terms given: pass terms as arguments or via --terms")
	}

	embedder, closeEmbedder, err := buildEmbedder(c)
	if err != nil {
		return err
	}
	defer closeEmbedder()

	standardizer, err := standardize.NewStandardizer(ctx, core.Vocabulary(vocab), embedder,
		standardize.WithLexicalThreshold(c.Float64("lexical-threshold")),
		standardize.WithFuzzyThreshold(c.Float64("fuzzy-threshold")),
		standardize.WithSemanticThreshold(c.Float64("semantic-threshold")),
	)
	if err != nil {
		return fmt.Errorf("failed to create standardizer: %w", err)
	}

	runnerOpts := []batch.Option{
		batch.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
	}
	if size := c.Int("pool-size"); size > 0 {
		runnerOpts = append(runnerOpts, batch.WithPoolSize(size))
	}

	runner, err := batch.NewRunner(standardizer, runnerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create batch runner: %w", err)
	}
	defer runner.Release()

	results, err := runner.Run(ctx, terms)
	if err != nil {
		return fmt.Errorf("standardization failed: %w", err)
	}

	fmt.Println(report.RenderTable(results))
	return nil
}

// buildEmbedder selects the embedding backend from flags. A remote host wins
// over local vectors when both are given.
func buildEmbedder(c *cli.Context) (embedding.Embedder, func(), error) {
	if host := c.String("embedding-host"); host != "" {
		config := embedding.NewConfig(
			embedding.WithHost(host),
			embedding.WithModel(c.String("embedding-model")),
		)
		if err := config.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid embedding configuration: %w", err)
		}

		provider, err := openai.NewProvider(config)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		return provider.Embedder(), func() { provider.Close() }, nil
	}

	path := c.String("vectors")
	if path == "" {
		return nil, nil, fmt.Errorf("an embedding backend is required: pass --vectors or --embedding-host")
	}

	model, err := wordvec.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load word vectors: %w", err)
	}
	return model, func() {}, nil
}

func gatherTerms(c *cli.Context) ([]string, error) {
	if path := c.String("terms"); path != "" {
		terms, err := loadLines(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load terms: %w", err)
		}
		return terms, nil
	}
	return c.Args().Slice(), nil
}

// loadLines reads a file into trimmed non-empty lines.
// Lines starting with '#' are treated as comments.
func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
