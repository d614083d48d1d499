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


package termalign

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/termalign/batch"
	"github.com/poiesic/termalign/core"
	"github.com/poiesic/termalign/embedding"
	"github.com/poiesic/termalign/embedding/openai"
	"github.com/poiesic/termalign/embedding/wordvec"
	"github.com/poiesic/termalign/standardize"
)

// Aligner binds a controlled vocabulary to an embedding backend and exposes
// the full standardization surface: single terms, batches, and the
// underlying standardizer for callers that need finer control.
type Aligner struct {
	provider     embedding.Provider
	standardizer *standardize.Standardizer
	runner       *batch.Runner
	logger       *slog.Logger
}

// AlignerOption configures an Aligner.
type AlignerOption func(*alignerOptions)

type alignerOptions struct {
	embeddingConfig  *embedding.Config
	standardizerOpts []standardize.Option
	runnerOpts       []batch.Option
}

// WithEmbeddingConfig selects the embedding backend. An aligner cannot be
// built without one: the default config has no vectors path and fails
// validation.
func WithEmbeddingConfig(config *embedding.Config) AlignerOption {
	return func(o *alignerOptions) {
		if config != nil {
			o.embeddingConfig = config
		}
	}
}

// WithStandardizerOptions forwards options to the underlying standardizer,
// such as threshold overrides.
func WithStandardizerOptions(opts ...standardize.Option) AlignerOption {
	return func(o *alignerOptions) {
		o.standardizerOpts = append(o.standardizerOpts, opts...)
	}
}

// WithBatchOptions forwards options to the underlying batch runner, such as
// pool size and retry policy.
func WithBatchOptions(opts ...batch.Option) AlignerOption {
	return func(o *alignerOptions) {
		o.runnerOpts = append(o.runnerOpts, opts...)
	}
}

// NewAligner creates an aligner for the given vocabulary. The vocabulary is
// embedded once at construction.
func NewAligner(ctx context.Context, vocab core.Vocabulary, opts ...AlignerOption) (*Aligner, error) {
	options := &alignerOptions{
		embeddingConfig: embedding.DefaultConfig(),
		runnerOpts: []batch.Option{
			batch.WithRetry(3, 1*time.Second),
		},
	}
	for _, opt := range opts {
		opt(options)
	}

	if err := options.embeddingConfig.Validate(); err != nil {
		return nil, err
	}

	provider, err := newProvider(options.embeddingConfig)
	if err != nil {
		return nil, err
	}

	standardizer, err := standardize.NewStandardizer(ctx, vocab, provider.Embedder(), options.standardizerOpts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	runner, err := batch.NewRunner(standardizer, options.runnerOpts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	return &Aligner{
		provider:     provider,
		standardizer: standardizer,
		runner:       runner,
		logger:       slog.Default(),
	}, nil
}

func newProvider(config *embedding.Config) (embedding.Provider, error) {
	switch config.Source {
	case embedding.SourceOpenAI:
		return openai.NewProvider(config)
	default:
		return wordvec.NewProvider(config.VectorsPath)
	}
}

// Standardize maps a single reported term onto its vocabulary label.
func (a *Aligner) Standardize(ctx context.Context, term string) (*core.StandardizationResult, error) {
	return a.standardizer.Standardize(ctx, term)
}

// StandardizeAll maps many reported terms concurrently and returns results
// in input order.
func (a *Aligner) StandardizeAll(ctx context.Context, terms []string) ([]*core.StandardizationResult, error) {
	return a.runner.Run(ctx, terms)
}

// Standardizer returns the underlying standardizer.
func (a *Aligner) Standardizer() *standardize.Standardizer {
	return a.standardizer
}

// Close releases the worker pool and the embedding backend.
// The aligner should not be used after calling Close.
func (a *Aligner) Close() error {
	a.runner.Release()

	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing embedding provider", "err", err)
		return err
	}
	return nil
}
