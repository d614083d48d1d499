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

package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/termalign/core"
	"github.com/poiesic/termalign/standardize"
)

// Runner standardizes many reported terms concurrently over a shared
// Standardizer. Results are returned in input order, and repeated terms
// within the lifetime of a Runner are standardized once and served from a
// cache keyed by content ID.
type Runner struct {
	standardizer *standardize.Standardizer
	pool         *ants.Pool
	maxAttempts  int
	baseDelay    time.Duration
	cache        sync.Map // core.ID -> *core.StandardizationResult
	logger       *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the worker pool size for concurrent standardization.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}

		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		r.pool = pool
		return nil
	}
}

// WithRetry sets the retry policy applied to each term. Transient failures
// (typically from a remote embedder) are retried up to maxAttempts times
// with exponential backoff starting at baseDelay. Validation failures are
// never retried.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(r *Runner) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		r.maxAttempts = maxAttempts
		r.baseDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates a batch runner over the given standardizer.
func NewRunner(standardizer *standardize.Standardizer, opts ...Option) (*Runner, error) {
	if standardizer == nil {
		return nil, ErrStandardizerRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		standardizer: standardizer,
		pool:         pool,
		maxAttempts:  1,
		baseDelay:    100 * time.Millisecond,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}

	return r, nil
}

// Run standardizes every term and returns the results in input order. The
// first error encountered cancels the remaining work and is returned; on
// error the partial results slice is nil.
func (r *Runner) Run(ctx context.Context, terms []string) ([]*core.StandardizationResult, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*core.StandardizationResult, len(terms))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for i, term := range terms {
		wg.Add(1)
		index, reported := i, term
		submitErr := r.pool.Submit(func() {
			defer wg.Done()

			result, err := r.standardizeOne(ctx, reported)
			if err != nil {
				fail(err)
				return
			}
			results[index] = result
		})
		if submitErr != nil {
			wg.Done()
			fail(submitErr)
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

func (r *Runner) standardizeOne(ctx context.Context, term string) (*core.StandardizationResult, error) {
	// Validate up front so malformed input fails immediately instead of
	// burning retry attempts.
	if err := core.ValidateReportedTerm(term); err != nil {
		return nil, err
	}

	key := core.IDFromContent(term)
	if cached, ok := r.cache.Load(key); ok {
		return cached.(*core.StandardizationResult), nil
	}

	var result *core.StandardizationResult
	err := RetryWithBackoff(ctx, func() error {
		var opErr error
		result, opErr = r.standardizer.Standardize(ctx, term)
		return opErr
	}, r.maxAttempts, r.baseDelay)
	if err != nil {
		return nil, err
	}

	r.cache.Store(key, result)
	r.logger.Debug("standardized term", "term", term, "label", result.Label, "votes", result.VoteCount)
	return result, nil
}

// Release releases the worker pool.
// The runner should not be used after calling Release.
func (r *Runner) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
