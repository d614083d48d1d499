package standardize

import (
	"context"
	"log/slog"

	"github.com/poiesic/termalign/core"
	"github.com/poiesic/termalign/embedding"
	"github.com/poiesic/termalign/similarity"
)

// Standardizer maps reported terms onto a standard vocabulary by voting
// among three similarity methods. It is immutable after construction and
// safe for concurrent use; construction performs the one-time model warm-up
// (embedding the whole vocabulary), so build one Standardizer per
// vocabulary and share it.
type Standardizer struct {
	vocab   core.Vocabulary
	methods []similarity.Method
	logger  *slog.Logger

	lexicalThreshold  float64
	fuzzyThreshold    float64
	semanticThreshold float64
}

// Option configures a Standardizer.
type Option func(*Standardizer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Standardizer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithLexicalThreshold overrides the lexical acceptance threshold
// (cosine similarity in [0,1]).
func WithLexicalThreshold(threshold float64) Option {
	return func(s *Standardizer) error {
		s.lexicalThreshold = threshold
		return nil
	}
}

// WithFuzzyThreshold overrides the fuzzy acceptance threshold
// (score in [0,100]).
func WithFuzzyThreshold(threshold float64) Option {
	return func(s *Standardizer) error {
		s.fuzzyThreshold = threshold
		return nil
	}
}

// WithSemanticThreshold overrides the semantic acceptance threshold
// (cosine similarity in [0,1]).
func WithSemanticThreshold(threshold float64) Option {
	return func(s *Standardizer) error {
		s.semanticThreshold = threshold
		return nil
	}
}

// NewStandardizer creates a standardizer over a non-empty vocabulary of
// unique standard terms. The embedder is the frozen semantic model shared
// by every call; vocabulary embeddings are computed here, once.
func NewStandardizer(ctx context.Context, vocab core.Vocabulary, embedder embedding.Embedder, opts ...Option) (*Standardizer, error) {
	if err := core.ValidateVocabulary(vocab); err != nil {
		return nil, err
	}
	if embedder == nil {
		return nil, similarity.ErrEmbedderRequired
	}

	s := &Standardizer{
		vocab:             vocab,
		logger:            slog.Default(),
		lexicalThreshold:  similarity.DefaultLexicalThreshold,
		fuzzyThreshold:    similarity.DefaultFuzzyThreshold,
		semanticThreshold: similarity.DefaultSemanticThreshold,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	// Create methods after options are applied (so they get final config)
	lexical, err := similarity.NewLexical(vocab, similarity.WithLexicalThreshold(s.lexicalThreshold))
	if err != nil {
		return nil, err
	}
	fuzzy, err := similarity.NewFuzzy(vocab, similarity.WithFuzzyThreshold(s.fuzzyThreshold))
	if err != nil {
		return nil, err
	}
	semantic, err := similarity.NewSemantic(ctx, vocab, embedder,
		similarity.WithSemanticThreshold(s.semanticThreshold),
		similarity.WithSemanticLogger(s.logger))
	if err != nil {
		return nil, err
	}

	s.methods = []similarity.Method{lexical, fuzzy, semantic}
	return s, nil
}

// Vocabulary returns the standard term set the standardizer maps onto.
func (s *Standardizer) Vocabulary() core.Vocabulary {
	return s.vocab
}

// Standardize maps one reported term onto the vocabulary.
// Returns the best standardized label and how many score entries backed it.
func (s *Standardizer) Standardize(ctx context.Context, term string) (*core.StandardizationResult, error) {
	return s.StandardizeWithMonitor(ctx, term, nil)
}

// StandardizeWithMonitor maps one reported term onto the vocabulary with
// monitoring. The monitor receives callbacks at each stage of the decision.
func (s *Standardizer) StandardizeWithMonitor(ctx context.Context, term string, monitor Monitor) (*core.StandardizationResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateReportedTerm(term); err != nil {
		s.logger.Error("rejecting reported term", "term", term, "err", err)
		return nil, err
	}

	monitor.Start(term)

	// Collect exactly one vote per method.
	tally := core.NewTally()
	votes := make([]core.Vote, 0, len(s.methods))
	for _, method := range s.methods {
		vote, err := method.Vote(ctx, term)
		if err != nil {
			s.logger.Error("similarity method failed", "method", method.Kind(), "term", term, "err", err)
			return nil, err
		}

		if vote.Accepted {
			monitor.MethodMatched(vote)
		} else {
			monitor.MethodFellBack(vote)
		}

		tally.Add(vote)
		votes = append(votes, vote)
	}

	label, count := tally.Best()

	result := &core.StandardizationResult{
		Term:      term,
		Label:     label,
		VoteCount: count,
		Votes:     votes,
	}

	s.logger.Debug("standardized term",
		"term", term, "label", label, "votes", count, "standardized", result.Standardized())
	monitor.Finish(result)

	return result, nil
}
