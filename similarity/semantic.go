package similarity

import (
	"context"
	"log/slog"
	"math"

	"github.com/poiesic/termalign/core"
	"github.com/poiesic/termalign/embedding"
)

// DefaultSemanticThreshold is the minimum cosine similarity for the
// semantic method to accept its best candidate as a vote.
const DefaultSemanticThreshold = 0.70

// sentinelSimilarity marks a call where no valid comparison occurred
// (the reported term had no usable embedding). It scales to the -100
// score the vote carries in that case.
const sentinelSimilarity = -1.0

// Semantic scores candidates by cosine similarity of embeddings from a
// frozen model. Vocabulary embeddings are computed once at construction;
// entries the model cannot embed (zero norm) are excluded from comparison
// for the lifetime of the method.
type Semantic struct {
	vocab     core.Vocabulary
	embedder  embedding.Embedder
	vectors   [][]float32 // nil for entries with zero-norm embeddings
	threshold float64
	logger    *slog.Logger
}

// SemanticOption configures a Semantic method.
type SemanticOption func(*Semantic) error

// WithSemanticThreshold overrides the acceptance threshold (cosine
// similarity in [0,1]). Default is DefaultSemanticThreshold.
func WithSemanticThreshold(threshold float64) SemanticOption {
	return func(s *Semantic) error {
		if threshold < 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
		s.threshold = threshold
		return nil
	}
}

// WithSemanticLogger sets a custom logger.
// Default is slog.Default().
func WithSemanticLogger(logger *slog.Logger) SemanticOption {
	return func(s *Semantic) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSemantic creates the semantic method bound to a vocabulary, embedding
// every entry once through the shared model. This is the one-time warm-up
// cost; Vote calls only embed the reported term.
func NewSemantic(ctx context.Context, vocab core.Vocabulary, embedder embedding.Embedder, opts ...SemanticOption) (*Semantic, error) {
	if err := core.ValidateVocabulary(vocab); err != nil {
		return nil, err
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Semantic{
		vocab:     vocab,
		embedder:  embedder,
		threshold: DefaultSemanticThreshold,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	vectors, err := embedder.EmbedTexts(ctx, vocab)
	if err != nil {
		return nil, err
	}

	s.vectors = make([][]float32, len(vocab))
	for i, v := range vectors {
		if vectorNorm(v) == 0 {
			s.logger.Debug("vocabulary entry has no embedding, excluded from semantic comparison", "entry", vocab[i])
			continue
		}
		s.vectors[i] = v
	}

	return s, nil
}

// Kind returns core.MethodSemantic.
func (s *Semantic) Kind() core.Method {
	return core.MethodSemantic
}

// Vote embeds the reported term and selects the vocabulary entry with the
// highest cosine similarity among entries with usable embeddings. A term
// the model cannot embed yields the sentinel -100 score and a fallback
// vote for the original term.
func (s *Semantic) Vote(ctx context.Context, term string) (core.Vote, error) {
	queryVec, err := s.embedder.EmbedText(ctx, term)
	if err != nil {
		return core.Vote{}, err
	}

	bestSim := sentinelSimilarity
	bestIdx := -1
	if vectorNorm(queryVec) > 0 {
		for i, v := range s.vectors {
			if v == nil {
				continue
			}
			sim := cosineSimilarity(queryVec, v)
			if bestIdx < 0 || sim > bestSim {
				bestSim = sim
				bestIdx = i
			}
		}
	}

	vote := core.Vote{
		Method:   core.MethodSemantic,
		Label:    term,
		Score:    bestSim * 100,
		Accepted: bestIdx >= 0 && bestSim >= s.threshold,
	}
	if vote.Accepted {
		vote.Label = s.vocab[bestIdx]
	}
	return vote, nil
}

// vectorNorm is the Euclidean norm of a vector.
func vectorNorm(v []float32) float64 {
	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}
	return math.Sqrt(sumSquares)
}

// cosineSimilarity is the normalized dot product of two vectors.
// Returns 0 for mismatched dimensions or zero-norm inputs.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
