package similarity

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/termalign/core"
	"github.com/poiesic/termalign/embedding/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steeredEmbedder returns a mock that embeds the given texts to fixed
// vectors and everything else to the zero vector.
func steeredEmbedder(vectors map[string][]float32, dim int) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.Vectors = vectors
	embedder.EmbedTextFunc = func(_ context.Context, text string) ([]float32, error) {
		if v, ok := vectors[text]; ok {
			return v, nil
		}
		return make([]float32, dim), nil
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			v, _ := embedder.EmbedTextFunc(ctx, text)
			out[i] = v
		}
		return out, nil
	}
	return embedder
}

func TestNewSemantic(t *testing.T) {
	ctx := context.Background()

	t.Run("valid configuration", func(t *testing.T) {
		semantic, err := NewSemantic(ctx, antibodyVocab, mock.NewMockEmbedder())
		require.NoError(t, err)
		assert.Equal(t, core.MethodSemantic, semantic.Kind())
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewSemantic(ctx, antibodyVocab, nil)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})

	t.Run("empty vocabulary", func(t *testing.T) {
		_, err := NewSemantic(ctx, nil, mock.NewMockEmbedder())
		assert.ErrorIs(t, err, core.ErrEmptyVocabulary)
	})

	t.Run("embedder failure propagates", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		wantErr := errors.New("model unavailable")
		embedder.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
			return nil, wantErr
		}

		_, err := NewSemantic(ctx, antibodyVocab, embedder)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		_, err := NewSemantic(ctx, antibodyVocab, mock.NewMockEmbedder(), WithSemanticThreshold(-0.1))
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})
}

func TestSemantic_Vote(t *testing.T) {
	ctx := context.Background()
	vocab := core.Vocabulary{"NMDAR", "LGI1"}

	t.Run("closest embedding accepted", func(t *testing.T) {
		embedder := steeredEmbedder(map[string][]float32{
			"NMDAR":      {1, 0, 0},
			"LGI1":       {0, 1, 0},
			"Anti-NMDAR": {0.9, 0.1, 0},
		}, 3)
		semantic, err := NewSemantic(ctx, vocab, embedder)
		require.NoError(t, err)

		vote, err := semantic.Vote(ctx, "Anti-NMDAR")
		require.NoError(t, err)

		assert.True(t, vote.Accepted)
		assert.Equal(t, "NMDAR", vote.Label)
		assert.Greater(t, vote.Score, 70.0)
	})

	t.Run("below threshold falls back preserving score", func(t *testing.T) {
		embedder := steeredEmbedder(map[string][]float32{
			"NMDAR": {1, 0, 0},
			"LGI1":  {0, 1, 0},
			"query": {0.5, 0.5, 0.7071},
		}, 3)
		semantic, err := NewSemantic(ctx, vocab, embedder)
		require.NoError(t, err)

		vote, err := semantic.Vote(ctx, "query")
		require.NoError(t, err)

		assert.False(t, vote.Accepted)
		assert.Equal(t, "query", vote.Label)
		assert.InDelta(t, 50, vote.Score, 0.01)
	})

	t.Run("unembeddable term yields sentinel score", func(t *testing.T) {
		embedder := steeredEmbedder(map[string][]float32{
			"NMDAR": {1, 0, 0},
			"LGI1":  {0, 1, 0},
		}, 3)
		semantic, err := NewSemantic(ctx, vocab, embedder)
		require.NoError(t, err)

		vote, err := semantic.Vote(ctx, "zzgibberish")
		require.NoError(t, err)

		assert.False(t, vote.Accepted)
		assert.Equal(t, "zzgibberish", vote.Label)
		assert.Equal(t, -100.0, vote.Score)
	})

	t.Run("zero-norm vocabulary entries are excluded", func(t *testing.T) {
		// LGI1 has no embedding; a query pointing its way must not match it.
		embedder := steeredEmbedder(map[string][]float32{
			"NMDAR": {1, 0, 0},
			"query": {0, 1, 0},
		}, 3)
		semantic, err := NewSemantic(ctx, vocab, embedder)
		require.NoError(t, err)

		vote, err := semantic.Vote(ctx, "query")
		require.NoError(t, err)

		assert.False(t, vote.Accepted)
		assert.Equal(t, "query", vote.Label)
		assert.InDelta(t, 0, vote.Score, 1e-9)
	})

	t.Run("no comparable entries yields sentinel", func(t *testing.T) {
		embedder := steeredEmbedder(map[string][]float32{
			"query": {0, 1, 0},
		}, 3)
		semantic, err := NewSemantic(ctx, vocab, embedder)
		require.NoError(t, err)

		vote, err := semantic.Vote(ctx, "query")
		require.NoError(t, err)

		assert.False(t, vote.Accepted)
		assert.Equal(t, -100.0, vote.Score)
	})

	t.Run("embed failure propagates", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		semantic, err := NewSemantic(ctx, vocab, embedder)
		require.NoError(t, err)

		wantErr := errors.New("connection refused")
		embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
			return nil, wantErr
		}

		_, err = semantic.Vote(ctx, "NMDAR")
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestSemantic_Vote_ThresholdIsInclusive(t *testing.T) {
	ctx := context.Background()
	// Orthogonal vectors give cosine exactly 0, equal to a zero threshold.
	embedder := steeredEmbedder(map[string][]float32{
		"NMDAR": {1, 0},
		"query": {0, 1},
	}, 2)
	semantic, err := NewSemantic(ctx, core.Vocabulary{"NMDAR"}, embedder, WithSemanticThreshold(0))
	require.NoError(t, err)

	vote, err := semantic.Vote(ctx, "query")
	require.NoError(t, err)

	assert.True(t, vote.Accepted)
	assert.Equal(t, "NMDAR", vote.Label)
	assert.Zero(t, vote.Score)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{
			name: "identical unit vectors",
			a:    []float32{1, 0},
			b:    []float32{1, 0},
			want: 1,
		},
		{
			name: "orthogonal",
			a:    []float32{1, 0},
			b:    []float32{0, 1},
			want: 0,
		},
		{
			name: "opposite",
			a:    []float32{1, 0},
			b:    []float32{-1, 0},
			want: -1,
		},
		{
			name: "dimension mismatch",
			a:    []float32{1, 0},
			b:    []float32{1, 0, 0},
			want: 0,
		},
		{
			name: "zero vector",
			a:    []float32{0, 0},
			b:    []float32{1, 0},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}
