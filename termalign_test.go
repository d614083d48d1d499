package termalign

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/termalign/core"
	"github.com/poiesic/termalign/embedding"
	"github.com/poiesic/termalign/standardize"
)

var antibodyVocab = core.Vocabulary{
	"NMDAR", "LGI1", "CASPR2", "AMPAR", "GABAAR", "GABABR", "DPPX",
	"Dopamine-2R", "mGluR5", "Neurexin-3α", "IgLON5", "P/Q type VGCC",
	"mGluR1", "GlyR", "SOX-1",
}

func writeVectors(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.vec")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func newTestAligner(t *testing.T, opts ...AlignerOption) *Aligner {
	t.Helper()

	path := writeVectors(t, "nmdar 1.0 0.0 0.0\nencephalitis 0.9 0.1 0.0\nlgi1 0.0 1.0 0.0\n")

	opts = append([]AlignerOption{
		WithEmbeddingConfig(embedding.NewConfig(embedding.WithVectorsPath(path))),
	}, opts...)

	aligner, err := NewAligner(context.Background(), antibodyVocab, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { aligner.Close() })

	return aligner
}

func TestNewAligner(t *testing.T) {
	t.Run("requires embedding backend", func(t *testing.T) {
		_, err := NewAligner(context.Background(), antibodyVocab)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VectorsPath")
	})

	t.Run("rejects empty vocabulary", func(t *testing.T) {
		path := writeVectors(t, "nmdar 1.0 0.0\n")
		_, err := NewAligner(context.Background(), nil,
			WithEmbeddingConfig(embedding.NewConfig(embedding.WithVectorsPath(path))))
		require.ErrorIs(t, err, core.ErrEmptyVocabulary)
	})

	t.Run("missing vectors file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.vec")
		_, err := NewAligner(context.Background(), antibodyVocab,
			WithEmbeddingConfig(embedding.NewConfig(embedding.WithVectorsPath(path))))
		require.Error(t, err)
	})
}

func TestAligner_Standardize(t *testing.T) {
	aligner := newTestAligner(t)

	result, err := aligner.Standardize(context.Background(), "Caspr2")
	require.NoError(t, err)
	assert.Equal(t, "CASPR2", result.Label)
	assert.Equal(t, 2, result.VoteCount)
}

func TestAligner_StandardizeAll(t *testing.T) {
	aligner := newTestAligner(t)

	terms := []string{"NMDAR", "encephalitis", "LGI1 Autoimmune Encephalitis"}
	results, err := aligner.StandardizeAll(context.Background(), terms)
	require.NoError(t, err)
	require.Len(t, results, len(terms))

	assert.Equal(t, "NMDAR", results[0].Label)
	assert.Equal(t, 3, results[0].VoteCount)

	// Lexical and fuzzy have nothing to work with, but the word vectors
	// place "encephalitis" next to "nmdar".
	assert.Equal(t, "NMDAR", results[1].Label)
	assert.Equal(t, 1, results[1].VoteCount)

	assert.Equal(t, "LGI1", results[2].Label)
}

func TestAligner_StandardizerOptions(t *testing.T) {
	aligner := newTestAligner(t, WithStandardizerOptions(
		standardize.WithFuzzyThreshold(100),
	))

	// With the fuzzy threshold raised to exact matches only, "NMDA-R" has
	// no accepting method left and echoes back unchanged.
	result, err := aligner.Standardize(context.Background(), "NMDA-R")
	require.NoError(t, err)
	assert.Equal(t, "NMDA-R", result.Label)
	assert.Equal(t, 3, result.VoteCount)
}
