package wordvec

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Model holds an in-memory word-vector table. It implements
// embedding.Embedder by mean pooling token vectors.
type Model struct {
	vectors   map[string][]float32
	dimension int
}

// Dimension returns the vector dimension of the model.
func (m *Model) Dimension() int {
	return m.dimension
}

// Len returns the number of words in the model.
func (m *Model) Len() int {
	return len(m.vectors)
}

// Vector returns the stored vector for a single word and whether the word
// is in the model. Lookup is case-insensitive.
func (m *Model) Vector(word string) ([]float32, bool) {
	v, ok := m.vectors[normalizeWord(word)]
	return v, ok
}

// EmbedText embeds a phrase by mean pooling the vectors of its tokens.
// Out-of-vocabulary tokens are skipped; if every token is out of
// vocabulary the zero vector is returned.
func (m *Model) EmbedText(_ context.Context, text string) ([]float32, error) {
	pooled := make([]float32, m.dimension)
	hits := 0

	for _, token := range tokenize(text) {
		v, ok := m.vectors[token]
		if !ok {
			continue
		}
		for i, val := range v {
			pooled[i] += val
		}
		hits++
	}

	if hits > 1 {
		inv := 1.0 / float32(hits)
		for i := range pooled {
			pooled[i] *= inv
		}
	}

	return pooled, nil
}

// EmbedTexts embeds multiple phrases, preserving input order.
func (m *Model) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := m.EmbedText(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = v
	}
	return embeddings, nil
}

// normalizeWord canonicalizes a single vocabulary word for lookup.
func normalizeWord(word string) string {
	return strings.ToLower(norm.NFKC.String(word))
}

// tokenize splits a phrase into lookup tokens: NFKC-normalized, lowercased,
// split on any rune that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(normalizeWord(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
