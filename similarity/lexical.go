package similarity

import (
	"context"
	"math"
	"sort"

	"github.com/poiesic/termalign/core"
)

// DefaultLexicalThreshold is the minimum cosine similarity for the lexical
// method to accept its best candidate as a vote.
const DefaultLexicalThreshold = 0.70

// Lexical scores candidates by TF-IDF cosine similarity. The vocabulary and
// the reported term together form the document corpus, so document
// frequencies shift with each query while vocabulary token counts stay
// precomputed.
type Lexical struct {
	vocab     core.Vocabulary
	docTokens [][]string
	threshold float64
}

// LexicalOption configures a Lexical method.
type LexicalOption func(*Lexical) error

// WithLexicalThreshold overrides the acceptance threshold (cosine
// similarity in [0,1]). Default is DefaultLexicalThreshold.
func WithLexicalThreshold(threshold float64) LexicalOption {
	return func(l *Lexical) error {
		if threshold < 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
		l.threshold = threshold
		return nil
	}
}

// NewLexical creates the lexical method bound to a vocabulary.
func NewLexical(vocab core.Vocabulary, opts ...LexicalOption) (*Lexical, error) {
	if err := core.ValidateVocabulary(vocab); err != nil {
		return nil, err
	}

	l := &Lexical{
		vocab:     vocab,
		docTokens: make([][]string, len(vocab)),
		threshold: DefaultLexicalThreshold,
	}
	for i, entry := range vocab {
		l.docTokens[i] = tokenizeLexical(entry)
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Kind returns core.MethodLexical.
func (l *Lexical) Kind() core.Method {
	return core.MethodLexical
}

// Vote computes cosine similarity between the reported term's TF-IDF vector
// and every vocabulary entry's vector, voting for the best entry when its
// similarity clears the threshold and for the original term otherwise. The
// score is the best observed similarity scaled to [0,100] in both cases.
func (l *Lexical) Vote(_ context.Context, term string) (core.Vote, error) {
	queryTokens := tokenizeLexical(term)

	// Document frequencies over vocabulary entries plus the query document.
	docCount := len(l.docTokens) + 1
	df := make(map[string]int)
	for _, tokens := range l.docTokens {
		for _, token := range uniqueTokens(tokens) {
			df[token]++
		}
	}
	for _, token := range uniqueTokens(queryTokens) {
		df[token]++
	}

	idf := func(token string) float64 {
		return math.Log(float64(1+docCount)/float64(1+df[token])) + 1
	}

	queryVec := tfidfVector(queryTokens, idf)

	similarities := make([]float64, len(l.docTokens))
	for i, tokens := range l.docTokens {
		similarities[i] = dotProduct(queryVec, tfidfVector(tokens, idf))
	}

	best := argmax(similarities)
	bestSim := similarities[best]

	vote := core.Vote{
		Method:   core.MethodLexical,
		Label:    term,
		Score:    bestSim * 100,
		Accepted: bestSim >= l.threshold,
	}
	if vote.Accepted {
		vote.Label = l.vocab[best]
	}
	return vote, nil
}

// uniqueTokens returns the distinct tokens of a document, preserving first
// appearance order.
func uniqueTokens(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !seen[token] {
			seen[token] = true
			unique = append(unique, token)
		}
	}
	return unique
}

// sparseVector is an L2-normalized TF-IDF document vector. Keys are kept
// sorted so floating-point accumulation order never depends on map
// iteration, keeping scores bit-for-bit reproducible across calls.
type sparseVector struct {
	keys    []string
	weights map[string]float64
}

// tfidfVector builds the L2-normalized TF-IDF vector for one document.
func tfidfVector(tokens []string, idf func(string) float64) sparseVector {
	weights := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		weights[token]++
	}
	keys := make([]string, 0, len(weights))
	for token := range weights {
		keys = append(keys, token)
	}
	sort.Strings(keys)

	var sumSquares float64
	for _, token := range keys {
		w := weights[token] * idf(token)
		weights[token] = w
		sumSquares += w * w
	}
	if sumSquares > 0 {
		inv := 1 / math.Sqrt(sumSquares)
		for _, token := range keys {
			weights[token] *= inv
		}
	}
	return sparseVector{keys: keys, weights: weights}
}

// dotProduct of two sparse vectors. With both sides L2-normalized this is
// their cosine similarity.
func dotProduct(a, b sparseVector) float64 {
	sum := 0.0
	for _, token := range a.keys {
		sum += a.weights[token] * b.weights[token]
	}
	return sum
}
