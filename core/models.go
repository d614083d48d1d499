package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Method identifies one of the similarity methods that contribute votes.
type Method int

const (
	// MethodLexical is TF-IDF cosine similarity over vocabulary tokens.
	MethodLexical Method = iota + 1
	// MethodFuzzy is token-set edit-distance similarity.
	MethodFuzzy
	// MethodSemantic is cosine similarity of mean-pooled embeddings.
	MethodSemantic
)

// String returns the human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodLexical:
		return "lexical"
	case MethodFuzzy:
		return "fuzzy"
	case MethodSemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// Vocabulary is the canonical label set reported terms are mapped onto.
// It is immutable for the lifetime of a standardizer; declaration order
// acts as tie-break priority when candidates score identically.
type Vocabulary []string

// Vote is one similarity method's contribution to the aggregation: a
// candidate label paired with a score in [0,100] (the semantic method
// reports -100 when no valid comparison could be made). Accepted reports
// whether the score cleared the method's threshold; when it did not, Label
// carries the original reported term instead of a vocabulary entry.
type Vote struct {
	Method   Method
	Label    string
	Score    float64
	Accepted bool
}

// Tally accumulates votes per candidate label, preserving the order in
// which labels were first introduced so that mean-score ties resolve to
// the first method that proposed the label.
type Tally struct {
	labels []string
	scores map[string][]float64
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{scores: make(map[string][]float64)}
}

// Add appends a vote's score to its label's score list, creating the
// list on first appearance.
func (t *Tally) Add(vote Vote) {
	if _, ok := t.scores[vote.Label]; !ok {
		t.labels = append(t.labels, vote.Label)
	}
	t.scores[vote.Label] = append(t.scores[vote.Label], vote.Score)
}

// Labels returns the candidate labels in first-appearance order.
func (t *Tally) Labels() []string {
	return t.labels
}

// Scores returns the score list recorded for a label.
func (t *Tally) Scores(label string) []float64 {
	return t.scores[label]
}

// Best returns the label with the highest mean score together with its
// vote count. Ties in mean score resolve to the label introduced first.
// Returns ("", 0) for an empty tally.
func (t *Tally) Best() (string, int) {
	best := ""
	bestMean := 0.0
	for _, label := range t.labels {
		scores := t.scores[label]
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		mean := sum / float64(len(scores))
		if best == "" || mean > bestMean {
			best = label
			bestMean = mean
		}
	}
	if best == "" {
		return "", 0
	}
	return best, len(t.scores[best])
}

// StandardizationResult is the outcome of standardizing one reported term.
// VoteCount is the number of score entries backing Label; it acts as an
// agreement signal for downstream filtering.
type StandardizationResult struct {
	Term      string
	Label     string
	VoteCount int
	Votes     []Vote // diagnostic evidence, one entry per method
}

// Standardized reports whether the chosen label is an actual vocabulary
// entry rather than the original reported term echoed back.
func (r *StandardizationResult) Standardized() bool {
	return r.Label != r.Term
}
