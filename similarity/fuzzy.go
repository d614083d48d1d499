package similarity

import (
	"context"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/poiesic/termalign/core"
)

// DefaultFuzzyThreshold is the minimum token-set score (0-100) for the
// fuzzy method to accept its best candidate as a vote.
const DefaultFuzzyThreshold = 80.0

// Fuzzy scores candidates with a token-set heuristic: the sorted distinct
// tokens of both strings are split into intersection and remainders, and
// the best normalized Levenshtein similarity among the recombined strings
// is the score. A term whose tokens are a subset of a candidate's (or vice
// versa) scores 100 regardless of the extra tokens.
type Fuzzy struct {
	vocab     core.Vocabulary
	prepared  []string
	threshold float64
}

// FuzzyOption configures a Fuzzy method.
type FuzzyOption func(*Fuzzy) error

// WithFuzzyThreshold overrides the acceptance threshold (score in [0,100]).
// Default is DefaultFuzzyThreshold.
func WithFuzzyThreshold(threshold float64) FuzzyOption {
	return func(f *Fuzzy) error {
		if threshold < 0 || threshold > 100 {
			return ErrInvalidThreshold
		}
		f.threshold = threshold
		return nil
	}
}

// NewFuzzy creates the fuzzy method bound to a vocabulary.
func NewFuzzy(vocab core.Vocabulary, opts ...FuzzyOption) (*Fuzzy, error) {
	if err := core.ValidateVocabulary(vocab); err != nil {
		return nil, err
	}

	f := &Fuzzy{
		vocab:     vocab,
		prepared:  make([]string, len(vocab)),
		threshold: DefaultFuzzyThreshold,
	}
	for i, entry := range vocab {
		f.prepared[i] = sortedTokenString(entry)
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Kind returns core.MethodFuzzy.
func (f *Fuzzy) Kind() core.Method {
	return core.MethodFuzzy
}

// Vote selects the vocabulary entry with the highest token-set score,
// accepting it when the score clears the threshold and falling back to the
// original term otherwise. The observed score is preserved either way.
func (f *Fuzzy) Vote(_ context.Context, term string) (core.Vote, error) {
	query := sortedTokenString(term)

	scores := make([]float64, len(f.prepared))
	for i, candidate := range f.prepared {
		scores[i] = tokenSetRatio(query, candidate)
	}

	best := argmax(scores)
	bestScore := scores[best]

	vote := core.Vote{
		Method:   core.MethodFuzzy,
		Label:    term,
		Score:    bestScore,
		Accepted: bestScore >= f.threshold,
	}
	if vote.Accepted {
		vote.Label = f.vocab[best]
	}
	return vote, nil
}

// sortedTokenString normalizes a string to its sorted distinct tokens
// joined by single spaces.
func sortedTokenString(text string) string {
	tokens := uniqueTokens(tokenize(text))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// tokenSetRatio compares two sorted-token strings the token-set way:
// score the intersection against each side's "intersection plus remainder"
// string and take the best. Inputs must already be sortedTokenString form.
func tokenSetRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)

	setB := make(map[string]bool, len(tokensB))
	for _, token := range tokensB {
		setB[token] = true
	}

	var common, restA []string
	for _, token := range tokensA {
		if setB[token] {
			common = append(common, token)
		} else {
			restA = append(restA, token)
		}
	}
	setCommon := make(map[string]bool, len(common))
	for _, token := range common {
		setCommon[token] = true
	}
	var restB []string
	for _, token := range tokensB {
		if !setCommon[token] {
			restB = append(restB, token)
		}
	}

	base := strings.Join(common, " ")
	withRestA := strings.TrimSpace(base + " " + strings.Join(restA, " "))
	withRestB := strings.TrimSpace(base + " " + strings.Join(restB, " "))

	score := levenshteinRatio(base, withRestA)
	if s := levenshteinRatio(base, withRestB); s > score {
		score = s
	}
	if s := levenshteinRatio(withRestA, withRestB); s > score {
		score = s
	}
	return score
}

// levenshteinRatio is normalized Levenshtein similarity scaled to [0,100].
func levenshteinRatio(a, b string) float64 {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim) * 100
}
