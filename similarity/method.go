package similarity

import (
	"context"

	"github.com/poiesic/termalign/core"
)

// Method is one similarity scoring strategy bound to a vocabulary.
// Implementations must be safe for concurrent Vote calls.
type Method interface {
	// Kind identifies which similarity method this is.
	Kind() core.Method

	// Vote scores the reported term against the vocabulary and returns the
	// method's single vote: the best vocabulary entry when its score clears
	// the method's threshold, or the original term with the observed score
	// otherwise.
	Vote(ctx context.Context, term string) (core.Vote, error)
}

// argmax returns the index of the maximum value, scanning in order so the
// first occurrence wins ties. Returns -1 for an empty slice.
func argmax(values []float64) int {
	best := -1
	for i, v := range values {
		if best < 0 || v > values[best] {
			best = i
		}
	}
	return best
}
