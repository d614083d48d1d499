// Package mock provides test double implementations of embedding interfaces.
//
// This package contains mock implementations of embedding.Embedder and
// embedding.Provider for use in unit tests. The mocks allow tests to run
// without a word-vector file or external embedding service and enable
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	embedder := mock.NewMockEmbedder()
//	vec, err := embedder.EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return []float32{0.1, 0.2, 0.3}, nil
//	}
//
//	// Check call counts
//	count := embedder.CallCount()
//
// # Default Behavior
//
// MockEmbedder returns deterministic unit vectors derived from a hash of the
// input text, so identical inputs always embed identically across runs.
package mock
