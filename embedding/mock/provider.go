package mock

import "github.com/poiesic/termalign/embedding"

// MockProvider is a test double for embedding.Provider.
type MockProvider struct {
	embedder *MockEmbedder
}

// NewMockProvider creates a provider wrapping a default MockEmbedder.
func NewMockProvider() *MockProvider {
	return &MockProvider{embedder: NewMockEmbedder()}
}

// Embedder returns the mock embedder as the embedding.Embedder interface.
func (p *MockProvider) Embedder() embedding.Embedder {
	return p.embedder
}

// GetMockEmbedder returns the concrete mock for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// Close is a no-op.
func (p *MockProvider) Close() error {
	return nil
}
