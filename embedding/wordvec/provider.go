package wordvec

import "github.com/poiesic/termalign/embedding"

// Provider wraps a loaded word vector model as an embedding.Provider.
type Provider struct {
	model *Model
}

// NewProvider loads a word vector model from the given file.
func NewProvider(path string) (*Provider, error) {
	model, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Provider{model: model}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() embedding.Embedder {
	return p.model
}

// Model returns the underlying word vector model.
func (p *Provider) Model() *Model {
	return p.model
}

// Close is a no-op; the model holds no external resources.
func (p *Provider) Close() error {
	return nil
}
