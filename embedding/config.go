// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package embedding

import (
	"errors"
	"strings"
)

// Source identifies which embedding model implementation to construct.
type Source string

const (
	// SourceWordVec loads static pre-trained word vectors from a local file.
	SourceWordVec Source = "wordvec"

	// SourceOpenAI uses a remote OpenAI-compatible embedding API.
	SourceOpenAI Source = "openai"
)

// Config holds configuration for embedding model providers.
type Config struct {
	// Source selects the embedding implementation.
	// Default: SourceWordVec
	Source Source

	// VectorsPath is the path to a .vec word-vector file.
	// Required when Source is SourceWordVec.
	VectorsPath string

	// Host is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server.
	// Required when Source is SourceOpenAI.
	Host string

	// Model is the model identifier to use for text embeddings.
	// Example: "embeddinggemma", "text-embedding-3-small"
	Model string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithSource selects the embedding implementation.
func WithSource(source Source) ConfigOption {
	return func(c *Config) {
		c.Source = source
	}
}

// WithVectorsPath sets the word-vector file path and selects the wordvec source.
func WithVectorsPath(path string) ConfigOption {
	return func(c *Config) {
		c.Source = SourceWordVec
		c.VectorsPath = path
	}
}

// WithHost sets the embedding service host URL and selects the openai source.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Source = SourceOpenAI
		c.Host = host
	}
}

// WithModel sets the embedding model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible service, used when no word-vector file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceWordVec,
		Host:   "http://localhost:11434/v1",
		Model:  "embeddinggemma",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := NewConfig(WithVectorsPath("vectors.vec"))
//
// Example with a remote model:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434/v1"),
//	    WithModel("text-embedding-3-small"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the host if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Source {
	case SourceWordVec:
		if c.VectorsPath == "" {
			return errors.New("embedding config: VectorsPath is required for wordvec source")
		}
	case SourceOpenAI:
		if c.Host == "" {
			return errors.New("embedding config: Host is required for openai source")
		}
		if c.Model == "" {
			return errors.New("embedding config: Model is required for openai source")
		}
	default:
		return errors.New("embedding config: unknown source " + string(c.Source))
	}
	return nil
}
