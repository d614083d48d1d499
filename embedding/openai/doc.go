// Package openai provides an embedding implementation using OpenAI-compatible APIs.
//
// This package implements the embedding.Embedder interface using the
// langchaingo library to communicate with OpenAI or OpenAI-compatible
// services (such as Ollama, LocalAI, or vLLM). It is the alternative to the
// static wordvec model for users who want contextual embeddings.
//
// # Usage
//
//	config := embedding.NewConfig(
//	    embedding.WithHost("http://localhost:11434"), // /v1 added automatically
//	    embedding.WithModel("embeddinggemma"),
//	)
//
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vec, err := provider.Embedder().EmbedText(ctx, "sample text")
package openai
