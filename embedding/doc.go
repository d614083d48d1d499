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


// Package embedding provides abstractions for the semantic embedding models
// used by termalign's similarity engine.
//
// The package defines the Embedder interface that the semantic similarity
// method depends on, allowing the decision logic to stay independent of any
// concrete model. Models are frozen similarity oracles: they are loaded once
// per process and shared read-only across standardization calls. Reloading a
// model per call is the dominant cost and must be avoided.
//
// # Implementation Packages
//
// Three implementation sub-packages are included:
//
//   - embedding/wordvec: static pre-trained word vectors loaded from .vec
//     files, with mean pooling over token vectors
//   - embedding/openai: remote embeddings via OpenAI-compatible APIs
//   - embedding/mock: deterministic test doubles for unit testing
//
// # Constructor Return Type Pattern
//
// Public constructors (wordvec.NewModel, openai.NewEmbedder) return the
// Embedder INTERFACE to enforce abstraction and keep callers decoupled from
// concrete implementations.
//
// Test utility constructors (mock.NewMockEmbedder) return CONCRETE types to
// enable behavior injection and call-count assertions.
//
// # Usage Example
//
//	model, err := wordvec.LoadFile("vectors.vec")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vec, err := model.EmbedText(ctx, "Anti-NMDAR Encephalitis")
package embedding
