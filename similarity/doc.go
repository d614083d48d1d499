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


// Package similarity implements the three independent similarity methods
// that score a reported term against a standard-term vocabulary:
//
//   - Lexical: TF-IDF cosine similarity over vocabulary tokens, with the
//     reported term treated as one additional document
//   - Fuzzy: token-set edit-distance similarity (go-edlib Levenshtein over
//     sorted-token combinations)
//   - Semantic: cosine similarity of mean-pooled embeddings from a frozen
//     embedding model
//
// Each method is bound to an immutable vocabulary at construction and emits
// exactly one core.Vote per call: the best-scoring vocabulary entry when its
// score clears the method's acceptance threshold, or the original reported
// term otherwise (the observed score is preserved either way as diagnostic
// evidence). When several entries share the maximum score the lowest-index
// entry wins, so vocabulary order is the declared tie-break priority.
//
// All methods are stateless after construction and safe for concurrent use.
package similarity
