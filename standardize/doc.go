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


// Package standardize maps free-text clinical term variants onto a fixed
// controlled vocabulary by voting among three independent similarity
// methods.
//
// The Standardizer collects one vote per method (lexical TF-IDF, fuzzy
// token-set, semantic embedding), tallies votes per candidate label, ranks
// labels by mean score, and returns the top label together with its vote
// count. The count is the number of score entries backing the winner and
// serves as an agreement signal: a label all three methods converge on
// returns 3, a label only one method proposed returns 1. Callers can gate
// auto-acceptance on it (for example, require a count of at least 2).
//
// A method whose best candidate misses its threshold still votes, for the
// original reported term, so every call produces exactly three votes and a
// non-empty result: either a vocabulary label or the input echoed back.
package standardize
