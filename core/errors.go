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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidReportedTerm indicates a reported term failed validation.
	ErrInvalidReportedTerm = errors.New("invalid reported term")

	// ErrInvalidVocabulary indicates a vocabulary failed validation.
	ErrInvalidVocabulary = errors.New("invalid vocabulary")

	// ErrEmptyTerm indicates a term is empty or whitespace only.
	ErrEmptyTerm = errors.New("term cannot be empty")

	// ErrNotText indicates a term is not valid textual data.
	ErrNotText = errors.New("term is not valid text")

	// ErrEmptyVocabulary indicates the vocabulary has no entries.
	ErrEmptyVocabulary = errors.New("vocabulary cannot be empty")

	// ErrDuplicateVocabularyTerm indicates the vocabulary contains a repeated entry.
	ErrDuplicateVocabularyTerm = errors.New("vocabulary entries must be unique")
)
