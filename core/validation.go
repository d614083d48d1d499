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

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidateReportedTerm validates a reported term according to domain rules.
//
// Validation rules:
//   - Term must not be empty or whitespace only
//   - Term must be valid UTF-8 text
//
// Casing, punctuation, and abbreviations are all legal; the similarity
// methods normalize them downstream.
func ValidateReportedTerm(term string) error {
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidReportedTerm, ErrEmptyTerm)
	}

	if !utf8.ValidString(term) {
		return fmt.Errorf("%w: %w", ErrInvalidReportedTerm, ErrNotText)
	}

	return nil
}

// ValidateVocabulary validates a vocabulary according to domain rules.
//
// Validation rules:
//   - Vocabulary must have at least one entry
//   - Every entry must itself be a valid term
//   - Entries must be unique
func ValidateVocabulary(vocab Vocabulary) error {
	if len(vocab) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidVocabulary, ErrEmptyVocabulary)
	}

	seen := make(map[string]bool, len(vocab))
	for _, entry := range vocab {
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("%w: %w", ErrInvalidVocabulary, ErrEmptyTerm)
		}
		if !utf8.ValidString(entry) {
			return fmt.Errorf("%w: %w", ErrInvalidVocabulary, ErrNotText)
		}
		if seen[entry] {
			return fmt.Errorf("%w: %w: %q", ErrInvalidVocabulary, ErrDuplicateVocabularyTerm, entry)
		}
		seen[entry] = true
	}

	return nil
}
