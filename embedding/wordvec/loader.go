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


package wordvec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrEmptyModel indicates the source contained no word vectors.
	ErrEmptyModel = errors.New("word vector source contains no vectors")

	// ErrDimensionMismatch indicates a row's vector length differs from the
	// dimension established by earlier rows.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)

// LoadFile loads a model from a .vec file on disk.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	model, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return model, nil
}

// Load reads a model from .vec text format: an optional "count dimension"
// header line followed by one "word v1 v2 ... vN" line per word. Duplicate
// words keep the last occurrence.
func Load(r io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	model := &Model{vectors: make(map[string][]float32)}
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		// Header line: word count and dimension, no vector components.
		if line == 1 && len(fields) == 2 {
			if _, err := strconv.Atoi(fields[0]); err == nil {
				if _, err := strconv.Atoi(fields[1]); err == nil {
					continue
				}
			}
		}

		word := normalizeWord(fields[0])
		components := fields[1:]

		if model.dimension == 0 {
			model.dimension = len(components)
		}
		if len(components) != model.dimension {
			return nil, fmt.Errorf("%w: line %d has %d components, want %d",
				ErrDimensionMismatch, line, len(components), model.dimension)
		}

		vector := make([]float32, len(components))
		for i, c := range components {
			val, err := strconv.ParseFloat(c, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing component %d: %w", line, i, err)
			}
			vector[i] = float32(val)
		}

		model.vectors[word] = vector
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(model.vectors) == 0 {
		return nil, ErrEmptyModel
	}

	return model, nil
}
