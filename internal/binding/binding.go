// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"go/token"
	"iter"
)

// Occurrence is one declaration of an identifier.
type Occurrence struct {
	// Line is the source line of the declared identifier.
	Line int

	// Pos is the position of the declared identifier.
	Pos token.Pos

	// Original is true for the first declaration of the identifier within its scope.
	Original bool
}

// History holds all declarations of one identifier within one scope, in discovery order.
//
// A History is never empty, and only its first occurrence is original.
type History struct {
	Name        string
	Occurrences []Occurrence
}

// Len returns the number of recorded declarations.
func (h *History) Len() int { return len(h.Occurrences) }

// Shadowed reports whether the identifier has been declared more than once.
func (h *History) Shadowed() bool { return len(h.Occurrences) > 1 }

// Original returns the first declaration.
func (h *History) Original() Occurrence { return h.Occurrences[0] }

// Shadows yields all declarations after the first.
func (h *History) Shadows() iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		for _, o := range h.Occurrences[1:] {
			if !yield(o) {
				return
			}
		}
	}
}

// Lines returns the declaration lines in discovery order.
func (h *History) Lines() []int {
	lines := make([]int, len(h.Occurrences))
	for i, o := range h.Occurrences {
		lines[i] = o.Line
	}

	return lines
}
