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

package binding_test

import (
	"go/token"
	"slices"
	"testing"

	. "fillmore-labs.com/shadowlight/internal/binding"
)

func TestRecord(t *testing.T) {
	t.Parallel()

	type decl struct {
		name string
		line int
	}

	tests := []struct {
		name       string
		decls      []decl
		wantShadow []bool
		wantLines  map[string][]int
		hasShadow  bool
	}{
		{
			name:       "Single",
			decls:      []decl{{"x", 1}},
			wantShadow: []bool{false},
			wantLines:  map[string][]int{"x": {1}},
		},
		{
			name:       "Distinct",
			decls:      []decl{{"x", 1}, {"y", 2}},
			wantShadow: []bool{false, false},
			wantLines:  map[string][]int{"x": {1}, "y": {2}},
		},
		{
			name:       "Redeclared",
			decls:      []decl{{"x", 1}, {"x", 2}},
			wantShadow: []bool{false, true},
			wantLines:  map[string][]int{"x": {1, 2}},
			hasShadow:  true,
		},
		{
			name:       "Interleaved",
			decls:      []decl{{"a", 1}, {"b", 2}, {"a", 3}, {"a", 4}, {"b", 5}},
			wantShadow: []bool{false, false, true, true, true},
			wantLines:  map[string][]int{"a": {1, 3, 4}, "b": {2, 5}},
			hasShadow:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m Map

			for i, d := range tt.decls {
				if got, want := m.Record(d.name, d.line, token.Pos(i+1)), tt.wantShadow[i]; got != want {
					t.Errorf("Record(%q, %d) = %t, want %t", d.name, d.line, got, want)
				}
			}

			if got, want := m.HasShadow(), tt.hasShadow; got != want {
				t.Errorf("HasShadow() = %t, want %t", got, want)
			}

			if got, want := m.Len(), len(tt.wantLines); got != want {
				t.Errorf("Len() = %d, want %d", got, want)
			}

			for name, want := range tt.wantLines {
				h, ok := m.Lookup(name)
				if !ok {
					t.Fatalf("Lookup(%q) failed", name)
				}

				if got := h.Lines(); !slices.Equal(got, want) {
					t.Errorf("Lines(%q) = %v, want %v", name, got, want)
				}

				for i, o := range h.Occurrences {
					if got, want := o.Original, i == 0; got != want {
						t.Errorf("Occurrence %d of %q original = %t, want %t", i, name, got, want)
					}
				}
			}
		})
	}
}

func TestOrder(t *testing.T) {
	t.Parallel()

	var m Map

	for i, name := range []string{"c", "a", "b", "a", "c"} {
		m.Record(name, i+1, token.NoPos)
	}

	var all []string
	for name := range m.All() {
		all = append(all, name)
	}

	if want := []string{"c", "a", "b"}; !slices.Equal(all, want) {
		t.Errorf("All() = %v, want %v", all, want)
	}

	var shadowed []string
	for name, h := range m.Shadowed() {
		shadowed = append(shadowed, name)

		if h.Original().Line >= h.Occurrences[1].Line {
			t.Errorf("Original of %q on line %d, not before %d", name, h.Original().Line, h.Occurrences[1].Line)
		}
	}

	if want := []string{"c", "a"}; !slices.Equal(shadowed, want) {
		t.Errorf("Shadowed() = %v, want %v", shadowed, want)
	}
}

func TestShadows(t *testing.T) {
	t.Parallel()

	var m Map

	m.Record("a", 1, token.NoPos)
	m.Record("a", 2, token.NoPos)
	m.Record("a", 3, token.NoPos)

	h, _ := m.Lookup("a")

	var lines []int
	for o := range h.Shadows() {
		if o.Original {
			t.Errorf("Shadow on line %d marked original", o.Line)
		}

		lines = append(lines, o.Line)
	}

	if want := []int{2, 3}; !slices.Equal(lines, want) {
		t.Errorf("Shadows() = %v, want %v", lines, want)
	}
}

func TestZeroMap(t *testing.T) {
	t.Parallel()

	var m Map

	if _, ok := m.Lookup("x"); ok {
		t.Error("Lookup on empty map succeeded")
	}

	for name := range m.Shadowed() {
		t.Errorf("Unexpected shadowed identifier %q", name)
	}
}
