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

// Map records the binding histories of one scope.
//
// Iteration follows the order in which identifiers were first declared.
// The zero value is ready to use.
type Map struct {
	index     map[string]*History
	order     []*History
	hasShadow bool
}

// Record adds a declaration of name and reports whether it shadows an earlier one.
func (m *Map) Record(name string, line int, pos token.Pos) (shadow bool) {
	if h, ok := m.index[name]; ok {
		h.Occurrences = append(h.Occurrences, Occurrence{Line: line, Pos: pos})
		m.hasShadow = true

		return true
	}

	if m.index == nil {
		m.index = make(map[string]*History)
	}

	h := &History{Name: name, Occurrences: []Occurrence{{Line: line, Pos: pos, Original: true}}}
	m.index[name] = h
	m.order = append(m.order, h)

	return false
}

// Lookup returns the history of name.
func (m *Map) Lookup(name string) (*History, bool) {
	h, ok := m.index[name]

	return h, ok
}

// Len returns the number of distinct identifiers.
func (m *Map) Len() int { return len(m.order) }

// HasShadow reports whether any identifier has been declared more than once.
func (m *Map) HasShadow() bool { return m.hasShadow }

// All yields every history.
func (m *Map) All() iter.Seq2[string, *History] {
	return func(yield func(string, *History) bool) {
		for _, h := range m.order {
			if !yield(h.Name, h) {
				return
			}
		}
	}
}

// Shadowed yields the histories with more than one declaration.
func (m *Map) Shadowed() iter.Seq2[string, *History] {
	return func(yield func(string, *History) bool) {
		if !m.hasShadow {
			return
		}

		for _, h := range m.order {
			if !h.Shadowed() {
				continue
			}

			if !yield(h.Name, h) {
				return
			}
		}
	}
}
