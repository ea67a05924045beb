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

package shadow

import (
	"iter"

	"fillmore-labs.com/shadowlight/internal/scope"
)

// State is the result of analyzing one file.
type State struct {
	// Filename is the name of the analyzed file.
	Filename string

	// Scopes holds all discovered scopes in discovery order.
	Scopes []*scope.Scope

	hasShadow bool
}

// HasShadow reports whether any scope of the file contains a shadowed declaration.
func (s *State) HasShadow() bool { return s.hasShadow }

// Shadowed yields the scopes containing shadowed declarations, in discovery order.
func (s *State) Shadowed() iter.Seq[*scope.Scope] {
	return func(yield func(*scope.Scope) bool) {
		if !s.hasShadow {
			return
		}

		for _, sc := range s.Scopes {
			if !sc.HasShadow() {
				continue
			}

			if !yield(sc) {
				return
			}
		}
	}
}

// ShadowCount returns the number of shadowing declarations in the file.
func (s *State) ShadowCount() int {
	n := 0

	for sc := range s.Shadowed() {
		for _, h := range sc.Bindings.Shadowed() {
			n += h.Len() - 1
		}
	}

	return n
}
