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

package scope

import (
	"errors"
	"go/ast"
	"go/token"

	"fillmore-labs.com/shadowlight/analyzer/level"
)

// ErrOutsideScope is returned when a declaration is recorded while no scope is open.
var ErrOutsideScope = errors.New("binding outside any scope")

// Tracker maintains the open scopes of one file.
//
// With [level.ScopingLexical] it keeps an explicit stack and declarations go to the innermost
// open scope. With [level.ScopingLastOpened] scopes are never closed and declarations go to
// the most recently opened scope.
type Tracker struct {
	scoping level.Scoping

	// scopes holds all opened scopes in discovery order.
	scopes []*Scope

	// open is the stack of currently open scopes for lexical scoping.
	open []*Scope
}

// NewTracker creates a new [Tracker] with the given attribution mode.
func NewTracker(scoping level.Scoping) *Tracker {
	return &Tracker{scoping: scoping}
}

// Open starts a new scope, which becomes the target of subsequent declarations.
func (t *Tracker) Open(name string, kind Kind, line int, pos token.Pos, node ast.Node) *Scope {
	s := &Scope{Name: name, Kind: kind, Line: line, Pos: pos, Node: node}

	t.scopes = append(t.scopes, s)
	t.open = append(t.open, s)

	return s
}

// Close ends the innermost open scope.
func (t *Tracker) Close() {
	if t.scoping == level.ScopingLastOpened || len(t.open) == 0 {
		return
	}

	t.open = t.open[:len(t.open)-1]
}

// Current returns the scope declarations are currently attributed to.
func (t *Tracker) Current() (*Scope, error) {
	if len(t.open) == 0 {
		return nil, ErrOutsideScope
	}

	return t.open[len(t.open)-1], nil
}

// Record attributes a declaration of name to the current scope and reports whether it shadows
// an earlier declaration in that scope.
func (t *Tracker) Record(name string, line int, pos token.Pos) (shadow bool, err error) {
	s, err := t.Current()
	if err != nil {
		return false, err
	}

	return s.Bindings.Record(name, line, pos), nil
}

// Depth returns the number of open scopes.
func (t *Tracker) Depth() int { return len(t.open) }

// Scopes returns all opened scopes in discovery order.
func (t *Tracker) Scopes() []*Scope { return t.scopes }
