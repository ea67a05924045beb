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
	"go/ast"
	"go/token"

	"fillmore-labs.com/shadowlight/internal/binding"
)

// Scope is one function, method or function literal body, treated as a flat binding namespace.
type Scope struct {
	// Name is the display name, e.g. "main", "T.String" or "main.func1".
	Name string

	// Kind is the syntactic origin of this scope.
	Kind Kind

	// Line is the source line of the function name, or of the func keyword for literals.
	Line int

	// Pos is the position corresponding to Line.
	Pos token.Pos

	// Node is the *[ast.FuncDecl] or *[ast.FuncLit] that opened this scope.
	Node ast.Node

	// Bindings holds the local declarations attributed to this scope.
	Bindings binding.Map
}

// HasShadow reports whether any identifier has been declared more than once in this scope.
func (s *Scope) HasShadow() bool { return s.Bindings.HasShadow() }
