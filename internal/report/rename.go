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

package report

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/analysis"
)

// Renamer handles the renaming of shadowing variables by generating unique names.
//
// It ensures uniqueness by checking the variable's scope hierarchy for naming conflicts.
type Renamer struct {
	// renamed tracks variables that have already been processed to prevent duplicate renaming.
	renamed map[*types.Var]struct{}

	// count tracks the number of times a variable name has been used as a prefix for a new name.
	// This ensures deterministic suffix generation (_1, _2, etc.) across multiple renames.
	count map[string]int
}

// NewRenamer creates a new Renamer instance.
func NewRenamer() *Renamer {
	return &Renamer{
		renamed: make(map[*types.Var]struct{}),
		count:   make(map[string]int),
	}
}

// Renames generates [analysis.SuggestedFix]es to rename the variable declared at pos
// within the function node.
//
// The method returns nil on a nil receiver, when no type information is available for the
// declaration or when the variable has already been renamed.
func (r *Renamer) Renames(info *types.Info, node ast.Node, pos token.Pos) []analysis.SuggestedFix {
	if r == nil || info == nil || node == nil {
		return nil
	}

	v, ok := definedVar(info, node, pos)
	if !ok {
		return nil
	}

	// Has this variable already been renamed?
	if _, ok := r.renamed[v]; ok {
		return nil
	}

	// Mark this variable as renamed to prevent duplicate processing
	r.renamed[v] = struct{}{}

	name := v.Name()

	suffix, ok := r.uniqueSuffix(v.Parent(), name)
	if !ok {
		return nil
	}

	var edits []analysis.TextEdit

	offset := token.Pos(len(name))

	// Find all occurrences of this variable (both definitions and uses)
	ast.Inspect(node, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok || !idIsVar(info, id, v) {
			return true
		}

		edits = append(edits, analysis.TextEdit{Pos: id.NamePos + offset, End: id.NamePos + offset, NewText: suffix})

		return true
	})

	return []analysis.SuggestedFix{{Message: "Rename variable " + name, TextEdits: edits}}
}

// definedVar finds the variable defined by the identifier at pos.
func definedVar(info *types.Info, node ast.Node, pos token.Pos) (v *types.Var, ok bool) {
	ast.Inspect(node, func(n ast.Node) bool {
		if ok || n == nil || pos < n.Pos() || n.End() <= pos {
			return false
		}

		if id, isIdent := n.(*ast.Ident); isIdent && id.NamePos == pos {
			v, ok = info.Defs[id].(*types.Var)

			return false
		}

		return true
	})

	return v, ok
}

// idIsVar checks if the given identifier denotes the specified variable.
func idIsVar(info *types.Info, id *ast.Ident, v *types.Var) bool {
	if use, ok := info.Uses[id]; ok {
		return use == v
	}

	if def, ok := info.Defs[id]; ok {
		return def == v
	}

	return false
}

// uniqueSuffix generates a deterministic unique suffix for a variable name.
//
// The method checks both parent and child scopes to ensure the new name doesn't
// conflict with any existing variables in the scope hierarchy.
func (r *Renamer) uniqueSuffix(scope *types.Scope, name string) ([]byte, bool) {
	if scope == nil || name == "_" {
		return nil, false
	}

	const maxTries = 99

	c := r.count[name]

	for range maxTries {
		c++
		suffix := "_" + strconv.Itoa(c)

		// Check if this name conflicts with any existing variable in the scope hierarchy
		if fullName := name + suffix; checkParents(scope, fullName) || checkChildren(scope, fullName) {
			continue
		}

		// Found a unique name: persist the counter and return the suffix
		r.count[name] = c

		return []byte(suffix), true
	}

	return nil, false
}

// checkParents checks if the name is already defined in the scope or any of its parent scopes.
func checkParents(scope *types.Scope, name string) bool {
	for parent := scope; parent != nil; parent = parent.Parent() {
		if parent.Lookup(name) != nil {
			return true
		}
	}

	return false
}

// checkChildren recursively checks if the name is defined in any of the child scopes.
func checkChildren(scope *types.Scope, name string) bool {
	for child := range scope.Children() {
		if child.Lookup(name) != nil {
			return true
		}

		if checkChildren(child, name) {
			return true
		}
	}

	return false
}
