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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
)

// DeclaredIdents yields the identifiers a local declaration binds, in source order.
//
// Recognized declarations are short variable declarations (:=), var declaration statements
// and range clauses using :=. Other nodes yield nothing. Blank identifiers are skipped.
//
// Whether a := identifier declares a new variable or reuses one from the same block is not
// decided here.
func DeclaredIdents(node ast.Node) iter.Seq[*ast.Ident] {
	switch n := node.(type) {
	case *ast.AssignStmt:
		return AllAssigned(n)

	case *ast.DeclStmt:
		return AllDeclared(n)

	case *ast.RangeStmt:
		return rangeVars(n)

	default:
		return func(func(*ast.Ident) bool) {}
	}
}

// AllAssigned yields all identifiers on the left side of a short variable declaration.
func AllAssigned(stmt *ast.AssignStmt) iter.Seq[*ast.Ident] {
	if stmt.Tok != token.DEFINE {
		return func(func(*ast.Ident) bool) {}
	}

	return func(yield func(*ast.Ident) bool) {
		for _, expr := range stmt.Lhs {
			if !yieldIdents(expr, yield) {
				return
			}
		}
	}
}

// AllDeclared yields all declared variable names of a var declaration statement.
func AllDeclared(stmt *ast.DeclStmt) iter.Seq[*ast.Ident] {
	decl, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR {
		return func(func(*ast.Ident) bool) {}
	}

	return func(yield func(*ast.Ident) bool) {
		for _, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for _, id := range vspec.Names {
				if !yieldIdents(id, yield) {
					return
				}
			}
		}
	}
}

func rangeVars(stmt *ast.RangeStmt) iter.Seq[*ast.Ident] {
	if stmt.Tok != token.DEFINE {
		return func(func(*ast.Ident) bool) {}
	}

	return func(yield func(*ast.Ident) bool) {
		for _, expr := range []ast.Expr{stmt.Key, stmt.Value} {
			if expr == nil {
				continue
			}

			if !yieldIdents(expr, yield) {
				return
			}
		}
	}
}

// yieldIdents flattens a binding expression into its named identifiers.
func yieldIdents(expr ast.Expr, yield func(*ast.Ident) bool) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		if e.Name == "_" {
			return true // blank identifier
		}

		return yield(e)

	case *ast.ParenExpr:
		return yieldIdents(e.X, yield)

	default:
		return true
	}
}
