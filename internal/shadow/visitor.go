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
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"iter"
	"runtime/trace"

	"fillmore-labs.com/shadowlight/analyzer/level"
	"fillmore-labs.com/shadowlight/internal/astutil"
	"fillmore-labs.com/shadowlight/internal/scope"
)

// Analyze runs the engine on one parsed file.
//
// The returned error wraps [scope.ErrOutsideScope] when a declaration is found outside
// of any function; in that case no [State] is returned.
func Analyze(ctx context.Context, fset *token.FileSet, file *ast.File, opts Options) (*State, error) {
	defer trace.StartRegion(ctx, "Analyze").End()

	var filename string
	if handle := fset.File(file.FileStart); handle != nil {
		filename = handle.Name()
	}

	v := NewVisitor(fset, filename, opts)
	if err := v.Walk(file); err != nil {
		return nil, err
	}

	return v.State(), nil
}

// Visitor populates a [State] from a syntax tree.
type Visitor struct {
	fset     *token.FileSet
	literals level.Literals
	tracker  *scope.Tracker
	state    *State

	// frames is the stack of enclosing function bodies. The first frame stands for code
	// outside any function.
	frames []*frame
}

// NewVisitor creates a new [Visitor] for the file named filename.
func NewVisitor(fset *token.FileSet, filename string, opts Options) *Visitor {
	return &Visitor{
		fset:     fset,
		literals: opts.Literals,
		tracker:  scope.NewTracker(opts.Scoping),
		state:    &State{Filename: filename},
		frames:   []*frame{newFrame(nil, nil)},
	}
}

// State returns the analysis result collected so far.
func (v *Visitor) State() *State {
	v.state.Scopes = v.tracker.Scopes()

	return v.state
}

// Walk traverses the syntax tree rooted at root.
//
// The traversal stops at the first declaration that cannot be attributed to a scope.
func (v *Visitor) Walk(root ast.Node) error {
	var (
		stack []ast.Node
		err   error
	)

	ast.Inspect(root, func(n ast.Node) bool {
		if err != nil {
			return false
		}

		if n == nil {
			v.leave(stack[len(stack)-1])
			stack = stack[:len(stack)-1]

			return false
		}

		descend, e := v.enter(n, stack)
		if e != nil {
			err = e

			return false
		}

		if descend {
			stack = append(stack, n)
		}

		return descend
	})

	return err
}

func (v *Visitor) enter(n ast.Node, stack []ast.Node) (descend bool, err error) {
	switch n := n.(type) {
	case *ast.FuncDecl:
		if n.Body == nil {
			return false, nil // external function
		}

		kind := scope.Function
		if n.Recv != nil {
			kind = scope.Method
		}

		s := v.tracker.Open(scope.FuncName(n), kind, v.line(n.Name.Pos()), n.Name.Pos(), n)
		v.frames = append(v.frames, newFrame(s, n.Body, n.Recv, n.Type.TypeParams, n.Type.Params, n.Type.Results))

	case *ast.FuncLit:
		s := v.openLiteral(n)
		v.frames = append(v.frames, newFrame(s, n.Body, n.Type.Params, n.Type.Results))

	case *ast.BlockStmt:
		if f := v.frame(); f.body != n {
			f.pushBlock()
		}

	case *ast.IfStmt, *ast.ForStmt, *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.CommClause:
		v.frame().pushBlock()

	case *ast.CaseClause:
		f := v.frame()
		f.pushBlock()

		// The type switch symbol is implicitly declared in every clause
		if id := typeSwitchGuard(stack); id != nil {
			f.declare(id.Name)
		}

	case *ast.RangeStmt:
		v.frame().pushBlock()

		return true, v.declare(astutil.DeclaredIdents(n), false)

	case *ast.AssignStmt:
		// Identifiers already declared in the same block are assigned, not declared
		return true, v.declare(astutil.AllAssigned(n), true)

	case *ast.DeclStmt:
		return true, v.declare(astutil.AllDeclared(n), false)
	}

	return true, nil
}

func (v *Visitor) leave(n ast.Node) {
	switch n := n.(type) {
	case *ast.FuncDecl, *ast.FuncLit:
		if v.frame().scope != nil {
			v.tracker.Close()
		}

		v.frames = v.frames[:len(v.frames)-1]

	case *ast.BlockStmt:
		if f := v.frame(); f.body != n {
			f.popBlock()
		}

	case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt, *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.CaseClause, *ast.CommClause:
		v.frame().popBlock()
	}
}

// typeSwitchGuard returns the symbol of the type switch enclosing a case clause, given the
// clause's ancestors.
func typeSwitchGuard(stack []ast.Node) *ast.Ident {
	if len(stack) < 2 {
		return nil
	}

	ts, ok := stack[len(stack)-2].(*ast.TypeSwitchStmt)
	if !ok {
		return nil
	}

	as, ok := ts.Assign.(*ast.AssignStmt)
	if !ok || len(as.Lhs) != 1 {
		return nil
	}

	id, ok := as.Lhs[0].(*ast.Ident)
	if !ok || id.Name == "_" {
		return nil
	}

	return id
}

// openLiteral opens the scope of a function literal, or returns nil when the literal
// is attributed to its enclosing function.
func (v *Visitor) openLiteral(lit *ast.FuncLit) *scope.Scope {
	parent := v.namedFrame()
	if v.literals == level.LiteralsInline && parent.scope != nil {
		return nil
	}

	parent.literals++
	name := scope.LiteralName(parent.scope, parent.literals)

	return v.tracker.Open(name, scope.Literal, v.line(lit.Type.Func), lit.Type.Func, lit)
}

// declare records the given identifiers. With reuse, identifiers already declared in the
// innermost block are skipped.
func (v *Visitor) declare(ids iter.Seq[*ast.Ident], reuse bool) error {
	f := v.frame()

	for id := range ids {
		if !f.declare(id.Name) && reuse {
			continue
		}

		shadow, err := v.tracker.Record(id.Name, v.line(id.NamePos), id.NamePos)
		if err != nil {
			return fmt.Errorf("%s: declaration of %q: %w", v.fset.Position(id.NamePos), id.Name, err)
		}

		if shadow {
			v.state.hasShadow = true
		}
	}

	return nil
}

func (v *Visitor) frame() *frame { return v.frames[len(v.frames)-1] }

// namedFrame returns the innermost frame that opened a scope, or the package level frame.
func (v *Visitor) namedFrame() *frame {
	for i := len(v.frames) - 1; i > 0; i-- {
		if f := v.frames[i]; f.scope != nil {
			return f
		}
	}

	return v.frames[0]
}

func (v *Visitor) line(pos token.Pos) int {
	return v.fset.Position(pos).Line
}
