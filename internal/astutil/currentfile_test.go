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

package astutil_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/shadowlight/internal/astutil"
	"fillmore-labs.com/shadowlight/internal/testsource"
)

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	const src = `package test

func f() {
	a := 1 //nolint:shadowlight
	b := 2 //nolint:govet,shadowlight // reason
	c := 3 //nolint:all
	d := 4 //nolint:govet
	e := 5
	// nolint:shadowlight
	_, _, _, _, _ = a, b, c, d, e
}
`

	fset, f := testsource.ParseFile(t, src)

	cf := NewCurrentFile(fset, f)
	if !cf.Valid() || cf.Generated() || cf.Filename() != "test.go" {
		t.Fatalf("Unexpected file info valid=%t generated=%t name=%q", cf.Valid(), cf.Generated(), cf.Filename())
	}

	want := map[string]bool{"a": true, "b": true, "c": true, "d": false, "e": false}

	ast.Inspect(f, func(n ast.Node) bool {
		as, ok := n.(*ast.AssignStmt)
		if !ok || as.Tok.String() != ":=" {
			return true
		}

		id := as.Lhs[0].(*ast.Ident)
		if got, want := cf.NoLintComment(id.Pos()), want[id.Name]; got != want {
			t.Errorf("NoLintComment(%s) = %t, want %t", id.Name, got, want)
		}

		return true
	})
}

func TestNoLintDoc(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by test. DO NOT EDIT.

package test

// f is suppressed.
//
//nolint:shadowlight
func f() {}

//nolint:shadowlight
// g is not.
func g() {}

func h() {}
`

	fset, f := testsource.ParseFile(t, src)

	if !NewCurrentFile(fset, f).Generated() {
		t.Error("Expected generated file")
	}

	want := map[string]bool{"f": true, "g": false, "h": false}

	for _, decl := range f.Decls {
		fn := decl.(*ast.FuncDecl)
		if got, want := NoLintDoc(fn.Doc), want[fn.Name.Name]; got != want {
			t.Errorf("NoLintDoc(%s) = %t, want %t", fn.Name.Name, got, want)
		}
	}
}

func TestInvalidFile(t *testing.T) {
	t.Parallel()

	if NewCurrentFile(nil, nil).Valid() {
		t.Error("Expected invalid file")
	}
}
