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
	"slices"
	"testing"

	. "fillmore-labs.com/shadowlight/internal/astutil"
	"fillmore-labs.com/shadowlight/internal/testsource"
)

func TestDeclaredIdents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"Define", `a := 1`, []string{"a"}},
		{"DefineMultiple", `a, b, c := 1, 2, 3`, []string{"a", "b", "c"}},
		{"DefineBlank", `_, b := 1, 2`, []string{"b"}},
		{"Assign", `var a int; a = 1`, []string{"a"}},
		{"Var", `var a, b int`, []string{"a", "b"}},
		{"VarGroup", "var (\n\ta = 1\n\tb, _ = 2, 3\n)", []string{"a", "b"}},
		{"Const", `const a = 1`, nil},
		{"Type", `type a int`, nil},
		{"Range", `for k, v := range "" { _, _ = k, v }`, []string{"k", "v"}},
		{"RangeKey", `for k := range 3 { _ = k }`, []string{"k"}},
		{"RangeAssign", `var k int; for k = range 3 {}`, []string{"k"}},
		{"TypeSwitch", `var x any; switch y := x.(type) { default: _ = y }`, []string{"x", "y"}},
		{"Select", `var ch chan int; select { case v, ok := <-ch: _, _ = v, ok }`, []string{"ch", "v", "ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, _, body := testsource.Parse(t, tt.src)

			var got []string

			ast.Inspect(body, func(n ast.Node) bool {
				for id := range DeclaredIdents(n) {
					got = append(got, id.Name)
				}

				return true
			})

			if !slices.Equal(got, tt.want) {
				t.Errorf("DeclaredIdents() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeclaredIdentsStop(t *testing.T) {
	t.Parallel()

	_, _, _, body := testsource.Parse(t, `a, b, c := 1, 2, 3`)

	stmt, ok := body.List[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("Expected assign statement, got %T", body.List[0])
	}

	var got []string

	for id := range DeclaredIdents(stmt) {
		got = append(got, id.Name)
		if len(got) == 2 {
			break
		}
	}

	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("DeclaredIdents() = %v, want %v", got, want)
	}
}
