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
	"strconv"
)

// FuncName returns the display name of a function or method declaration.
//
// Methods are qualified with their receiver base type, e.g. "T.String" for
// `func (t *T) String() string` and "List.Len" for `func (l List[E]) Len() int`.
func FuncName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return decl.Name.Name
	}

	if recv := receiverName(decl.Recv.List[0].Type); recv != "" {
		return recv + "." + decl.Name.Name
	}

	return decl.Name.Name
}

func receiverName(expr ast.Expr) string {
	switch e := ast.Unparen(expr).(type) {
	case *ast.StarExpr:
		return receiverName(e.X)

	case *ast.IndexExpr:
		return receiverName(e.X)

	case *ast.IndexListExpr:
		return receiverName(e.X)

	case *ast.Ident:
		return e.Name

	default:
		return ""
	}
}

// LiteralName returns the display name of the n-th function literal inside parent.
//
// Names follow the Go runtime convention: "f.func1" for literals in a declared function,
// "f.func1.2" for literals nested in other literals and "glob..func1" for package level literals.
func LiteralName(parent *Scope, n int) string {
	switch {
	case parent == nil:
		return "glob..func" + strconv.Itoa(n)

	case parent.Kind == Literal:
		return parent.Name + "." + strconv.Itoa(n)

	default:
		return parent.Name + ".func" + strconv.Itoa(n)
	}
}
