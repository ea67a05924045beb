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
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/shadowlight/internal/astutil"
	"fillmore-labs.com/shadowlight/internal/scope"
	"fillmore-labs.com/shadowlight/internal/shadow"
)

// ProcessDiagnostics emits a diagnostic for every shadowing declaration of a file.
//
// Each diagnostic points at the shadowing identifier and relates to the original declaration
// in the same scope. Declarations followed by a //nolint:shadowlight comment and functions
// documented with one are skipped. With rename, shadowing variables get a suggested fix
// renaming them to a unique name.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, st *shadow.State, rename bool) {
	if !st.HasShadow() {
		return
	}

	defer trace.StartRegion(ctx, "ReportShadows").End()

	var renamer *Renamer
	if rename && !currentFile.Generated() {
		renamer = NewRenamer()
	}

	for sc := range st.Shadowed() {
		if noLintScope(sc) {
			continue
		}

		for name, h := range sc.Bindings.Shadowed() {
			original := h.Original()

			for o := range h.Shadows() {
				if currentFile.NoLintComment(o.Pos) {
					continue
				}

				p.Report(analysis.Diagnostic{
					Pos:     o.Pos,
					End:     identEnd(o.Pos, name),
					Message: fmt.Sprintf("Variable '%s' shadows declaration on line %d (sl:shd)", name, original.Line),
					Related: []analysis.RelatedInformation{{
						Pos:     original.Pos,
						End:     identEnd(original.Pos, name),
						Message: "Original declaration",
					}},
					SuggestedFixes: renamer.Renames(p.TypesInfo, sc.Node, o.Pos),
				})
			}
		}
	}
}

func identEnd(pos token.Pos, name string) token.Pos {
	return pos + token.Pos(len(name))
}

// noLintScope checks if a function declaration is documented with a //nolint:shadowlight directive.
func noLintScope(sc *scope.Scope) bool {
	decl, ok := sc.Node.(*ast.FuncDecl)

	return ok && astutil.NoLintDoc(decl.Doc)
}
