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
	"go/ast"

	"fillmore-labs.com/shadowlight/internal/scope"
)

// names is the set of identifiers declared in one lexical block.
type names map[string]struct{}

// frame is the lexical context of one function body.
type frame struct {
	// scope is the scope opened by this function, nil for inlined literals and the package level.
	scope *scope.Scope

	// body is the function body, which shares the function block with the parameters.
	body *ast.BlockStmt

	// blocks is the stack of open lexical blocks; the first one is the function block.
	blocks []names

	// literals counts function literals named after scope.
	literals int
}

func newFrame(s *scope.Scope, body *ast.BlockStmt, fields ...*ast.FieldList) *frame {
	block := make(names)

	for _, list := range fields {
		if list == nil {
			continue
		}

		for _, field := range list.List {
			for _, id := range field.Names {
				block[id.Name] = struct{}{}
			}
		}
	}

	return &frame{scope: s, body: body, blocks: []names{block}}
}

func (f *frame) pushBlock() { f.blocks = append(f.blocks, make(names)) }

func (f *frame) popBlock() { f.blocks = f.blocks[:len(f.blocks)-1] }

// declare marks name as declared in the innermost block and reports whether it was new there.
func (f *frame) declare(name string) bool {
	block := f.blocks[len(f.blocks)-1]
	if _, ok := block[name]; ok {
		return false
	}

	block[name] = struct{}{}

	return true
}
