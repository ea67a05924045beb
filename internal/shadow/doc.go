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

// Package shadow implements the shadow detection engine.
//
// A [Visitor] walks the syntax tree of one file in depth-first pre-order. Every function
// declaration, method declaration and (optionally) function literal opens a scope, which is
// treated as one flat binding namespace. Every local variable declaration inside is recorded
// in its scope in source order: the first declaration of a name is the original, every later
// declaration of the same name in the same scope shadows it.
//
// A := identifier only declares a variable when it is new in its lexical block, so the
// visitor tracks Go's lexical blocks to tell declarations from assignments:
//
//	a, err := f()
//	b, err := g() // assigns err, declares b
//	if c {
//		err := h() // declares err, shadowing the first one
//	}
//
// Function parameters are not recorded, but they occupy the function block.
package shadow
