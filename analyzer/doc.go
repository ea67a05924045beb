// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the shadowlight static analysis pass.
//
// # Overview
//
// ShadowLight reports local variables that shadow an earlier declaration of the same name
// within the same function, method or function literal.
//
// # Example
//
//	func process(data []byte) error {
//	    n, err := parse(data)
//	    if n > 0 {
//	        err := validate(data) // Variable 'err' shadows declaration on line 2 (sl:shd)
//	        log.Print(err)
//	    }
//	    return err
//	}
//
// A declaration is any variable introduced by a short variable declaration, a var statement
// or a range clause. Parameters and results are not reported, and names re-used by a short
// variable declaration in the same block are assignments.
//
// # Flags
//
//   - -scoping: lexical (default) attributes a declaration to its enclosing function,
//     last-opened to the most recently entered function.
//   - -literals: scope (default) gives function literals their own namespace, inline shares
//     the enclosing function's namespace.
//   - -generated: also check generated files.
//   - -rename: suggest renaming shadowing variables.
package analyzer
