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

// Kind is the syntactic origin of a [Scope].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Function is a function declaration without receiver.
	Function Kind = iota // function

	// Method is a function declaration with receiver.
	Method // method

	// Literal is a function literal.
	Literal // func literal
)
