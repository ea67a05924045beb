// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package config

// Flags represent single behavioral options.
type Flags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Flags = 1 << iota

	// IncludeTests specifies whether directory walks include _test.go files.
	IncludeTests

	// RenameVariables indicates that shadowing variables should be renamed.
	RenameVariables
)

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[Flags]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(IncludeTests)
}
