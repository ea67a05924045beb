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
	"log/slog"

	"fillmore-labs.com/shadowlight/analyzer/level"
)

// Options configure the engine.
type Options struct {
	// Scoping selects how declarations are attributed to scopes.
	Scoping level.Scoping

	// Literals selects whether function literals open their own scope.
	Literals level.Literals
}

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("scoping", o.Scoping.String()),
		slog.String("literals", o.Literals.String()),
	)
}
