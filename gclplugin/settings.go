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

package gclplugin

import (
	shadowlight "fillmore-labs.com/shadowlight/analyzer"
	"fillmore-labs.com/shadowlight/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Scoping selects how declarations are attributed to functions.
	Scoping *level.Scoping `json:"scoping,omitzero"`
	// Literals selects whether function literals have their own scope.
	Literals *level.Literals `json:"literals,omitzero"`
	// Rename enables renaming of shadowing variables.
	Rename *bool `json:"rename,omitzero"`
}

// Options converts [Settings] into a list of [shadowlight.Option] for the shadowlight analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []shadowlight.Option {
	var opts []shadowlight.Option

	opts = appendOption(opts, s.Scoping, shadowlight.WithScoping)
	opts = appendOption(opts, s.Literals, shadowlight.WithLiterals)
	opts = appendOption(opts, s.Rename, shadowlight.WithRename)

	return opts
}

// appendOption appends a non-nil setting to a [shadowlight.Option] list.
func appendOption[T any](opts []shadowlight.Option, value *T, constructor func(T) shadowlight.Option) []shadowlight.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
