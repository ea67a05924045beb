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

package driver

import (
	"log/slog"
	"runtime"

	"fillmore-labs.com/shadowlight/internal/config"
	"fillmore-labs.com/shadowlight/internal/shadow"
)

// Options configure a [Batch].
type Options struct {
	// Engine holds the analysis options applied to every file.
	Engine shadow.Options

	// Extensions selects the files of a directory walk by extension.
	Extensions []string

	// Exclude names directories skipped during a walk.
	Exclude []string

	// Behavior selects test and generated files.
	Behavior config.Behavior

	// Jobs is the maximum number of files analyzed in parallel. Zero or less means GOMAXPROCS.
	Jobs int

	// Logger receives warnings about skipped files. Nil means [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions returns the options of a plain walk.
func DefaultOptions() Options {
	return Options{
		Extensions: config.DefaultExtensions,
		Exclude:    config.DefaultExclude,
		Behavior:   config.DefaultBehavior(),
	}
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}

	return runtime.GOMAXPROCS(0)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("engine", o.Engine),
		slog.Any("extensions", o.Extensions),
		slog.Any("exclude", o.Exclude),
		slog.Bool("generated", o.Behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("tests", o.Behavior.Enabled(config.IncludeTests)),
		slog.Int("jobs", o.jobs()),
	)
}
