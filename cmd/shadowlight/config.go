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

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/shadowlight/internal/config"
)

// loadConfig applies the project configuration file. Flags set on the command line take precedence.
func (o *options) loadConfig(cmd *cobra.Command, logger *slog.Logger) error {
	path := o.config
	if path == "" {
		found, ok, err := config.Find(o.startDir())
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		path = found
	}

	f, err := config.Load(path)
	if err != nil {
		return err
	}

	logger.Debug("Using configuration file", slog.String("path", f.Path))

	flags := cmd.Flags()

	apply := func(flag string, key []string, set func()) {
		if f.Defined(key...) && !flags.Changed(flag) {
			set()
		}
	}

	apply("scoping", []string{"analysis", "scoping"}, func() { o.scoping = f.Analysis.Scoping })
	apply("literals", []string{"analysis", "literals"}, func() { o.literals = f.Analysis.Literals })
	apply("generated", []string{"analysis", "generated"}, func() { o.generated = f.Analysis.Generated })
	apply("tests", []string{"analysis", "tests"}, func() { o.tests = f.Analysis.Tests })
	apply("format", []string{"output", "format"}, func() { o.format = f.Output.Format })
	apply("color", []string{"output", "color"}, func() { o.color = f.Output.Color })
	apply("jobs", []string{"output", "jobs"}, func() { o.jobs = f.Output.Jobs })

	if f.Defined("walk", "extensions") {
		o.extensions = f.Walk.Extensions
	}

	if f.Defined("walk", "exclude") {
		o.exclude = f.Walk.Exclude
	}

	return nil
}
