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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/shadowlight/analyzer/level"
	"fillmore-labs.com/shadowlight/internal/config"
	"fillmore-labs.com/shadowlight/internal/run"
)

// Option configures specific behavior of a [New] shadowlight analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithScoping is an [Option] to configure how declarations are attributed to functions.
func WithScoping(scoping level.Scoping) Option { return scopingOption{scoping: scoping} }

type scopingOption struct{ scoping level.Scoping }

func (o scopingOption) apply(r *run.Options) {
	r.Engine.Scoping = o.scoping
}

func (o scopingOption) LogAttr() slog.Attr {
	return slog.String("scoping", o.scoping.String())
}

// WithLiterals is an [Option] to configure whether function literals have their own scope.
func WithLiterals(literals level.Literals) Option { return literalsOption{literals: literals} }

type literalsOption struct{ literals level.Literals }

func (o literalsOption) apply(r *run.Options) {
	r.Engine.Literals = o.literals
}

func (o literalsOption) LogAttr() slog.Attr {
	return slog.String("literals", o.literals.String())
}

// WithRename is an [Option] to configure renaming shadowing variables.
func WithRename(rename bool) Option { return renameOption{rename: rename} }

type renameOption struct{ rename bool }

func (o renameOption) apply(r *run.Options) {
	r.Behavior.Set(config.RenameVariables, o.rename)
}

func (o renameOption) LogAttr() slog.Attr {
	return slog.Bool("rename", o.rename)
}
