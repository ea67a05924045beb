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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/shadowlight/internal/config"
	"fillmore-labs.com/shadowlight/internal/report"
	"fillmore-labs.com/shadowlight/internal/shadow"
)

var (
	// ErrParse is wrapped by errors of files that are not valid Go source.
	ErrParse = errors.New("unable to parse")

	// ErrNotDirectory is returned when the root of a walk is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// Summary counts the files of a batch.
type Summary struct {
	// Files is the number of analyzed files.
	Files int

	// Shadowed is the number of analyzed files with at least one shadowing declaration.
	Shadowed int

	// Shadows is the total number of shadowing declarations.
	Shadows int

	// Skipped is the number of files that could not be read, parsed or analyzed.
	Skipped int
}

// LogValue implements [slog.LogValuer].
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("files", s.Files),
		slog.Int("shadowed", s.Shadowed),
		slog.Int("shadows", s.Shadows),
		slog.Int("skipped", s.Skipped),
	)
}

// Batch analyzes files and writes their reports.
type Batch struct {
	opts     Options
	renderer report.Renderer
	out      io.Writer
	logger   *slog.Logger

	analyze func(ctx context.Context, fset *token.FileSet, file *ast.File, opts shadow.Options) (*shadow.State, error)
}

// New creates a [Batch] writing reports rendered by renderer to out.
func New(renderer report.Renderer, out io.Writer, opts Options) *Batch {
	return &Batch{
		opts:     opts,
		renderer: renderer,
		out:      out,
		logger:   opts.logger(),
		analyze:  shadow.Analyze,
	}
}

// Files analyzes an explicit list of files. Every analyzed file is reported, with or without
// shadowing.
func (b *Batch) Files(ctx context.Context, paths []string) (Summary, error) {
	ctx, task := trace.NewTask(ctx, "Files")
	defer task.End()

	return b.run(ctx, paths, true)
}

// Walk analyzes all selected files below root. Only files with shadowing are reported.
//
// An unreadable root is an error, unreadable entries below it are skipped with a warning.
func (b *Batch) Walk(ctx context.Context, root string) (Summary, error) {
	ctx, task := trace.NewTask(ctx, "Walk")
	defer task.End()

	paths, err := b.collect(root)
	if err != nil {
		return Summary{}, err
	}

	return b.run(ctx, paths, false)
}

// collect lists the selected files below root in sorted order.
func (b *Batch) collect(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("walk root: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("walk root %q: %w", root, ErrNotDirectory)
	}

	var paths []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			b.logger.Warn("Unable to read directory entry", slog.String("path", path), slog.Any("error", err))

			return nil
		}

		if d.IsDir() {
			if path != root && slices.Contains(b.opts.Exclude, d.Name()) {
				return fs.SkipDir
			}

			return nil
		}

		if d.Type().IsRegular() && b.selected(d.Name()) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk root: %w", err)
	}

	slices.Sort(paths)

	return paths, nil
}

func (b *Batch) selected(name string) bool {
	if !slices.Contains(b.opts.Extensions, filepath.Ext(name)) {
		return false
	}

	return b.opts.Behavior.Enabled(config.IncludeTests) || !strings.HasSuffix(name, "_test.go")
}

type result struct {
	state     *shadow.State
	generated bool
	err       error
}

func (b *Batch) run(ctx context.Context, paths []string, explicit bool) (Summary, error) {
	results := make([]result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(b.opts.jobs(), len(paths))))

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = b.analyzeFile(gctx, path, explicit)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	var sum Summary

	for i, r := range results {
		switch {
		case r.err != nil:
			sum.Skipped++

			b.logger.Warn("Skipping file", slog.String("path", paths[i]), slog.Any("error", r.err))

		case r.generated:
			b.logger.Debug("Skipping generated file", slog.String("path", paths[i]))

		default:
			sum.Files++

			if r.state.HasShadow() {
				sum.Shadowed++
				sum.Shadows += r.state.ShadowCount()
			} else if !explicit {
				continue
			}

			if err := b.renderer.Render(b.out, r.state); err != nil {
				return sum, fmt.Errorf("writing report for %s: %w", paths[i], err)
			}
		}
	}

	return sum, nil
}

func (b *Batch) analyzeFile(ctx context.Context, path string, explicit bool) result {
	defer trace.StartRegion(ctx, "AnalyzeFile").End()

	src, err := os.ReadFile(path)
	if err != nil {
		return result{err: err}
	}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return result{err: fmt.Errorf("%w: %w", ErrParse, err)}
	}

	if !explicit && !b.opts.Behavior.Enabled(config.IncludeGenerated) && ast.IsGenerated(file) {
		return result{generated: true}
	}

	st, err := b.analyze(ctx, fset, file, b.opts.Engine)
	if err != nil {
		return result{err: err}
	}

	return result{state: st}
}
