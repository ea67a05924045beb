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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"fillmore-labs.com/shadowlight/analyzer/level"
	"fillmore-labs.com/shadowlight/internal/config"
	"fillmore-labs.com/shadowlight/internal/driver"
	"fillmore-labs.com/shadowlight/internal/report"
	"fillmore-labs.com/shadowlight/internal/shadow"
)

// ErrInvalidColor is returned for unknown --color values.
var ErrInvalidColor = errors.New("invalid color mode")

// ErrConflictingInput is returned when both files and a directory are given.
var ErrConflictingInput = errors.New("files and directory are mutually exclusive")

type options struct {
	files         []string
	directory     string
	format        report.Format
	color         string
	jobs          int
	config        string
	scoping       level.Scoping
	literals      level.Literals
	generated     bool
	tests         bool
	setExitStatus bool
	verbose       bool

	extensions []string
	exclude    []string
}

func newRootCmd() *cobra.Command {
	o := &options{
		directory:  ".",
		color:      "auto",
		tests:      true,
		extensions: config.DefaultExtensions,
		exclude:    config.DefaultExclude,
	}

	cmd := &cobra.Command{
		Use:   "shadowlight [flags] [directory]",
		Short: "Report variables shadowing an earlier declaration in the same function",
		Long: `shadowlight lists, per function, every local variable that is declared more than once,
together with the lines of all its declarations.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&o.files, "files", "F", nil, "file to analyze, can be repeated")
	flags.StringVarP(&o.directory, "directory", "d", o.directory, "directory to walk")
	flags.Var(&o.format, "format", "output format (pretty|json|short)")
	flags.StringVar(&o.color, "color", o.color, "colorize output (auto|on|off)")
	flags.IntVarP(&o.jobs, "jobs", "j", 0, "max parallel workers (0=auto)")
	flags.StringVar(&o.config, "config", "", "configuration file (default: nearest "+config.FileName+")")
	flags.TextVar(&o.scoping, "scoping", o.scoping, "attribution of declarations (lexical|last-opened)")
	flags.TextVar(&o.literals, "literals", o.literals, "function literal bindings (scope|inline)")
	flags.BoolVar(&o.generated, "generated", false, "include generated files in directory walks")
	flags.BoolVar(&o.tests, "tests", o.tests, "include _test.go files in directory walks")
	flags.BoolVar(&o.setExitStatus, "set-exit-status", false, "exit with status 3 when shadowed variables are found")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information")

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if cmd.Flags().Changed("directory") {
			return fmt.Errorf("positional directory %q: %w", args[0], ErrConflictingInput)
		}

		o.directory = args[0]
	}

	if len(o.files) > 0 && (cmd.Flags().Changed("directory") || len(args) > 0) {
		return ErrConflictingInput
	}

	logLevel := slog.LevelWarn
	if o.verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	if err := o.loadConfig(cmd, logger); err != nil {
		return err
	}

	colored, err := useColor(o.color, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	renderer, err := report.New(o.format, colored)
	if err != nil {
		return err
	}

	opts := o.driverOptions(logger)
	logger.Debug("Starting analysis", slog.Any("options", opts), slog.String("format", o.format.String()))

	batch := driver.New(renderer, cmd.OutOrStdout(), opts)

	var sum driver.Summary
	if len(o.files) > 0 {
		sum, err = batch.Files(cmd.Context(), o.files)
	} else {
		sum, err = batch.Walk(cmd.Context(), o.directory)
	}

	if err != nil {
		return err
	}

	logger.Debug("Analysis finished", slog.Any("summary", sum))

	if o.setExitStatus && sum.Shadowed > 0 {
		return shadowsFound
	}

	return nil
}

func (o *options) driverOptions(logger *slog.Logger) driver.Options {
	behavior := config.NewBitMask[config.Flags]()
	behavior.Set(config.IncludeGenerated, o.generated)
	behavior.Set(config.IncludeTests, o.tests)

	return driver.Options{
		Engine:     shadow.Options{Scoping: o.scoping, Literals: o.literals},
		Extensions: o.extensions,
		Exclude:    o.exclude,
		Behavior:   behavior,
		Jobs:       o.jobs,
		Logger:     logger,
	}
}

// startDir is where the search for a configuration file begins.
func (o *options) startDir() string {
	if len(o.files) > 0 {
		return filepath.Dir(o.files[0])
	}

	return o.directory
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "on", "always":
		return true, nil

	case "off", "never":
		return false, nil

	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}

		f, ok := w.(*os.File)

		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil

	default:
		return false, fmt.Errorf("%w %q (want auto, on or off)", ErrInvalidColor, mode)
	}
}
