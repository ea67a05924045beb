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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/shadowlight/analyzer/level"
	"fillmore-labs.com/shadowlight/internal/report"
)

// FileName is the name of the project configuration file.
const FileName = ".shadowlight.toml"

// ErrUnknownKeys is returned when a configuration file contains keys that are not understood.
var ErrUnknownKeys = errors.New("unknown configuration keys")

// Default file selection of directory walks.
var (
	DefaultExtensions = []string{".go"}
	DefaultExclude    = []string{".git", "vendor", "testdata"}
)

// File is the content of a project configuration file.
//
//	[analysis]
//	scoping = "lexical"
//	literals = "scope"
//	generated = false
//	tests = true
//
//	[walk]
//	extensions = [".go"]
//	exclude = [".git", "vendor", "testdata"]
//
//	[output]
//	format = "pretty"
//	color = "auto"
//	jobs = 0
type File struct {
	Analysis Analysis `toml:"analysis"`
	Walk     Walk     `toml:"walk"`
	Output   Output   `toml:"output"`

	// Path is the location the file was loaded from.
	Path string `toml:"-"`

	meta toml.MetaData
}

// Analysis configures the engine.
type Analysis struct {
	Scoping   level.Scoping  `toml:"scoping"`
	Literals  level.Literals `toml:"literals"`
	Generated bool           `toml:"generated"`
	Tests     bool           `toml:"tests"`
}

// Walk configures the file selection of directory walks.
type Walk struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

// Output configures report rendering.
type Output struct {
	Format report.Format `toml:"format"`
	Color  string        `toml:"color"`
	Jobs   int           `toml:"jobs"`
}

// Find walks up from startDir to locate a project configuration file.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}

// Load parses the configuration file at path.
func Load(path string) (*File, error) {
	f := &File{Path: path}

	meta, err := toml.DecodeFile(path, f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}

	f.meta = meta

	return f, nil
}

// Defined reports whether the key was set in the file. A nil file defines nothing.
func (f *File) Defined(key ...string) bool {
	return f != nil && f.meta.IsDefined(key...)
}
