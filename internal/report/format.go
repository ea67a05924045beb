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

package report

import (
	"fmt"
	"io"
	"strings"

	"fillmore-labs.com/shadowlight/internal/shadow"
)

// Renderer writes the report of one analyzed file.
type Renderer interface {
	Render(w io.Writer, st *shadow.State) error
}

// Format selects a [Renderer].
type Format uint8

const (
	// FormatPretty is the human-readable, optionally colorized format.
	FormatPretty Format = iota

	// FormatJSON writes one JSON object per file.
	FormatJSON

	// FormatShort writes one line per shadowing declaration.
	FormatShort
)

// New creates a [Renderer] for the given format.
func New(format Format, colored bool) (Renderer, error) {
	switch format {
	case FormatPretty:
		return NewPretty(colored), nil

	case FormatJSON:
		return JSON{}, nil

	case FormatShort:
		return Short{}, nil

	default:
		return nil, fmt.Errorf("unknown report format %d", format)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FormatPretty:
		return []byte("pretty"), nil

	case FormatJSON:
		return []byte("json"), nil

	case FormatShort:
		return []byte("short"), nil

	default:
		return nil, fmt.Errorf("unknown report format %d", f)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "pretty", "text":
		*f = FormatPretty

	case "json":
		*f = FormatJSON

	case "short", "line":
		*f = FormatShort

	default:
		return fmt.Errorf("unknown report format %q (want pretty, json or short)", string(text))
	}

	return nil
}

// String implements [fmt.Stringer].
func (f Format) String() string {
	text, err := f.MarshalText()
	if err != nil {
		return fmt.Sprintf("Format(%d)", f)
	}

	return string(text)
}

// Set implements [github.com/spf13/pflag.Value].
func (f *Format) Set(s string) error { return f.UnmarshalText([]byte(s)) }

// Type implements [github.com/spf13/pflag.Value].
func (*Format) Type() string { return "format" }
