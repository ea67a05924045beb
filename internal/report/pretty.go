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

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fillmore-labs.com/shadowlight/internal/binding"
	"fillmore-labs.com/shadowlight/internal/shadow"
)

// identWidth is the display width of the function and identifier columns.
const identWidth = 15

// Pretty renders a colorized, human-readable report:
//
//	main.go contains shadowed variable(s):
//
//	  line:  12 run
//	    err                 3 @ [14, 17, 23]
//
// Original declaration lines are cyan, shadowing ones yellow.
type Pretty struct {
	line, name, ident, count, at, original, shadow *color.Color
}

// NewPretty creates a [Pretty] renderer. Colors are only emitted when colored is true.
func NewPretty(colored bool) *Pretty {
	p := &Pretty{
		line:     color.New(color.FgHiMagenta),
		name:     color.New(color.FgHiGreen),
		ident:    color.New(color.FgHiWhite, color.Bold),
		count:    color.New(color.FgHiCyan, color.Bold),
		at:       color.New(color.Faint),
		original: color.New(color.FgCyan),
		shadow:   color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{p.line, p.name, p.ident, p.count, p.at, p.original, p.shadow} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Render implements [Renderer].
func (p *Pretty) Render(w io.Writer, st *shadow.State) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s contains shadowed variable(s):\n\n", st.Filename)

	for sc := range st.Shadowed() {
		name := runewidth.FillRight(sc.Name, identWidth)
		fmt.Fprintf(&b, "  %s %s %s\n", p.line.Sprint("line:"), p.line.Sprintf("%3d", sc.Line), p.name.Sprint(name))

		for name, h := range sc.Bindings.Shadowed() {
			// pad before coloring, escape sequences have no width
			cell := runewidth.FillRight(runewidth.Truncate(name, identWidth, ""), identWidth)

			fmt.Fprintf(&b, "    %s %s %s %s\n", p.ident.Sprint(cell), p.count.Sprintf("%5d", h.Len()), p.at.Sprint("@"), p.lines(h))
		}

		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func (p *Pretty) lines(h *binding.History) string {
	var b strings.Builder

	b.WriteByte('[')

	for i, o := range h.Occurrences {
		if i > 0 {
			b.WriteString(", ")
		}

		c := p.shadow
		if o.Original {
			c = p.original
		}

		b.WriteString(c.Sprint(o.Line))
	}

	b.WriteByte(']')

	return b.String()
}
