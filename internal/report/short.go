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

// Short renders one line per shadowing declaration:
//
//	main.go:14: 'err' shadows declaration on line 12 in run
type Short struct{}

// Render implements [Renderer].
func (Short) Render(w io.Writer, st *shadow.State) error {
	var b strings.Builder

	for sc := range st.Shadowed() {
		for name, h := range sc.Bindings.Shadowed() {
			original := h.Original()

			for o := range h.Shadows() {
				fmt.Fprintf(&b, "%s:%d: '%s' shadows declaration on line %d in %s\n", st.Filename, o.Line, name, original.Line, sc.Name)
			}
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}
