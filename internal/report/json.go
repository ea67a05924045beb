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
	"encoding/json"
	"io"

	"fillmore-labs.com/shadowlight/internal/shadow"
)

// JSON renders one JSON object per file, containing only the scopes and identifiers with shadowing.
type JSON struct{}

type jsonFile struct {
	File      string         `json:"file"`
	Shadowed  bool           `json:"shadowed"`
	Functions []jsonFunction `json:"functions"`
}

type jsonFunction struct {
	Name     string        `json:"name"`
	Kind     string        `json:"kind"`
	Line     int           `json:"line"`
	Bindings []jsonBinding `json:"bindings"`
}

type jsonBinding struct {
	Name        string           `json:"name"`
	Count       int              `json:"count"`
	Occurrences []jsonOccurrence `json:"occurrences"`
}

type jsonOccurrence struct {
	Line     int  `json:"line"`
	Original bool `json:"original"`
}

// Render implements [Renderer].
func (JSON) Render(w io.Writer, st *shadow.State) error {
	out := jsonFile{
		File:      st.Filename,
		Shadowed:  st.HasShadow(),
		Functions: []jsonFunction{},
	}

	for sc := range st.Shadowed() {
		fn := jsonFunction{Name: sc.Name, Kind: sc.Kind.String(), Line: sc.Line}

		for name, h := range sc.Bindings.Shadowed() {
			b := jsonBinding{Name: name, Count: h.Len(), Occurrences: make([]jsonOccurrence, 0, h.Len())}
			for _, o := range h.Occurrences {
				b.Occurrences = append(b.Occurrences, jsonOccurrence{Line: o.Line, Original: o.Original})
			}

			fn.Bindings = append(fn.Bindings, b)
		}

		out.Functions = append(out.Functions, fn)
	}

	return json.NewEncoder(w).Encode(out)
}
