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

package level

import (
	"fmt"
	"strings"
)

// Literals specifies how function literals are treated.
type Literals uint8

const (
	// LiteralsScope gives every function literal its own scope.
	LiteralsScope Literals = iota

	// LiteralsInline attributes declarations in function literals to the enclosing function.
	LiteralsInline
)

// MarshalText implements [encoding.TextMarshaler].
func (o Literals) MarshalText() ([]byte, error) {
	switch o {
	case LiteralsScope:
		return []byte("scope"), nil

	case LiteralsInline:
		return []byte("inline"), nil

	default:
		return nil, fmt.Errorf("unknown literals level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Literals) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "scope", "own":
		*o = LiteralsScope

	case "inline", "enclosing":
		*o = LiteralsInline

	default:
		return fmt.Errorf("unknown literals level %q", string(text))
	}

	return nil
}

// String returns the textual representation.
func (o Literals) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Literals(%d)", o)
	}

	return string(text)
}
