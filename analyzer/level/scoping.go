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

// Scoping specifies how declarations are attributed to function scopes.
type Scoping uint8

const (
	// ScopingLexical attributes a declaration to its lexically enclosing function.
	ScopingLexical Scoping = iota

	// ScopingLastOpened attributes a declaration to the most recently entered function,
	// even after traversal of that function has finished.
	ScopingLastOpened
)

// MarshalText implements [encoding.TextMarshaler].
func (o Scoping) MarshalText() ([]byte, error) {
	switch o {
	case ScopingLexical:
		return []byte("lexical"), nil

	case ScopingLastOpened:
		return []byte("last-opened"), nil

	default:
		return nil, fmt.Errorf("unknown scoping level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Scoping) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "lexical", "stack":
		*o = ScopingLexical

	case "last-opened", "last", "legacy":
		*o = ScopingLastOpened

	default:
		return fmt.Errorf("unknown scoping level %q", string(text))
	}

	return nil
}

// String returns the textual representation.
func (o Scoping) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Scoping(%d)", o)
	}

	return string(text)
}
