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

package astutil_test

import (
	"fmt"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/shadowlight/internal/astutil"
	"fillmore-labs.com/shadowlight/internal/scope"
	"fillmore-labs.com/shadowlight/internal/testsource"
)

func TestInternalError(t *testing.T) {
	t.Parallel()

	_, f := testsource.ParseFile(t, "package test\n")

	var got []analysis.Diagnostic

	p := &analysis.Pass{Report: func(d analysis.Diagnostic) { got = append(got, d) }}

	InternalError(p, f, "%v", fmt.Errorf("test.go:1:1: declaration of %q: %w", "x", scope.ErrOutsideScope))

	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(got))
	}

	const want = `Internal Error (shadowlight): test.go:1:1: declaration of "x": binding outside any scope`
	if got[0].Message != want {
		t.Errorf("Got message %q, want %q", got[0].Message, want)
	}

	if got[0].Pos != f.Pos() || got[0].End != f.End() {
		t.Errorf("Got range %d-%d, want %d-%d", got[0].Pos, got[0].End, f.Pos(), f.End())
	}
}
