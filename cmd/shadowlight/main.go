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

// Command shadowlight reports variables that shadow an earlier declaration in the same function.
//
// Usage:
//
//	shadowlight [flags] [directory]
//	shadowlight -F file.go [-F other.go ...]
//
// Without files, the directory (default ".") is walked recursively and only files with shadowed
// variables are reported. Explicitly named files are always reported.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	var status exitStatus
	switch {
	case err == nil:

	case errors.As(err, &status):
		os.Exit(int(status))

	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// exitStatus ends the program with a non-zero status without an error message.
type exitStatus int

// shadowsFound is the exit status for runs with shadowed variables when requested.
const shadowsFound exitStatus = 3

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
