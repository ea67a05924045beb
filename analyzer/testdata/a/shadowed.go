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

package a

import (
	"errors"
	"fmt"
	"strconv"
)

func basic() {
	x := 1
	if x > 0 {
		x := 2 // want "Variable 'x' shadows declaration on line 26"
		fmt.Println(x)
	}

	fmt.Println(x)
}

func reuse() error {
	a, err := strconv.Atoi("1")
	b, err := strconv.Atoi("2")
	if err != nil {
		return err
	}

	if err := check(a + b); err != nil { // want "Variable 'err' shadows declaration on line 36"
		return err
	}

	return nil
}

func check(int) error { return errors.New("check") }

func params(n int) int {
	if n > 0 {
		n := n * 2
		return n
	}

	return n
}

func loops(values []int) int {
	sum := 0
	for i, v := range values {
		for i := range v { // want "Variable 'i' shadows declaration on line 62"
			sum += i
		}

		sum += i + v
	}

	return sum
}

func literals() int {
	y := 1
	f := func() int {
		y := 2
		return y
	}

	return f() + y
}

type counter struct{ n int }

func (c *counter) inc() {
	n := c.n
	{
		n := n + 1 // want "Variable 'n' shadows declaration on line 86"
		c.n = n
	}

	_ = n
}

func kinds(v any) string {
	s := "unknown"
	switch s := v.(type) { // want "Variable 's' shadows declaration on line 96"
	case string:
		return s
	}

	return s
}

func channels(ch <-chan int) int {
	v := 0
	select {
	case v := <-ch: // want "Variable 'v' shadows declaration on line 106"
		return v
	default:
	}

	return v
}

func vars() int {
	var w int = 1
	if w > 0 {
		var w = 3 // want "Variable 'w' shadows declaration on line 117"
		return w
	}

	return w
}

func triple() {
	e := 1
	{
		e := 2 // want "Variable 'e' shadows declaration on line 127"
		{
			e := 3 // want "Variable 'e' shadows declaration on line 127"
			_ = e
		}

		_ = e
	}

	_ = e
}

var global = func() int {
	g := 1
	{
		g := 2 // want "Variable 'g' shadows declaration on line 142"
		_ = g
	}

	return g
}
