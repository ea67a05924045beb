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

package analyzer

import (
	"strconv"

	"fillmore-labs.com/shadowlight/internal/config"
)

// behaviorValue is a boolean [flag.Value] switching one behavior flag of the analyzer.
type behaviorValue struct {
	behavior *config.Behavior
	flag     config.Flags
}

// Set implements [flag.Value].
func (v behaviorValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.behavior.Set(v.flag, b)

	return nil
}

// String implements [flag.Value].
func (v behaviorValue) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v behaviorValue) Get() any {
	return v.enabled()
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (behaviorValue) IsBoolFlag() bool { return true }

// enabled is false for the zero value, which the flag package creates to detect defaults.
func (v behaviorValue) enabled() bool {
	return v.behavior != nil && v.behavior.Enabled(v.flag)
}

// parseBool returns the boolean value represented by the string, accepting on and off.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "ON":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off", "OFF":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
