// This file is part of Vregress.
//
// Vregress is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Vregress is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Vregress.  If not, see <https://www.gnu.org/licenses/>.

package comparison

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// grep applies the pattern line by line and compares the requested capture
// group of the first matching line against the expected literal. applying
// the pattern to an unmodified artifact always yields the same result -
// there is no state between calls
func grep(spec Spec) Result {
	re, err := regexp.Compile(spec.Pattern)
	if err != nil {
		return Result{
			Outcome:    Error,
			Diagnostic: fmt.Sprintf("bad pattern: %v", err),
		}
	}

	data, err := os.ReadFile(spec.File)
	if err != nil {
		return Result{
			Outcome:    Error,
			Diagnostic: err.Error(),
		}
	}

	group := spec.Group
	if group == 0 {
		group = 1
	}

	for i, line := range splitLines(data) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if group >= len(m) {
			return Result{
				Outcome:    Error,
				Diagnostic: fmt.Sprintf("%s: pattern has no capture group %d", filepath.Base(spec.File), group),
			}
		}

		if m[group] == spec.Expect {
			return Result{Outcome: Pass}
		}

		return Result{
			Outcome: Mismatch,
			Diagnostic: fmt.Sprintf("%s: line %d: captured %q, expected %q",
				filepath.Base(spec.File), i+1, m[group], spec.Expect),
		}
	}

	return Result{
		Outcome:    NoMatch,
		Diagnostic: fmt.Sprintf("%s: pattern %q not found", filepath.Base(spec.File), spec.Pattern),
	}
}

// grepNot asserts that the pattern matches nowhere in the artifact
func grepNot(spec Spec) Result {
	re, err := regexp.Compile(spec.Pattern)
	if err != nil {
		return Result{
			Outcome:    Error,
			Diagnostic: fmt.Sprintf("bad pattern: %v", err),
		}
	}

	data, err := os.ReadFile(spec.File)
	if err != nil {
		return Result{
			Outcome:    Error,
			Diagnostic: err.Error(),
		}
	}

	for i, line := range splitLines(data) {
		if re.MatchString(line) {
			return Result{
				Outcome: Mismatch,
				Diagnostic: fmt.Sprintf("%s: line %d: pattern %q matches: %s",
					filepath.Base(spec.File), i+1, spec.Pattern, strings.TrimSpace(line)),
			}
		}
	}

	return Result{Outcome: Pass}
}

func splitLines(data []byte) []string {
	s := strings.TrimRight(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
