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

// a line in the golden file beginning with this prefix is treated as a
// regular expression rather than a literal. used for lines containing
// run-specific content (elapsed times, version strings)
const regexpLeader = "~"

// textEqual compares the artifact line by line against the golden
// reference. the first differing line is reported and comparison stops
// there, keeping the diagnostic deterministic and reviewable
func textEqual(spec Spec) Result {
	data, err := os.ReadFile(spec.File)
	if err != nil {
		return Result{
			Outcome:    Error,
			Diagnostic: err.Error(),
		}
	}

	golden, err := os.ReadFile(spec.Golden)
	if err != nil {
		return Result{
			Outcome:    Error,
			Diagnostic: fmt.Sprintf("golden reference: %v", err),
		}
	}

	lines := splitLines(data)
	goldenLines := splitLines(golden)

	for i := 0; i < len(lines) && i < len(goldenLines); i++ {
		g := goldenLines[i]

		if strings.HasPrefix(g, regexpLeader) {
			re, err := regexp.Compile(strings.TrimPrefix(g, regexpLeader))
			if err != nil {
				return Result{
					Outcome:    Error,
					Diagnostic: fmt.Sprintf("golden reference: line %d: bad pattern: %v", i+1, err),
				}
			}
			if !re.MatchString(lines[i]) {
				return Result{
					Outcome: Mismatch,
					Diagnostic: fmt.Sprintf("%s: line %d: %q does not match golden pattern %q",
						filepath.Base(spec.File), i+1, lines[i], g),
				}
			}
			continue
		}

		if lines[i] != g {
			return Result{
				Outcome: Mismatch,
				Diagnostic: fmt.Sprintf("%s: line %d: %q, golden %q",
					filepath.Base(spec.File), i+1, lines[i], g),
			}
		}
	}

	if len(lines) > len(goldenLines) {
		return Result{
			Outcome: Mismatch,
			Diagnostic: fmt.Sprintf("%s: line %d: extra line %q (golden has %d lines)",
				filepath.Base(spec.File), len(goldenLines)+1, lines[len(goldenLines)], len(goldenLines)),
		}
	}
	if len(lines) < len(goldenLines) {
		return Result{
			Outcome: Mismatch,
			Diagnostic: fmt.Sprintf("%s: line %d: missing line, golden %q",
				filepath.Base(spec.File), len(lines)+1, goldenLines[len(lines)]),
		}
	}

	return Result{Outcome: Pass}
}
