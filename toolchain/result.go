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

package toolchain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Result records everything captured from one subprocess invocation. Once
// created it is never mutated
type Result struct {
	Label    string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	TimedOut bool

	// the working directory of the invocation. artifacts produced by the
	// subprocess are found in here
	WorkDir string

	// path to the combined stdout/stderr log file. empty if no working
	// directory was specified for the invocation
	LogFile string
}

func (res Result) String() string {
	if res.TimedOut {
		return fmt.Sprintf("%s: timed out after %v", res.Label, res.Duration)
	}
	return fmt.Sprintf("%s: exit=%d (%v)", res.Label, res.ExitCode, res.Duration)
}

// Artifact returns the path of a named artifact file in the invocation's
// working directory. Absolute paths are returned unchanged
func (res Result) Artifact(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(res.WorkDir, name)
}

// OutputTail returns the last n lines of the captured output. Useful for
// diagnostics without dumping an entire compiler log
func (res Result) OutputTail(n int) string {
	out := res.Stdout
	if strings.TrimSpace(out) == "" {
		out = res.Stderr
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
