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

package regression

import (
	"fmt"
	"time"
)

// OutcomeKind is the rolled-up verdict for one test
type OutcomeKind int

// Valid outcome kinds. Errored indicates an infrastructure failure and is
// never conflated with Failed in aggregate statistics
const (
	Passed OutcomeKind = iota
	Failed
	Skipped
	Errored
)

func (k OutcomeKind) String() string {
	switch k {
	case Passed:
		return "pass"
	case Failed:
		return "fail"
	case Skipped:
		return "skip"
	case Errored:
		return "error"
	}
	return "undefined"
}

// Classification of why a test ended the way it did, following the failure
// taxonomy of the harness
type Classification int

// Valid classifications. ExpectedFailure accompanies a Passed outcome - a
// stage failed exactly as the test declared it would
const (
	ClassNone Classification = iota
	ClassSkip
	ClassExpectedFailure
	ClassStageFailure
	ClassAssertionMismatch
	ClassInfrastructure
)

func (c Classification) String() string {
	switch c {
	case ClassSkip:
		return "not applicable"
	case ClassExpectedFailure:
		return "expected failure"
	case ClassStageFailure:
		return "unexpected stage failure"
	case ClassAssertionMismatch:
		return "assertion mismatch"
	case ClassInfrastructure:
		return "infrastructure error"
	}
	return ""
}

// Outcome records the verdict for one test. It is a pure function of the
// test's scenario run results - nothing about it depends on the order tests
// were executed in or on state left by another test
type Outcome struct {
	Name       string
	Kind       OutcomeKind
	Class      Classification
	Diagnostic string

	// wall-clock time spent on this test
	Duration time.Duration

	// number of scenario runs the test resolved to
	Runs int

	// the outcome came from the rerun phase
	Rerun bool
}

func (o Outcome) String() string {
	s := fmt.Sprintf("%s: %s", o.Kind, o.Name)
	if o.Rerun {
		s = fmt.Sprintf("%s (rerun)", s)
	}
	if o.Kind != Passed && o.Kind != Skipped && o.Diagnostic != "" {
		s = fmt.Sprintf("%s\n\t%s: %s", s, o.Class, o.Diagnostic)
	}
	return s
}
