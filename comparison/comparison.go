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
	"errors"
	"fmt"
	"strings"

	"vregress/comparison/saif"
	"vregress/comparison/vcd"
)

// Kind of comparison to perform. The set of formats is small and fixed so
// dispatch is over a closed enum rather than open-ended polymorphism
type Kind int

// Valid comparison kinds
const (
	KindUndefined Kind = iota

	// apply a regular expression to the artifact and compare a capture
	// group against an expected literal
	Grep

	// assert that a regular expression does not match anywhere in the
	// artifact
	GrepNot

	// line-by-line comparison against a golden text file
	TextEqual

	// semantic comparison of two waveform traces
	VCDEqual

	// semantic comparison of two switching-activity summaries
	SAIFEqual
)

func (k Kind) String() string {
	switch k {
	case Grep:
		return "grep"
	case GrepNot:
		return "grep-not"
	case TextEqual:
		return "text"
	case VCDEqual:
		return "vcd"
	case SAIFEqual:
		return "saif"
	}
	return "undefined"
}

// ParseKind converts a string to its Kind representation
func ParseKind(kind string) (Kind, error) {
	switch strings.ToLower(kind) {
	case "grep":
		return Grep, nil
	case "grep-not":
		return GrepNot, nil
	case "text":
		return TextEqual, nil
	case "vcd":
		return VCDEqual, nil
	case "saif":
		return SAIFEqual, nil
	}
	return KindUndefined, fmt.Errorf("invalid comparison kind (%s)", kind)
}

// Outcome of a single comparison
type Outcome int

// Valid outcomes. NoMatch and Mismatch are both failures; the distinction
// is preserved because "the pattern never matched" and "the pattern matched
// the wrong value" call for different corrective action. Error indicates an
// infrastructure failure (missing file, malformed golden reference) and is
// never conflated with a content failure
const (
	Pass Outcome = iota
	NoMatch
	Mismatch
	Error
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case NoMatch:
		return "no-match"
	case Mismatch:
		return "mismatch"
	case Error:
		return "error"
	}
	return "undefined"
}

// Result of a single comparison. Diagnostic is a single deterministic
// first-divergence explanation, never a full diff dump
type Result struct {
	Outcome    Outcome
	Diagnostic string
}

// Spec describes one comparison. File and Golden must be resolved paths;
// the caller is responsible for locating artifacts relative to the correct
// working directory
type Spec struct {
	Kind    Kind
	File    string
	Pattern string
	Group   int
	Expect  string
	Golden  string
}

// Compare performs the comparison described by the spec. The comparison is
// total: it always returns a Result, reporting infrastructure problems
// through the Error outcome
func Compare(spec Spec) Result {
	switch spec.Kind {
	case Grep:
		return grep(spec)
	case GrepNot:
		return grepNot(spec)
	case TextEqual:
		return textEqual(spec)
	case VCDEqual:
		return traceEqual(spec, func(a, b string) error {
			return vcd.CompareFiles(a, b)
		})
	case SAIFEqual:
		return traceEqual(spec, func(a, b string) error {
			return saif.CompareFiles(a, b)
		})
	}

	return Result{
		Outcome:    Error,
		Diagnostic: fmt.Sprintf("unrecognised comparison kind (%d)", spec.Kind),
	}
}

// the vcd and saif packages signal content divergence with a Divergence
// error and infrastructure problems with any other error. the mapping to a
// Result is the same for both
func traceEqual(spec Spec, compare func(a, b string) error) Result {
	err := compare(spec.File, spec.Golden)
	if err == nil {
		return Result{Outcome: Pass}
	}

	var div Divergence
	if errors.As(err, &div) {
		return Result{
			Outcome:    Mismatch,
			Diagnostic: div.Error(),
		}
	}

	return Result{
		Outcome:    Error,
		Diagnostic: err.Error(),
	}
}

// Divergence is the error type used by the trace comparison packages to
// report the first structural difference between two artifacts
type Divergence interface {
	error
	Divergence() string
}
