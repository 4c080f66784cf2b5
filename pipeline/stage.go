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

package pipeline

import "time"

// Stage is one phase of a test's pipeline
type Stage int

// Valid stages. the compile stage covers the native build of the generated
// code - the toolchain is invoked with its build flags so a separate build
// phase is unnecessary
const (
	Lint Stage = iota
	Compile
	Execute
)

func (st Stage) String() string {
	switch st {
	case Lint:
		return "lint"
	case Compile:
		return "compile"
	case Execute:
		return "execute"
	}
	return "undefined"
}

// StageSpec fully describes one stage of a pipeline, including whether the
// stage is expected to fail. Expectation is a first-class field consumed by
// the pipeline state machine rather than a side-channel flag
type StageSpec struct {
	Stage Stage

	// the binary to run. empty means the configured toolchain binary. the
	// execute stage names the program produced by the compile stage
	Path string

	Args []string

	// a non-zero exit status from this stage is the success condition. a
	// zero exit status is itself a failure ("expected failure did not
	// occur")
	ExpectFail bool

	// zero means the invoker's default
	Timeout time.Duration
}

// State records the progress of a pipeline through its stages
type State int

// Valid states. Pending is the initial state. Done and Aborted are
// terminal. Aborted is reached whenever a stage fails unexpectedly
const (
	Pending State = iota
	Linting
	Compiling
	Executing
	Done
	Aborted
)

func (st State) String() string {
	switch st {
	case Pending:
		return "pending"
	case Linting:
		return "linting"
	case Compiling:
		return "compiling"
	case Executing:
		return "executing"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	}
	return "undefined"
}

func (st Stage) runningState() State {
	switch st {
	case Lint:
		return Linting
	case Compile:
		return Compiling
	case Execute:
		return Executing
	}
	return Pending
}
