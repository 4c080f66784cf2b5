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

import (
	"context"
	"errors"
	"fmt"

	"vregress/toolchain"
)

// ErrStageFailure indicates that a stage failed when success was expected,
// or succeeded when failure was expected. It is distinct from the
// infrastructure errors originating in the toolchain package
var ErrStageFailure = errors.New("stage failure")

// Invoker is the interface required of the subprocess runner. The toolchain
// package provides the production implementation
type Invoker interface {
	Run(ctx context.Context, cmd toolchain.Command) (*toolchain.Result, error)
}

// Pipeline sequences the stages of one scenario run. Stages run in order
// and a later stage runs only if the prior stage succeeded. A stage
// declared expected-to-fail that does fail terminates the pipeline in the
// Done state by design - it is not an error but no further stage executes
type Pipeline struct {
	inv     Invoker
	workDir string

	state   State
	results []*toolchain.Result

	// whether the pipeline reached Done through a declared stage failure
	expectedFailure bool
}

// New is the preferred method of initialisation for the Pipeline type. The
// working directory must be exclusive to this pipeline
func New(inv Invoker, workDir string) *Pipeline {
	return &Pipeline{
		inv:     inv,
		workDir: workDir,
		state:   Pending,
	}
}

// State the pipeline is currently in. Done and Aborted are terminal
func (pl *Pipeline) State() State {
	return pl.state
}

// Results of every stage that has been run, in stage order
func (pl *Pipeline) Results() []*toolchain.Result {
	return pl.results
}

// ExpectedFailure returns true if the pipeline reached the Done state
// through a stage failing as declared
func (pl *Pipeline) ExpectedFailure() bool {
	return pl.expectedFailure
}

// Run the supplied stages in order. Returns nil if the pipeline reached the
// Done state. A returned error either wraps ErrStageFailure (the toolchain
// ran but the outcome was not the declared one), wraps the context error if
// the run was cancelled, or is an infrastructure error from the invoker
func (pl *Pipeline) Run(ctx context.Context, stages []StageSpec) error {
	if pl.state != Pending {
		return fmt.Errorf("pipeline: not in the pending state")
	}

	for _, spec := range stages {
		pl.state = spec.Stage.runningState()

		res, err := pl.inv.Run(ctx, toolchain.Command{
			Path:    spec.Path,
			Args:    spec.Args,
			WorkDir: pl.workDir,
			Label:   spec.Stage.String(),
			Timeout: spec.Timeout,
		})
		if err != nil {
			pl.state = Aborted
			return fmt.Errorf("pipeline: %s: %w", spec.Stage, err)
		}

		pl.results = append(pl.results, res)

		// a cancelled run leaves the stage killed mid-flight. the exit
		// status of a killed subprocess proves nothing about the test and in
		// particular never satisfies an expected failure
		if err := ctx.Err(); err != nil {
			pl.state = Aborted
			return fmt.Errorf("pipeline: %s: %w", spec.Stage, err)
		}

		// a timeout never satisfies an expected failure. a hung simulation
		// that was expected to abort is still a hung simulation
		if res.TimedOut {
			pl.state = Aborted
			return fmt.Errorf("pipeline: %w: %s", ErrStageFailure, res)
		}

		failed := res.ExitCode != 0

		if spec.ExpectFail {
			if !failed {
				pl.state = Aborted
				return fmt.Errorf("pipeline: %w: %s: expected failure did not occur", ErrStageFailure, spec.Stage)
			}

			// the declared failure occurred. terminate here by design
			pl.state = Done
			pl.expectedFailure = true
			return nil
		}

		if failed {
			pl.state = Aborted
			return fmt.Errorf("pipeline: %w: %s: %s", ErrStageFailure, res, res.OutputTail(5))
		}
	}

	pl.state = Done
	return nil
}
