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

package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"vregress/pipeline"
	"vregress/test"
	"vregress/toolchain"
)

// stubInvoker returns scripted results in order, recording every command it
// was asked to run
type stubInvoker struct {
	script []stubStep
	ran    []toolchain.Command
}

type stubStep struct {
	exitCode int
	timedOut bool
	err      error
}

func (inv *stubInvoker) Run(_ context.Context, cmd toolchain.Command) (*toolchain.Result, error) {
	if len(inv.script) == 0 {
		return nil, errors.New("stub script exhausted")
	}

	step := inv.script[0]
	inv.script = inv.script[1:]
	inv.ran = append(inv.ran, cmd)

	if step.err != nil {
		return nil, step.err
	}

	return &toolchain.Result{
		Label:    cmd.Label,
		ExitCode: step.exitCode,
		TimedOut: step.timedOut,
		WorkDir:  cmd.WorkDir,
	}, nil
}

func TestPipelineAllStagesPass(t *testing.T) {
	inv := &stubInvoker{script: []stubStep{{}, {}}}
	pl := pipeline.New(inv, t.TempDir())

	test.ExpectEquality(t, pl.State(), pipeline.Pending)

	err := pl.Run(context.Background(), []pipeline.StageSpec{
		{Stage: pipeline.Compile, Args: []string{"--cc"}},
		{Stage: pipeline.Execute, Path: "Vt"},
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pl.State(), pipeline.Done)
	test.ExpectFailure(t, pl.ExpectedFailure())

	test.DemandEquality(t, len(inv.ran), 2)
	test.ExpectEquality(t, inv.ran[0].Label, "compile")
	test.ExpectEquality(t, inv.ran[1].Label, "execute")
	test.ExpectEquality(t, inv.ran[1].Path, "Vt")

	test.ExpectEquality(t, len(pl.Results()), 2)
}

func TestPipelineStageFailure(t *testing.T) {
	inv := &stubInvoker{script: []stubStep{{exitCode: 1}}}
	pl := pipeline.New(inv, t.TempDir())

	err := pl.Run(context.Background(), []pipeline.StageSpec{
		{Stage: pipeline.Compile},
		{Stage: pipeline.Execute},
	})
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, pipeline.ErrStageFailure))
	test.ExpectEquality(t, pl.State(), pipeline.Aborted)

	// the execute stage never ran
	test.ExpectEquality(t, len(inv.ran), 1)
}

func TestPipelineExpectedFailure(t *testing.T) {
	inv := &stubInvoker{script: []stubStep{{exitCode: 1}}}
	pl := pipeline.New(inv, t.TempDir())

	err := pl.Run(context.Background(), []pipeline.StageSpec{
		{Stage: pipeline.Lint, ExpectFail: true},
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pl.State(), pipeline.Done)
	test.ExpectSuccess(t, pl.ExpectedFailure())
}

func TestPipelineExpectedFailureDidNotOccur(t *testing.T) {
	inv := &stubInvoker{script: []stubStep{{exitCode: 0}}}
	pl := pipeline.New(inv, t.TempDir())

	err := pl.Run(context.Background(), []pipeline.StageSpec{
		{Stage: pipeline.Lint, ExpectFail: true},
	})
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, pipeline.ErrStageFailure))
	test.ExpectEquality(t, pl.State(), pipeline.Aborted)
}

func TestPipelineExpectedFailureTerminates(t *testing.T) {
	// no stage runs after a declared failure has occurred
	inv := &stubInvoker{script: []stubStep{{exitCode: 1}, {}}}
	pl := pipeline.New(inv, t.TempDir())

	err := pl.Run(context.Background(), []pipeline.StageSpec{
		{Stage: pipeline.Compile, ExpectFail: true},
		{Stage: pipeline.Execute},
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pl.State(), pipeline.Done)
	test.ExpectEquality(t, len(inv.ran), 1)
}

func TestPipelineTimeoutNeverExpected(t *testing.T) {
	// a timeout does not satisfy an expected failure
	inv := &stubInvoker{script: []stubStep{{exitCode: -1, timedOut: true}}}
	pl := pipeline.New(inv, t.TempDir())

	err := pl.Run(context.Background(), []pipeline.StageSpec{
		{Stage: pipeline.Execute, ExpectFail: true},
	})
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, pipeline.ErrStageFailure))
	test.ExpectEquality(t, pl.State(), pipeline.Aborted)
	test.ExpectFailure(t, pl.ExpectedFailure())
}

// cancellingInvoker simulates a subprocess killed by run cancellation: the
// context is cancelled during the invocation and the killed process reports
// a non-zero exit status
type cancellingInvoker struct {
	cancel context.CancelFunc
}

func (inv *cancellingInvoker) Run(_ context.Context, cmd toolchain.Command) (*toolchain.Result, error) {
	inv.cancel()
	return &toolchain.Result{
		Label:    cmd.Label,
		ExitCode: -1,
		WorkDir:  cmd.WorkDir,
	}, nil
}

func TestPipelineCancellationNeverExpected(t *testing.T) {
	// the non-zero exit of a killed subprocess does not satisfy a declared
	// failure
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pl := pipeline.New(&cancellingInvoker{cancel: cancel}, t.TempDir())

	err := pl.Run(ctx, []pipeline.StageSpec{
		{Stage: pipeline.Compile, ExpectFail: true},
	})
	test.DemandFailure(t, err)
	test.ExpectFailure(t, errors.Is(err, pipeline.ErrStageFailure))
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectEquality(t, pl.State(), pipeline.Aborted)
	test.ExpectFailure(t, pl.ExpectedFailure())
}

func TestPipelineInfrastructureError(t *testing.T) {
	inv := &stubInvoker{script: []stubStep{{err: toolchain.ErrStart}}}
	pl := pipeline.New(inv, t.TempDir())

	err := pl.Run(context.Background(), []pipeline.StageSpec{
		{Stage: pipeline.Compile},
	})
	test.DemandFailure(t, err)
	test.ExpectFailure(t, errors.Is(err, pipeline.ErrStageFailure))
	test.ExpectSuccess(t, errors.Is(err, toolchain.ErrStart))
	test.ExpectEquality(t, pl.State(), pipeline.Aborted)
}

func TestPipelineSingleUse(t *testing.T) {
	inv := &stubInvoker{script: []stubStep{{}}}
	pl := pipeline.New(inv, t.TempDir())

	err := pl.Run(context.Background(), []pipeline.StageSpec{{Stage: pipeline.Lint}})
	test.ExpectSuccess(t, err)

	// a terminal pipeline cannot be run again
	err = pl.Run(context.Background(), []pipeline.StageSpec{{Stage: pipeline.Lint}})
	test.ExpectFailure(t, err)
}
