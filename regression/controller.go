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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vregress/comparison"
	"vregress/pipeline"
	"vregress/scenario"
	"vregress/testdef"
)

// ControllerState records the lifecycle of one test's controller
type ControllerState int

// Valid controller states
const (
	NotStarted ControllerState = iota
	Running
	HasPassed
	HasFailed
	WasSkipped
	HasErrored
)

// controller owns one test's full lifecycle: resolve scenarios, run
// pipeline stages, run comparisons, classify the outcome. Everything the
// controller touches (working directories, subprocess handles, parsed
// artifacts) is exclusively owned by it and never shared with another test
type controller struct {
	cfg   Config
	inv   pipeline.Invoker
	def   *testdef.Def
	state ControllerState
}

func newController(cfg Config, inv pipeline.Invoker, def *testdef.Def) *controller {
	return &controller{
		cfg:   cfg,
		inv:   inv,
		def:   def,
		state: NotStarted,
	}
}

// run the test to completion. the returned Outcome is a pure fold over the
// scenario run results
func (ct *controller) run(ctx context.Context) Outcome {
	start := time.Now()

	outcome := func(kind OutcomeKind, class Classification, diagnostic string, runs int) Outcome {
		return Outcome{
			Name:       ct.def.Name,
			Kind:       kind,
			Class:      class,
			Diagnostic: diagnostic,
			Duration:   time.Since(start),
			Runs:       runs,
		}
	}

	runs := scenario.Resolve(ct.def.Scenarios, ct.cfg.Active, ct.def.Variants)
	if len(runs) == 0 {
		ct.state = WasSkipped
		return outcome(Skipped, ClassSkip, "", 0)
	}

	ct.state = Running

	var expectedFailure bool

	for _, r := range runs {
		if err := ctx.Err(); err != nil {
			ct.state = HasErrored
			return outcome(Errored, ClassInfrastructure, "interrupted", len(runs))
		}

		workDir, err := ct.makeWorkDir(r)
		if err != nil {
			ct.state = HasErrored
			return outcome(Errored, ClassInfrastructure, err.Error(), len(runs))
		}

		stages, err := ct.buildStages(r, workDir)
		if err != nil {
			ct.state = HasErrored
			return outcome(Errored, ClassInfrastructure, err.Error(), len(runs))
		}

		pl := pipeline.New(ct.inv, workDir)

		if err := pl.Run(ctx, stages); err != nil {
			// a stage killed by an interrupt is not a verdict on the test
			if ctx.Err() != nil {
				ct.state = HasErrored
				return outcome(Errored, ClassInfrastructure, "interrupted", len(runs))
			}
			if errors.Is(err, pipeline.ErrStageFailure) {
				ct.state = HasFailed
				return outcome(Failed, ClassStageFailure, err.Error(), len(runs))
			}
			ct.state = HasErrored
			return outcome(Errored, ClassInfrastructure, err.Error(), len(runs))
		}

		if pl.ExpectedFailure() {
			expectedFailure = true
		}

		// declared assertions run against the artifacts of this scenario
		// run's working directory
		for _, a := range ct.def.Asserts {
			res := comparison.Compare(assertSpec(a, workDir))
			switch res.Outcome {
			case comparison.Pass:
				// next assertion

			case comparison.Error:
				ct.state = HasErrored
				return outcome(Errored, ClassInfrastructure, res.Diagnostic, len(runs))

			default:
				ct.state = HasFailed
				return outcome(Failed, ClassAssertionMismatch, res.Diagnostic, len(runs))
			}
		}
	}

	ct.state = HasPassed
	if expectedFailure {
		return outcome(Passed, ClassExpectedFailure, "", len(runs))
	}
	return outcome(Passed, ClassNone, "", len(runs))
}

// the working directory name is derived deterministically from the test
// identity and the scenario run. never shared between concurrent runs
func (ct *controller) makeWorkDir(r scenario.Run) (string, error) {
	name := fmt.Sprintf("obj_%s", r.Scenario)
	if len(ct.def.Variants) > 1 {
		name = fmt.Sprintf("%s_v%d", name, r.Variant)
	}

	workDir, err := filepath.Abs(filepath.Join(ct.cfg.ObjDir, ct.def.Name, name))
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}

	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}

	return workDir, nil
}

// flags implied by the scenario itself
func scenarioFlags(sc scenario.Scenario) []string {
	switch sc {
	case scenario.SimMT:
		return []string{"--threads", "2"}
	case scenario.Dist:
		return []string{"--build-jobs", "0"}
	}
	return nil
}

// buildStages materialises the pipeline for one scenario run. argument
// order is: base mode flag, scenario flags, test flags, variant flags,
// stage flags, the implicit artifact-output-directory flag and finally the
// top file
func (ct *controller) buildStages(r scenario.Run, workDir string) ([]pipeline.StageSpec, error) {
	def := ct.def

	top, err := filepath.Abs(def.Top)
	if err != nil {
		return nil, fmt.Errorf("top file: %w", err)
	}

	args := func(mode []string, stage *testdef.StageDef) []string {
		var a []string
		a = append(a, mode...)
		a = append(a, scenarioFlags(r.Scenario)...)
		a = append(a, def.Flags...)
		a = append(a, r.Flags...)
		if stage != nil {
			a = append(a, stage.Flags...)
		}
		a = append(a, "--Mdir", workDir, top)
		return a
	}

	if def.LintOnly() || r.Scenario == scenario.Lint {
		return []pipeline.StageSpec{{
			Stage:      pipeline.Lint,
			Args:       args([]string{"--lint-only"}, def.Lint),
			ExpectFail: def.Lint != nil && def.Lint.Fails,
			Timeout:    def.Timeout,
		}}, nil
	}

	stages := []pipeline.StageSpec{{
		Stage:      pipeline.Compile,
		Args:       args([]string{"--cc", "--exe", "--build"}, def.Compile),
		ExpectFail: def.Compile != nil && def.Compile.Fails,
		Timeout:    def.Timeout,
	}}

	// a test that declares a compile stage and nothing further is a
	// compile-only test. everything else goes on to execute the program
	// produced by the compile stage
	if def.Execute != nil || def.Compile == nil {
		var execArgs []string
		var expectFail bool
		if def.Execute != nil {
			execArgs = def.Execute.Flags
			expectFail = def.Execute.Fails
		}

		stages = append(stages, pipeline.StageSpec{
			Stage:      pipeline.Execute,
			Path:       filepath.Join(workDir, executableName(top)),
			Args:       execArgs,
			ExpectFail: expectFail,
			Timeout:    def.Timeout,
		})
	}

	return stages, nil
}

// the toolchain names the produced program after the top file. eg. t_case.v
// compiles to Vt_case
func executableName(top string) string {
	base := filepath.Base(top)
	return fmt.Sprintf("V%s", strings.TrimSuffix(base, filepath.Ext(base)))
}

// artifact paths in assertions are relative to the scenario run's working
// directory. golden paths were resolved at parse time
func assertSpec(a testdef.Assert, workDir string) comparison.Spec {
	file := a.File
	if !filepath.IsAbs(file) {
		file = filepath.Join(workDir, file)
	}

	return comparison.Spec{
		Kind:    a.Kind,
		File:    file,
		Pattern: a.Pattern,
		Group:   a.Group,
		Expect:  a.Expect,
		Golden:  a.Golden,
	}
}
