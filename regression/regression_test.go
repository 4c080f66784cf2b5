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

package regression_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"vregress/regression"
	"vregress/scenario"
	"vregress/test"
	"vregress/testdef"
)

// a stand-in toolchain. it echoes a recognisable line for assertions to
// grep, fails when asked to and hangs when asked to
const fakeToolchain = `#!/bin/sh
for a in "$@"; do
	case "$a" in
	--magic-fail)
		echo "induced failure"
		exit 1
		;;
	--magic-hang)
		sleep 60
		;;
	esac
done
echo "result = 42"
exit 0
`

func writeToolchain(t *testing.T, dir string) string {
	t.Helper()
	binary := filepath.Join(dir, "toolchain.sh")
	test.DemandSuccess(t, os.WriteFile(binary, []byte(fakeToolchain), 0755))
	return binary
}

func setupRun(t *testing.T) (regression.Config, string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("test requires a POSIX shell")
	}

	dir := t.TempDir()
	binary := writeToolchain(t, dir)

	root := filepath.Join(dir, "tests")
	test.DemandSuccess(t, os.MkdirAll(root, 0755))

	write := func(name string, content string) {
		t.Helper()
		test.DemandSuccess(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
	}

	write("t_pass.yaml", `
top: t_pass.v
scenarios: [sim]
compile: {}
`)
	write("t_fail.yaml", `
top: t_fail.v
scenarios: [sim]
flags: ["--magic-fail"]
compile: {}
`)
	write("t_xfail.yaml", `
top: t_xfail.v
scenarios: [sim]
flags: ["--magic-fail"]
compile: {fails: true}
`)
	write("t_skip.yaml", `
top: t_skip.v
scenarios: [dist]
compile: {}
`)
	write("t_assert.yaml", `
top: t_assert.v
scenarios: [sim]
compile: {}
asserts:
  - kind: grep
    file: compile.log
    pattern: 'result = (\d+)'
    expect: "42"
`)
	write("t_assert_bad.yaml", `
top: t_assert_bad.v
scenarios: [sim]
compile: {}
asserts:
  - kind: grep
    file: compile.log
    pattern: 'result = (\d+)'
    expect: "41"
`)
	write("t_broken.yaml", "top: [\n")

	cfg := regression.Config{
		Binary: binary,
		Active: []scenario.Scenario{scenario.Sim},
		ObjDir: filepath.Join(dir, "obj"),
	}

	return cfg, root
}

func findOutcome(t *testing.T, rep *regression.Report, name string) regression.Outcome {
	t.Helper()
	for _, o := range rep.Outcomes {
		if o.Name == name {
			return o
		}
	}
	t.Fatalf("no outcome for %s", name)
	return regression.Outcome{}
}

func TestRun(t *testing.T) {
	cfg, root := setupRun(t)
	cfg.Jobs = 4

	entries, err := testdef.Discover(root)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 7)

	rep, err := regression.Run(context.Background(), io.Discard, cfg, entries)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, rep.Count(regression.Passed), 3)
	test.ExpectEquality(t, rep.Count(regression.Failed), 2)
	test.ExpectEquality(t, rep.Count(regression.Skipped), 1)
	test.ExpectEquality(t, rep.Count(regression.Errored), 1)
	test.ExpectFailure(t, rep.Succeeded())

	o := findOutcome(t, rep, "t_pass")
	test.ExpectEquality(t, o.Kind, regression.Passed)
	test.ExpectEquality(t, o.Class, regression.ClassNone)

	o = findOutcome(t, rep, "t_fail")
	test.ExpectEquality(t, o.Kind, regression.Failed)
	test.ExpectEquality(t, o.Class, regression.ClassStageFailure)

	o = findOutcome(t, rep, "t_xfail")
	test.ExpectEquality(t, o.Kind, regression.Passed)
	test.ExpectEquality(t, o.Class, regression.ClassExpectedFailure)

	o = findOutcome(t, rep, "t_skip")
	test.ExpectEquality(t, o.Kind, regression.Skipped)
	test.ExpectEquality(t, o.Class, regression.ClassSkip)
	test.ExpectEquality(t, o.Runs, 0)

	o = findOutcome(t, rep, "t_assert")
	test.ExpectEquality(t, o.Kind, regression.Passed)

	o = findOutcome(t, rep, "t_assert_bad")
	test.ExpectEquality(t, o.Kind, regression.Failed)
	test.ExpectEquality(t, o.Class, regression.ClassAssertionMismatch)

	o = findOutcome(t, rep, "t_broken")
	test.ExpectEquality(t, o.Kind, regression.Errored)
	test.ExpectEquality(t, o.Class, regression.ClassInfrastructure)
}

func TestRunSchedulingIrrelevant(t *testing.T) {
	// one worker or many, the verdicts are the same
	cfg, root := setupRun(t)

	entries, err := testdef.Discover(root)
	test.DemandSuccess(t, err)

	cfg.Jobs = 1
	serial, err := regression.Run(context.Background(), io.Discard, cfg, entries)
	test.DemandSuccess(t, err)

	cfg.Jobs = 8
	parallel, err := regression.Run(context.Background(), io.Discard, cfg, entries)
	test.DemandSuccess(t, err)

	test.DemandEquality(t, len(serial.Outcomes), len(parallel.Outcomes))
	for i := range serial.Outcomes {
		test.ExpectEquality(t, serial.Outcomes[i].Name, parallel.Outcomes[i].Name)
		test.ExpectEquality(t, serial.Outcomes[i].Kind, parallel.Outcomes[i].Kind)
		test.ExpectEquality(t, serial.Outcomes[i].Class, parallel.Outcomes[i].Class)
	}
}

func TestRunCancellation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test requires a POSIX shell")
	}

	dir := t.TempDir()
	binary := writeToolchain(t, dir)

	root := filepath.Join(dir, "tests")
	test.DemandSuccess(t, os.MkdirAll(root, 0755))

	write := func(name string, content string) {
		t.Helper()
		test.DemandSuccess(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
	}

	write("t_quick.yaml", `
top: t_quick.v
scenarios: [sim]
compile: {}
`)
	write("t_hang.yaml", `
top: t_hang.v
scenarios: [sim]
flags: ["--magic-hang"]
compile: {}
`)
	// a hanging stage killed by the interrupt must not count as the
	// declared failure
	write("t_xhang.yaml", `
top: t_xhang.v
scenarios: [sim]
flags: ["--magic-hang"]
compile: {fails: true}
`)

	cfg := regression.Config{
		Binary: binary,
		Active: []scenario.Scenario{scenario.Sim},
		ObjDir: filepath.Join(dir, "obj"),
		Jobs:   4,
	}

	entries, err := testdef.Discover(root)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	timer := time.AfterFunc(500*time.Millisecond, cancel)
	defer timer.Stop()

	rep, err := regression.Run(ctx, io.Discard, cfg, entries)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(rep.Outcomes), 3)

	// completed tests keep their verdict
	o := findOutcome(t, rep, "t_quick")
	test.ExpectEquality(t, o.Kind, regression.Passed)

	// interrupted tests are errored, never passed or failed
	o = findOutcome(t, rep, "t_hang")
	test.ExpectEquality(t, o.Kind, regression.Errored)
	test.ExpectEquality(t, o.Class, regression.ClassInfrastructure)
	test.ExpectEquality(t, o.Diagnostic, "interrupted")

	o = findOutcome(t, rep, "t_xhang")
	test.ExpectEquality(t, o.Kind, regression.Errored)
	test.ExpectEquality(t, o.Diagnostic, "interrupted")
}

func TestRunNoBinary(t *testing.T) {
	_, err := regression.Run(context.Background(), io.Discard, regression.Config{}, nil)
	test.ExpectFailure(t, err)
}

func TestReportWrite(t *testing.T) {
	rep := regression.NewReport([]regression.Outcome{
		{Name: "t_err", Kind: regression.Errored, Class: regression.ClassInfrastructure, Diagnostic: "interrupted"},
		{Name: "t_fail", Kind: regression.Failed, Class: regression.ClassAssertionMismatch, Diagnostic: "captured \"7\""},
		{Name: "t_pass", Kind: regression.Passed},
		{Name: "t_skip", Kind: regression.Skipped, Class: regression.ClassSkip},
	})

	b := &strings.Builder{}
	rep.Write(b)
	out := b.String()

	// every non-passing test is listed
	test.ExpectSuccess(t, strings.Contains(out, "fail: t_fail"))
	test.ExpectSuccess(t, strings.Contains(out, "error: t_err"))
	test.ExpectSuccess(t, strings.Contains(out, "skip: t_skip"))
	test.ExpectFailure(t, strings.Contains(out, "t_pass"))

	test.ExpectSuccess(t, strings.Contains(out, "1 passed, 1 failed, 1 skipped, 1 errored"))
	test.ExpectFailure(t, rep.Succeeded())
}

func TestRunRerun(t *testing.T) {
	cfg, root := setupRun(t)
	cfg.Rerun = true

	entries, err := testdef.Discover(root)
	test.DemandSuccess(t, err)

	rep, err := regression.Run(context.Background(), io.Discard, cfg, entries)
	test.DemandSuccess(t, err)

	// deterministic failures fail again on rerun
	o := findOutcome(t, rep, "t_fail")
	test.ExpectEquality(t, o.Kind, regression.Failed)
	test.ExpectSuccess(t, o.Rerun)

	// passing tests are not rerun
	o = findOutcome(t, rep, "t_pass")
	test.ExpectFailure(t, o.Rerun)
}
