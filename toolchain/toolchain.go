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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"vregress/logger"
)

// ErrStart indicates that the subprocess could not be started at all. It is
// an infrastructure failure, distinct from the subprocess starting and then
// exiting with a non-zero status
var ErrStart = errors.New("subprocess could not be started")

// grace period between context cancellation and the subprocess being killed
// outright
const waitDelay = 5 * time.Second

// default to a generous timeout. individual tests can always shorten it
const defaultTimeout = 10 * time.Minute

// Command is a fully materialised subprocess invocation. The zero value of
// Path means the invoker's configured toolchain binary
type Command struct {
	// the binary to run. when empty the invoker's toolchain binary is used.
	// the execute stage of a pipeline uses this to run the program produced
	// by the compile stage
	Path string

	Args []string

	// the working directory for the subprocess. never shared between
	// concurrent runs
	WorkDir string

	// label for the invocation. used for the log file name and for log
	// entries
	Label string

	// zero means the invoker's default timeout
	Timeout time.Duration
}

// Invoker runs the external toolchain binary (or any other subprocess) and
// captures the result
type Invoker struct {
	binary  string
	timeout time.Duration
}

// NewInvoker is the preferred method of initialisation for the Invoker
// type. A zero timeout selects the package default
func NewInvoker(binary string, timeout time.Duration) *Invoker {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Invoker{
		binary:  binary,
		timeout: timeout,
	}
}

// Run the command to completion, returning the captured Result.
//
// A non-zero exit status is not an error. An error is returned only when
// the subprocess could not be run at all (wrapping ErrStart) - whether a
// non-zero exit is a failure is for the caller to decide.
func (inv *Invoker) Run(ctx context.Context, cmd Command) (*Result, error) {
	path := cmd.Path
	if path == "" {
		path = inv.binary
	}

	timeout := cmd.Timeout
	if timeout == 0 {
		timeout = inv.timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Dir = cmd.WorkDir
	c.WaitDelay = waitDelay
	setProcessGroup(c)

	// everything written by the subprocess is also recorded in a log file in
	// the working directory. assertions commonly grep these files
	var logFile string
	if cmd.WorkDir != "" && cmd.Label != "" {
		logFile = filepath.Join(cmd.WorkDir, fmt.Sprintf("%s.log", cmd.Label))
		f, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStart, err)
		}
		defer func() {
			_ = f.Close()
		}()
		c.Stdout = io.MultiWriter(&stdout, f)
		c.Stderr = io.MultiWriter(&stderr, f)
	} else {
		c.Stdout = &stdout
		c.Stderr = &stderr
	}

	logger.Logf(logger.Allow, "toolchain", "%s: %s %v", cmd.Label, path, cmd.Args)

	start := time.Now()
	err := c.Run()
	duration := time.Since(start)

	res := &Result{
		Label:    cmd.Label,
		WorkDir:  cmd.WorkDir,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
		LogFile:  logFile,
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) && !res.TimedOut {
			// the subprocess never ran. missing binary, unreadable working
			// directory, etc
			return nil, fmt.Errorf("%w: %v", ErrStart, err)
		}
	}

	if c.ProcessState != nil {
		res.ExitCode = c.ProcessState.ExitCode()
	}

	logger.Logf(logger.Allow, "toolchain", "%s: exit=%d duration=%v", cmd.Label, res.ExitCode, res.Duration)

	return res, nil
}
