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

package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"vregress/logger"
	"vregress/regression"
	"vregress/scenario"
	"vregress/testdef"
)

// default name for the optional harness configuration file
const defaultConfigFile = "vregress.yaml"

var runOpts struct {
	config    string
	binary    string
	scenarios []string
	objDir    string
	jobs      int
	timeout   time.Duration
	rerun     bool
	verbose   bool
}

var runCmd = &cobra.Command{
	Use:   "run [test root]",
	Short: "Run the regression",
	Long: `Run discovers every test declaration under the test root (the current
directory if not given) and runs the regression. The exit status is zero
only if no test failed and no test errored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := regression.LoadConfigFile(runOpts.config)
		if err != nil {
			return err
		}

		// command line flags override the configuration file
		if cmd.Flags().Changed("binary") {
			cfg.Binary = runOpts.binary
		}
		if cmd.Flags().Changed("scenarios") {
			scs, err := scenario.ParseGroups(runOpts.scenarios)
			if err != nil {
				return err
			}
			cfg.Active = scs
		}
		if cmd.Flags().Changed("objdir") {
			cfg.ObjDir = runOpts.objDir
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Jobs = runOpts.jobs
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout = runOpts.timeout
		}
		cfg.Rerun = runOpts.rerun
		cfg.Verbose = runOpts.verbose

		if runOpts.verbose {
			logger.SetEcho(os.Stderr)
		}

		// a single interrupt lets in-flight tests wind down and still
		// produces a report for everything that completed
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		entries, err := testdef.Discover(root)
		if err != nil {
			return err
		}

		rep, err := regression.Run(ctx, os.Stdout, cfg, entries)
		if err != nil {
			return err
		}

		rep.Write(os.Stdout)

		if !rep.Succeeded() {
			exitStatus = 1
		}

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runOpts.config, "config", defaultConfigFile, "harness configuration file")
	runCmd.Flags().StringVar(&runOpts.binary, "binary", "", "path to the toolchain binary")
	runCmd.Flags().StringSliceVarP(&runOpts.scenarios, "scenarios", "s", nil, "scenarios to run (lint, sim, sim-mt, dist, sim-all, all)")
	runCmd.Flags().StringVar(&runOpts.objDir, "objdir", "", "root directory for per-test working directories")
	runCmd.Flags().IntVarP(&runOpts.jobs, "jobs", "j", 0, "number of concurrent tests (0 selects the number of CPUs)")
	runCmd.Flags().DurationVar(&runOpts.timeout, "timeout", 0, "per-stage timeout")
	runCmd.Flags().BoolVar(&runOpts.rerun, "rerun", false, "rerun failing tests once, serially")
	runCmd.Flags().BoolVarP(&runOpts.verbose, "verbose", "v", false, "report each test as it completes")

	rootCmd.AddCommand(runCmd)
}
