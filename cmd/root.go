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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vregress/version"
)

// exit status for the process. the run command sets this according to the
// report so that CI can gate on the harness
var exitStatus int

var rootCmd = &cobra.Command{
	Use:   version.ApplicationName,
	Short: "Regression harness for the HDL toolchain",
	Long: `Vregress discovers test declarations, drives the toolchain through the
lint, compile and execute stages for every selected scenario, and compares
the produced artifacts against the declared expectations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute the command line. The returned value is suitable for os.Exit - it
// is non-zero if any test failed or errored, or if the harness itself could
// not run
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", version.ApplicationName, err)
		return 10
	}
	return exitStatus
}
