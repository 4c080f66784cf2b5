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
	"strings"

	"github.com/spf13/cobra"

	"vregress/testdef"
)

var listCmd = &cobra.Command{
	Use:   "list [test root]",
	Short: "List discovered test declarations",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		entries, err := testdef.Discover(root)
		if err != nil {
			return err
		}

		for _, e := range entries {
			if e.Err != nil {
				fmt.Fprintf(os.Stdout, "%s: declaration error: %v\n", e.Name, e.Err)
				continue
			}

			var scs []string
			for _, sc := range e.Def.Scenarios {
				scs = append(scs, sc.String())
			}
			fmt.Fprintf(os.Stdout, "%s [%s]\n", e.Name, strings.Join(scs, " "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
