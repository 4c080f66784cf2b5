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

package testdef_test

import (
	"os"
	"path/filepath"
	"testing"

	"vregress/test"
	"vregress/testdef"
)

const validDecl = `
top: t.v
scenarios: [sim]
`

func TestDiscover(t *testing.T) {
	root := t.TempDir()

	mkdir := func(dir string) {
		test.DemandSuccess(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	write := func(name string, content string) {
		test.DemandSuccess(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
	}

	mkdir("sub")
	mkdir("obj_vregress/t_old")

	write("t_zebra.yaml", validDecl)
	write("t_aard.yaml", validDecl)
	write("sub/t_deep.yaml", validDecl)
	write("t_broken.yaml", "top: [\n")
	write("t_src.v", "module t; endmodule\n")

	// declarations inside artifact directories are not tests
	write("obj_vregress/t_old/stale.yaml", validDecl)

	entries, err := testdef.Discover(root)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 4)

	// sorted by name
	test.ExpectEquality(t, entries[0].Name, filepath.Join("sub", "t_deep"))
	test.ExpectEquality(t, entries[1].Name, "t_aard")
	test.ExpectEquality(t, entries[2].Name, "t_broken")
	test.ExpectEquality(t, entries[3].Name, "t_zebra")

	// a broken declaration is an entry with an error, not an aborted walk
	test.ExpectFailure(t, entries[2].Err)
	test.ExpectSuccess(t, entries[1].Err)
	test.ExpectFailure(t, entries[1].Def == nil)
}
