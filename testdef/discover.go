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

package testdef

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// file extension for test declarations
const declExt = ".yaml"

// Entry is one discovered declaration. A declaration that fails to parse
// still produces an Entry - the parse error belongs to that one test and
// must not abort the run
type Entry struct {
	Name string
	Def  *Def
	Err  error
}

// Discover walks the test root and parses every declaration found. The
// result is sorted by name so a run always visits tests in the same order
func Discover(root string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			// artifact directories from previous runs are not test sources
			if strings.HasPrefix(d.Name(), "obj_") || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != declExt {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(rel, declExt)

		f, err := os.Open(path)
		if err != nil {
			entries = append(entries, Entry{Name: name, Err: err})
			return nil
		}

		def, perr := Parse(f, name, filepath.Dir(path))
		_ = f.Close()
		entries = append(entries, Entry{Name: name, Def: def, Err: perr})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("testdef: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
