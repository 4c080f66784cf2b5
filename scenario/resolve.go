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

package scenario

// Run is one concrete (scenario, flag variant) pair to execute. Variant is
// the index into the test's list of flag variants, or zero when the test
// declares none
type Run struct {
	Scenario Scenario
	Variant  int
	Flags    []string
}

// Resolve produces the concrete list of runs for a test. The declared
// scenarios are intersected with the active set; each surviving scenario is
// expanded against the supplied flag variants. An empty result means the
// test should be skipped with no pipeline work performed.
//
// The result is ordered by declaration order and then by variant index. The
// ordering of the active set has no effect, meaning resolution is
// deterministic for any given declaration.
func Resolve(declared []Scenario, active []Scenario, variants [][]string) []Run {
	act := make(map[Scenario]bool)
	for _, sc := range active {
		act[sc] = true
	}

	// a test with no flag variants still produces one run per scenario
	if len(variants) == 0 {
		variants = [][]string{nil}
	}

	var runs []Run
	for _, sc := range declared {
		if !act[sc] {
			continue
		}
		for i, flags := range variants {
			runs = append(runs, Run{
				Scenario: sc,
				Variant:  i,
				Flags:    flags,
			})
		}
	}

	return runs
}
