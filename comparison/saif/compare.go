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

package saif

import (
	"fmt"
	"sort"
)

// CompareFiles parses both files and compares the resulting summaries
func CompareFiles(produced string, golden string) error {
	a, err := ParseFile(produced)
	if err != nil {
		return err
	}

	b, err := ParseFile(golden)
	if err != nil {
		return err
	}

	return Compare(a, b)
}

// Compare two activity summaries, returning nil if they are equal. The
// comparison is tolerant of key ordering and intolerant of any numeric
// mismatch. The first difference in sorted signal/counter order is
// returned as a Divergence error
func Compare(produced *Activity, golden *Activity) error {
	if produced.Digest() == golden.Digest() {
		return nil
	}

	if produced.Duration != golden.Duration {
		return Divergence{
			Reason: fmt.Sprintf("duration: %d, golden %d", produced.Duration, golden.Duration),
		}
	}

	names := produced.Names()
	for _, n := range golden.Names() {
		if _, ok := produced.Signals[n]; !ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	for _, n := range names {
		counters, ok := produced.Signals[n]
		if !ok {
			return Divergence{
				Reason: fmt.Sprintf("missing signal %s", n),
			}
		}

		gold, ok := golden.Signals[n]
		if !ok {
			return Divergence{
				Reason: fmt.Sprintf("extra signal %s", n),
			}
		}

		keys := counters.keys()
		for _, k := range gold.keys() {
			if _, ok := counters[k]; !ok {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		for _, k := range keys {
			v, ok := counters[k]
			if !ok {
				return Divergence{
					Reason: fmt.Sprintf("signal %s: missing counter %s", n, k),
				}
			}

			gv, ok := gold[k]
			if !ok {
				return Divergence{
					Reason: fmt.Sprintf("signal %s: extra counter %s", n, k),
				}
			}

			if v != gv {
				return Divergence{
					Reason: fmt.Sprintf("signal %s: %s=%d, golden %d", n, k, v, gv),
				}
			}
		}
	}

	return nil
}
