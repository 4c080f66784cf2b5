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

package vcd

import (
	"fmt"
	"sort"
)

// CompareFiles parses both files and compares the resulting traces
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

// Compare two traces, returning nil if they are semantically equal. The
// first structural difference is returned as a Divergence error. Signals
// are visited in sorted name order so the reported divergence is the same
// on every run
func Compare(produced *Trace, golden *Trace) error {
	// equal digests means equal models. the common case for a passing test
	if produced.Digest() == golden.Digest() {
		return nil
	}

	if produced.Timescale != golden.Timescale {
		return Divergence{
			Reason: fmt.Sprintf("timescale: %q, golden %q", produced.Timescale, golden.Timescale),
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
		sig, ok := produced.Signals[n]
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

		if sig.Width != gold.Width {
			return Divergence{
				Reason: fmt.Sprintf("signal %s: width %d, golden %d", n, sig.Width, gold.Width),
			}
		}

		if err := compareEvents(n, sig.Events, gold.Events); err != nil {
			return err
		}
	}

	return nil
}

func compareEvents(name string, produced []Event, golden []Event) error {
	for i := 0; i < len(produced) && i < len(golden); i++ {
		if produced[i].Time != golden[i].Time {
			return Divergence{
				Reason: fmt.Sprintf("signal %s: change %d at time %d, golden at time %d",
					name, i, produced[i].Time, golden[i].Time),
			}
		}
		if produced[i].Value != golden[i].Value {
			return Divergence{
				Reason: fmt.Sprintf("signal %s: at time %d: value %s, golden %s",
					name, produced[i].Time, produced[i].Value, golden[i].Value),
			}
		}
	}

	if len(produced) != len(golden) {
		if len(produced) > len(golden) {
			ev := produced[len(golden)]
			return Divergence{
				Reason: fmt.Sprintf("signal %s: extra change at time %d (value %s)", name, ev.Time, ev.Value),
			}
		}
		ev := golden[len(produced)]
		return Divergence{
			Reason: fmt.Sprintf("signal %s: missing change at time %d (golden value %s)", name, ev.Time, ev.Value),
		}
	}

	return nil
}
