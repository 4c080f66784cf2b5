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
	"strings"

	"vregress/digest"
)

// Activity is the canonical model of a switching-activity summary: the
// simulated duration and the per-signal counter sets. Header entries
// describing the producing tool (SAIFVERSION, DIRECTION, DATE, VENDOR,
// PROGRAM_NAME, VERSION, DIVIDER, TIMESCALE) are metadata and are not
// retained
type Activity struct {
	Duration uint64

	// counters keyed by full hierarchical signal name. the inner map keys
	// are the counter names found in the file (T0, T1, TX, TC, IG)
	Signals map[string]Counters
}

// Counters is the set of toggle/duration counters for one signal
type Counters map[string]uint64

// Names of the recorded signals in sorted order
func (act *Activity) Names() []string {
	names := make([]string, 0, len(act.Signals))
	for n := range act.Signals {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// keys of the counter set in sorted order
func (c Counters) keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Digest returns the hash of the canonical model
func (act *Activity) Digest() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d\n", act.Duration))
	for _, n := range act.Names() {
		c := act.Signals[n]
		b.WriteString(n)
		for _, k := range c.keys() {
			b.WriteString(fmt.Sprintf(" %s=%d", k, c[k]))
		}
		b.WriteString("\n")
	}
	return digest.FromBytes([]byte(b.String()))
}

// Divergence is returned by Compare for the first difference found between
// two activity summaries. Any other error returned by this package is an
// infrastructure problem
type Divergence struct {
	Reason string
}

func (div Divergence) Error() string {
	return div.Reason
}

// Divergence implements the interface expected by the comparison package
func (div Divergence) Divergence() string {
	return div.Reason
}
