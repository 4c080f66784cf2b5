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
	"strings"

	"vregress/digest"
)

// Trace is the canonical in-memory model of a waveform dump. Only the
// semantic content of the file is retained: the timescale, the declared
// signal hierarchy and the per-signal sequences of value changes. The
// $date, $version and $comment header sections and the file's choice of
// identifier codes are run-specific and are discarded during parsing
type Trace struct {
	Timescale string
	Signals   map[string]*Signal
}

// Signal is one entry in the declared hierarchy, keyed by its full
// hierarchical name
type Signal struct {
	Name   string
	Width  int
	Events []Event
}

// Event is a single value change. Time is the offset from the trace's
// first change point, so that only relative time deltas are semantic
type Event struct {
	Time  uint64
	Value string
}

// Names of the declared signals in sorted order
func (tr *Trace) Names() []string {
	names := make([]string, 0, len(tr.Signals))
	for n := range tr.Signals {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Digest returns the hash of the canonical model. Two traces with the same
// digest have identical semantic content regardless of the metadata in the
// files they were parsed from
func (tr *Trace) Digest() string {
	var b strings.Builder
	b.WriteString(tr.Timescale)
	b.WriteString("\n")
	for _, n := range tr.Names() {
		sig := tr.Signals[n]
		b.WriteString(fmt.Sprintf("%s %d\n", sig.Name, sig.Width))
		for _, ev := range sig.Events {
			b.WriteString(fmt.Sprintf("#%d %s\n", ev.Time, ev.Value))
		}
	}
	return digest.FromBytes([]byte(b.String()))
}

// Divergence is returned by Compare for the first structural difference
// found between two traces. Any other error returned by this package is an
// infrastructure problem (unreadable file, malformed dump)
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
