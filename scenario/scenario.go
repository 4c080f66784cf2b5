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

import (
	"fmt"
	"strings"
)

// Scenario is a named configuration mode that a test may or may not apply
// under. Use String() and Parse() to convert to and from string
// representations
type Scenario int

// Valid scenarios. Lint runs the toolchain in analysis-only mode. Sim and
// SimMT compile and simulate, single-threaded and multi-threaded
// respectively. Dist is the distributed-build variant
const (
	Undefined Scenario = iota
	Lint
	Sim
	SimMT
	Dist
)

// List of scenarios suitable for iteration. does not include group aliases
var List = []Scenario{Lint, Sim, SimMT, Dist}

func (sc Scenario) String() string {
	switch sc {
	case Lint:
		return "lint"
	case Sim:
		return "sim"
	case SimMT:
		return "sim-mt"
	case Dist:
		return "dist"
	}
	return "undefined"
}

// Parse converts a string to its Scenario representation. Group aliases are
// not handled by this function, use ParseGroup() for those
func Parse(label string) (Scenario, error) {
	switch strings.ToLower(label) {
	case "lint":
		return Lint, nil
	case "sim":
		return Sim, nil
	case "sim-mt":
		return SimMT, nil
	case "dist":
		return Dist, nil
	}
	return Undefined, fmt.Errorf("invalid scenario label (%s)", label)
}

// ParseGroup converts a string to the list of scenarios it names. In
// addition to the labels understood by Parse(), the group aliases "sim-all"
// (all simulating variants) and "all" are expanded
func ParseGroup(label string) ([]Scenario, error) {
	switch strings.ToLower(label) {
	case "sim-all":
		return []Scenario{Sim, SimMT}, nil
	case "all":
		return []Scenario{Lint, Sim, SimMT, Dist}, nil
	}

	sc, err := Parse(label)
	if err != nil {
		return nil, err
	}

	return []Scenario{sc}, nil
}

// ParseGroups converts a list of labels, expanding group aliases and
// removing duplicates. Order of first appearance is preserved so that
// resolution remains deterministic
func ParseGroups(labels []string) ([]Scenario, error) {
	var list []Scenario
	seen := make(map[Scenario]bool)

	for _, l := range labels {
		g, err := ParseGroup(l)
		if err != nil {
			return nil, err
		}
		for _, sc := range g {
			if !seen[sc] {
				seen[sc] = true
				list = append(list, sc)
			}
		}
	}

	return list, nil
}

// Simulates returns true if the scenario compiles and runs the simulation
// (as opposed to only analysing the source)
func (sc Scenario) Simulates() bool {
	return sc == Sim || sc == SimMT || sc == Dist
}
