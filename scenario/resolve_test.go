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

package scenario_test

import (
	"testing"

	"vregress/scenario"
	"vregress/test"
)

func TestResolveIntersection(t *testing.T) {
	declared := []scenario.Scenario{scenario.Sim, scenario.SimMT}
	active := []scenario.Scenario{scenario.SimMT, scenario.Lint}

	runs := scenario.Resolve(declared, active, nil)
	test.DemandEquality(t, len(runs), 1)
	test.ExpectEquality(t, runs[0].Scenario, scenario.SimMT)
	test.ExpectEquality(t, runs[0].Variant, 0)
}

func TestResolveEmptyIntersection(t *testing.T) {
	declared := []scenario.Scenario{scenario.Lint}
	active := []scenario.Scenario{scenario.Sim, scenario.Dist}

	runs := scenario.Resolve(declared, active, nil)
	test.ExpectEquality(t, len(runs), 0)
}

func TestResolveVariants(t *testing.T) {
	declared := []scenario.Scenario{scenario.Sim, scenario.SimMT}
	active := scenario.List
	variants := [][]string{
		{"--opt1"},
		{"--opt2", "--opt3"},
	}

	runs := scenario.Resolve(declared, active, variants)
	test.DemandEquality(t, len(runs), 4)

	// ordered by declaration then variant index
	test.ExpectEquality(t, runs[0].Scenario, scenario.Sim)
	test.ExpectEquality(t, runs[0].Variant, 0)
	test.ExpectEquality(t, runs[1].Scenario, scenario.Sim)
	test.ExpectEquality(t, runs[1].Variant, 1)
	test.ExpectEquality(t, runs[2].Scenario, scenario.SimMT)
	test.ExpectEquality(t, runs[2].Variant, 0)
	test.ExpectEquality(t, runs[3].Scenario, scenario.SimMT)
	test.ExpectEquality(t, runs[3].Variant, 1)

	test.ExpectEquality(t, runs[1].Flags[1], "--opt3")
}

func TestResolveActiveOrderIrrelevant(t *testing.T) {
	declared := []scenario.Scenario{scenario.Dist, scenario.Sim}

	a := scenario.Resolve(declared, []scenario.Scenario{scenario.Sim, scenario.Dist}, nil)
	b := scenario.Resolve(declared, []scenario.Scenario{scenario.Dist, scenario.Sim}, nil)

	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		test.ExpectEquality(t, a[i].Scenario, b[i].Scenario)
	}

	// declaration order wins
	test.ExpectEquality(t, a[0].Scenario, scenario.Dist)
	test.ExpectEquality(t, a[1].Scenario, scenario.Sim)
}
