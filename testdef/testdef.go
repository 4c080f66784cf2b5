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
	"time"

	"vregress/comparison"
	"vregress/scenario"
)

// Def is one test declaration. Immutable once parsed
type Def struct {
	// name of the test, derived from the declaration file path
	Name string

	// directory containing the declaration file. source and golden paths
	// are resolved against it
	DeclDir string

	// the top source file handed to the toolchain
	Top string

	// the scenarios this test applies under, in declaration order with
	// group aliases expanded
	Scenarios []scenario.Scenario

	// flags passed to the compile/lint invocation for every variant
	Flags []string

	// flag variants. each entry produces an independent pipeline run per
	// resolved scenario
	Variants [][]string

	// declared stages. a nil field means the stage is not declared; an
	// undeclared compile/execute pair is implied for simulating scenarios
	Lint    *StageDef
	Compile *StageDef
	Execute *StageDef

	// timeout for every stage of this test. zero means the run default
	Timeout time.Duration

	// default golden reference for assertions that compare against one.
	// individual assertions can override it
	Golden string

	// assertions evaluated after the pipeline completes
	Asserts []Assert
}

// StageDef is the declaration of a single stage
type StageDef struct {
	// a failing exit status from this stage is the success condition
	Fails bool

	// additional flags for this stage only
	Flags []string
}

// Assert is one declared post-run comparison
type Assert struct {
	Kind    comparison.Kind
	File    string
	Pattern string
	Group   int
	Expect  string
	Golden  string
}

func (def *Def) String() string {
	return fmt.Sprintf("%s [%s]", def.Name, scenarioLabels(def.Scenarios))
}

// LintOnly returns true if the test declares the lint stage. a lint-only
// test never compiles or executes
func (def *Def) LintOnly() bool {
	return def.Lint != nil
}

func scenarioLabels(scs []scenario.Scenario) string {
	s := ""
	for i, sc := range scs {
		if i > 0 {
			s += " "
		}
		s += sc.String()
	}
	return s
}
