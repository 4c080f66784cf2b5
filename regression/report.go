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

package regression

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	stylePass    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleFail    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleSkip    = lipgloss.NewStyle().Faint(true)
	styleErrored = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleSummary = lipgloss.NewStyle().Bold(true)
)

// Report is the aggregate result of one regression run
type Report struct {
	Outcomes []Outcome

	counts map[OutcomeKind]int
}

// NewReport is the preferred method of initialisation for the Report type
func NewReport(outcomes []Outcome) *Report {
	rep := &Report{
		Outcomes: outcomes,
		counts:   make(map[OutcomeKind]int),
	}
	for _, o := range outcomes {
		rep.counts[o.Kind]++
	}
	return rep
}

// Count of outcomes of the given kind
func (rep *Report) Count(kind OutcomeKind) int {
	return rep.counts[kind]
}

// Succeeded is true only when no test failed and no test errored. A run
// with only passes and skips has succeeded
func (rep *Report) Succeeded() bool {
	return rep.counts[Failed] == 0 && rep.counts[Errored] == 0
}

// Write a human readable rendering of the report. Every non-passing test is
// listed individually, failing and erroring tests with their diagnostics
func (rep *Report) Write(w io.Writer) {
	for _, o := range rep.Outcomes {
		switch o.Kind {
		case Failed:
			fmt.Fprintln(w, styleFail.Render(o.String()))
		case Errored:
			fmt.Fprintln(w, styleErrored.Render(o.String()))
		case Skipped:
			fmt.Fprintln(w, styleSkip.Render(o.String()))
		}
	}

	summary := fmt.Sprintf("%d passed, %d failed, %d skipped, %d errored",
		rep.counts[Passed], rep.counts[Failed], rep.counts[Skipped], rep.counts[Errored])

	switch {
	case !rep.Succeeded():
		fmt.Fprintln(w, styleSummary.Inherit(styleFail).Render(summary))
	case rep.counts[Passed] == 0:
		fmt.Fprintln(w, styleSummary.Inherit(styleSkip).Render(summary))
	default:
		fmt.Fprintln(w, styleSummary.Inherit(stylePass).Render(summary))
	}
}
