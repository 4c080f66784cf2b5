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

// Package scenario defines the vocabulary of build/run scenarios and the
// resolution of a test's declared scenarios against the set selected for
// the current invocation.
//
// Scenario selection is a simple set intersection. A test declaring
// "sim-all" run under an invocation selecting only "lint" resolves to
// nothing and the test is skipped. Resolution also multiplies the surviving
// scenarios by the test's flag variants so that each (scenario, variant)
// pair becomes an independent pipeline run.
package scenario
