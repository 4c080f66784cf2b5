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

// Package pipeline composes toolchain invocations into the ordered stages
// of one scenario run: lint on its own, or compile optionally followed by
// execute.
//
// The pipeline is a short linear state machine. Pending is the initial
// state; Done and Aborted are terminal. A stage that fails when its
// StageSpec declares the failure expected ends the pipeline at Done - the
// remaining stages are not an omission, they are unreachable by design.
package pipeline
