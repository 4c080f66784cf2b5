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

// Package testdef defines the declarative test format and its discovery. A
// test is a small YAML file naming a top source file, the scenarios the
// test applies under, toolchain flags (optionally in variants), declared
// stage expectations and a list of post-run assertions.
//
// A minimal declaration:
//
//	scenarios: [sim-all]
//	top: t_trace.v
//	flags: ["--trace"]
//	asserts:
//	  - kind: vcd
//	    file: simx.vcd
//
// The golden reference for the vcd assertion defaults to t_trace.vcd next
// to the declaration file.
package testdef
