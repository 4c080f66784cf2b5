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

// Package comparison checks produced artifacts against expectations: a
// regular expression capture, a golden text file, or one of the structured
// trace formats handled by the vcd and saif sub-packages.
//
// Byte-exact comparison is unusable for the structured formats because the
// artifacts embed run-specific metadata (timestamps, tool version strings).
// The trace packages parse into a canonical in-memory model before
// comparing and report the single first divergence, keeping diagnostics
// stable across runs.
package comparison
