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

// Package saif parses Switching Activity Interchange Format summaries into
// a canonical model of per-signal toggle/duration counters and compares
// them. As with the vcd package, header fields describing the producing
// tool are metadata and two summaries recording identical activity compare
// as equal regardless of when or by what they were written.
package saif
