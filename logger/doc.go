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

// Package logger is the central log for the harness. Most log entries are
// not important to the user unless something has gone wrong, so entries are
// kept in memory and only written out on request (or echoed immediately when
// the run is in verbose mode).
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count. This keeps the log reviewable when a
// subprocess produces the same complaint for every test in a large run.
package logger
