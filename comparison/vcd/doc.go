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

// Package vcd parses Value Change Dump waveform traces into a canonical
// model and compares them semantically. Two dumps of identical signal
// activity compare as equal even when the files differ byte for byte -
// different $date headers, different tool version strings, different
// identifier code assignments.
//
// The enumeration of what is metadata and what is semantic is deliberate
// and explicit: see the Parse documentation for the canonicalisation rules.
package vcd
