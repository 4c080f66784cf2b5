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

// Package toolchain runs the external compiler/simulator binary as a
// subprocess. The toolchain is a black box as far as the harness is
// concerned: it accepts flags and files, and produces an exit status,
// stdout/stderr and artifact files in the working directory.
//
// Every invocation is bounded by a timeout. On expiry the subprocess is
// sent a termination signal and, after a short grace period, killed
// outright. A timed-out invocation is recorded as such in the Result rather
// than being reported as an error - the distinction between "the toolchain
// misbehaved" and "the harness could not run the toolchain" matters to the
// aggregate report.
package toolchain
