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

// Package regression drives a full regression run. Discovered test
// declarations are handed to a bounded pool of workers, one controller per
// test. A controller resolves the test's scenarios against the selected
// scenario set, runs the stage pipeline for each resolved scenario run and
// evaluates the declared assertions against the produced artifacts.
//
// Outcomes are accumulated at a single point and rolled into a Report. The
// verdict for a test is independent of scheduling: running with one worker
// or many workers produces the same set of outcomes.
//
// The failure taxonomy distinguishes a test that failed (a stage outcome or
// an assertion disagreed with the declaration) from a test that errored
// (the harness could not carry out the test at all). Only failed and
// errored tests make a run unsuccessful.
package regression
