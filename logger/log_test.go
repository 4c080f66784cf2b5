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

package logger_test

import (
	"strings"
	"testing"

	"vregress/logger"
	"vregress/test"
)

func TestLogger(t *testing.T) {
	l := logger.NewLogger(10)

	l.Log(logger.Allow, "harness", "starting")
	l.Logf(logger.Allow, "toolchain", "exit=%d", 0)

	b := &strings.Builder{}
	l.Write(b)
	test.ExpectEquality(t, b.String(), "harness: starting\ntoolchain: exit=0\n")

	b.Reset()
	l.Tail(b, 1)
	test.ExpectEquality(t, b.String(), "toolchain: exit=0\n")

	l.Clear()
	b.Reset()
	l.Write(b)
	test.ExpectEquality(t, b.String(), "")
}

func TestLoggerRepeats(t *testing.T) {
	l := logger.NewLogger(10)

	l.Log(logger.Allow, "toolchain", "retrying")
	l.Log(logger.Allow, "toolchain", "retrying")
	l.Log(logger.Allow, "toolchain", "retrying")

	b := &strings.Builder{}
	l.Write(b)
	test.ExpectEquality(t, b.String(), "toolchain: retrying (repeat x3)\n")
}

func TestLoggerMaxEntries(t *testing.T) {
	l := logger.NewLogger(2)

	l.Log(logger.Allow, "a", "one")
	l.Log(logger.Allow, "b", "two")
	l.Log(logger.Allow, "c", "three")

	b := &strings.Builder{}
	l.Write(b)
	test.ExpectEquality(t, b.String(), "b: two\nc: three\n")
}

func TestLoggerEcho(t *testing.T) {
	l := logger.NewLogger(10)

	b := &strings.Builder{}
	l.SetEcho(b)

	l.Log(logger.Allow, "harness", "starting")
	test.ExpectEquality(t, b.String(), "harness: starting\n")

	l.SetEcho(nil)
	l.Log(logger.Allow, "harness", "quietly")
	test.ExpectEquality(t, b.String(), "harness: starting\n")
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLoggerPermission(t *testing.T) {
	l := logger.NewLogger(10)

	l.Log(deny{}, "harness", "never seen")

	b := &strings.Builder{}
	l.Write(b)
	test.ExpectEquality(t, b.String(), "")
}
