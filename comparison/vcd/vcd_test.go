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

package vcd_test

import (
	"errors"
	"strings"
	"testing"

	"vregress/comparison/vcd"
	"vregress/test"
)

const produced = `$date
	Mon Aug 24 10:00:00 2026
$end
$version
	simulator 5.0
$end
$timescale 1 ns $end
$scope module top $end
$var wire 1 ! clk $end
$var wire 8 " data $end
$scope module sub $end
$var wire 1 # ready $end
$upscope $end
$upscope $end
$enddefinitions $end
#0
$dumpvars
0!
b00000000 "
x#
$end
#5
1!
b0010 "
#10
0!
1#
`

// semantically identical to produced: different metadata, different
// identifier codes, a shifted time base, redundant leading zeroes and a
// re-dump of an unchanged value
const golden = `$date
	some other day
$end
$version
	another simulator
$end
$comment golden reference $end
$timescale 1 ns $end
$scope module top $end
$var wire 1 a clk $end
$var wire 8 b data $end
$scope module sub $end
$var wire 1 c ready $end
$upscope $end
$upscope $end
$enddefinitions $end
#100
$dumpvars
0a
b0 b
xc
$end
#105
1a
b00010 b
$dumpall
1a
$end
#110
0a
1c
`

func TestParse(t *testing.T) {
	tr, err := vcd.Parse(strings.NewReader(produced))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, tr.Timescale, "1 ns")

	names := tr.Names()
	test.DemandEquality(t, len(names), 3)
	test.ExpectEquality(t, names[0], "top.clk")
	test.ExpectEquality(t, names[1], "top.data")
	test.ExpectEquality(t, names[2], "top.sub.ready")

	clk := tr.Signals["top.clk"]
	test.ExpectEquality(t, clk.Width, 1)
	test.DemandEquality(t, len(clk.Events), 3)
	test.ExpectEquality(t, clk.Events[0], vcd.Event{Time: 0, Value: "0"})
	test.ExpectEquality(t, clk.Events[1], vcd.Event{Time: 5, Value: "1"})
	test.ExpectEquality(t, clk.Events[2], vcd.Event{Time: 10, Value: "0"})

	// vector values lose insignificant leading zeroes
	data := tr.Signals["top.data"]
	test.ExpectEquality(t, data.Width, 8)
	test.DemandEquality(t, len(data.Events), 2)
	test.ExpectEquality(t, data.Events[0].Value, "0")
	test.ExpectEquality(t, data.Events[1].Value, "10")
}

func TestParseTimeBase(t *testing.T) {
	// change times are offsets from the first change point
	tr, err := vcd.Parse(strings.NewReader(golden))
	test.DemandSuccess(t, err)

	clk := tr.Signals["top.clk"]
	test.DemandEquality(t, len(clk.Events), 3)
	test.ExpectEquality(t, clk.Events[0].Time, uint64(0))
	test.ExpectEquality(t, clk.Events[1].Time, uint64(5))
	test.ExpectEquality(t, clk.Events[2].Time, uint64(10))
}

func TestCompareEqual(t *testing.T) {
	a, err := vcd.Parse(strings.NewReader(produced))
	test.DemandSuccess(t, err)
	b, err := vcd.Parse(strings.NewReader(golden))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, a.Digest(), b.Digest())
	test.ExpectSuccess(t, vcd.Compare(a, b))
}

func TestCompareValueDivergence(t *testing.T) {
	a, err := vcd.Parse(strings.NewReader(produced))
	test.DemandSuccess(t, err)
	b, err := vcd.Parse(strings.NewReader(produced))
	test.DemandSuccess(t, err)

	b.Signals["top.data"].Events[1].Value = "11"

	err = vcd.Compare(a, b)
	test.DemandFailure(t, err)

	var div vcd.Divergence
	test.ExpectSuccess(t, errors.As(err, &div))
	test.ExpectEquality(t, div.Reason, "signal top.data: at time 5: value 10, golden 11")
}

func TestCompareMissingSignal(t *testing.T) {
	a, err := vcd.Parse(strings.NewReader(produced))
	test.DemandSuccess(t, err)
	b, err := vcd.Parse(strings.NewReader(produced))
	test.DemandSuccess(t, err)

	delete(a.Signals, "top.sub.ready")

	err = vcd.Compare(a, b)
	test.DemandFailure(t, err)

	var div vcd.Divergence
	test.ExpectSuccess(t, errors.As(err, &div))
	test.ExpectEquality(t, div.Reason, "missing signal top.sub.ready")
}

func TestParseAlias(t *testing.T) {
	// two declarations sharing an identifier code both receive the changes
	const aliased = `$timescale 1 ps $end
$scope module top $end
$var wire 1 ! clk $end
$var wire 1 ! clk_copy $end
$upscope $end
$enddefinitions $end
#0
0!
#1
1!
`
	tr, err := vcd.Parse(strings.NewReader(aliased))
	test.DemandSuccess(t, err)

	test.DemandEquality(t, len(tr.Signals), 2)
	test.ExpectEquality(t, len(tr.Signals["top.clk"].Events), 2)
	test.ExpectEquality(t, len(tr.Signals["top.clk_copy"].Events), 2)
}

func TestParseMalformed(t *testing.T) {
	_, err := vcd.Parse(strings.NewReader("$timescale 1 ns"))
	test.ExpectFailure(t, err)

	// value change for an identifier that was never declared
	_, err = vcd.Parse(strings.NewReader("$enddefinitions $end\n#0\n1z\n"))
	test.ExpectFailure(t, err)
}
