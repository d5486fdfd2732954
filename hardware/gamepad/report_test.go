// This file is part of Falconpanel.
//
// Falconpanel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Falconpanel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Falconpanel.  If not, see <https://www.gnu.org/licenses/>.

package gamepad_test

import (
	"bytes"
	"testing"

	"github.com/candera/falconpanel/hardware/gamepad"
	"github.com/candera/falconpanel/test"
)

func TestScale16(t *testing.T) {
	test.ExpectEquality(t, gamepad.Scale16(0.0), int16(-32768))
	test.ExpectEquality(t, gamepad.Scale16(1.0), int16(32767))
	test.ExpectEquality(t, gamepad.Scale16(0.5), int16(-1))
}

func TestScale8(t *testing.T) {
	test.ExpectEquality(t, gamepad.Scale8(0.0), int8(-128))
	test.ExpectEquality(t, gamepad.Scale8(1.0), int8(127))
	test.ExpectEquality(t, gamepad.Scale8(0.5), int8(-1))
}

func TestReportLayout(t *testing.T) {
	s := gamepad.State{
		Buttons: 0x80000001,
		Axes: [gamepad.NumAxes]float32{
			gamepad.X:  0.0,
			gamepad.Y:  1.0,
			gamepad.Z:  1.0,
			gamepad.RX: 0.0,
			gamepad.RY: 1.0,
			gamepad.RZ: 0.0,
		},
	}

	b := s.Report()
	test.DemandEquality(t, len(b), gamepad.ReportLength)

	expected := []byte{
		0x01, 0x00, 0x00, 0x80, // buttons
		0x00, 0x80, // X at minimum
		0xff, 0x7f, // Y at maximum
		0x00, 0x80, // RX at minimum
		0xff, 0x7f, // RY at maximum
		0x7f, // Z at maximum
		0x80, // RZ at minimum
	}
	test.ExpectSuccess(t, bytes.Equal(b, expected))
}

func TestStreamWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	wr := gamepad.NewStreamWriter(buf)

	err := wr.WriteReport(gamepad.State{Buttons: 0x00000004})
	test.DemandSuccess(t, err)
	err = wr.WriteReport(gamepad.State{})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, buf.Len(), 2*gamepad.ReportLength)
	test.ExpectEquality(t, buf.Bytes()[0], byte(0x04))
}
