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

package midiwriter_test

import (
	"testing"

	"github.com/candera/falconpanel/hardware/gamepad"
	"github.com/candera/falconpanel/midiwriter"
	"github.com/candera/falconpanel/test"

	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestMIDIWriterBaseline(t *testing.T) {
	sent := make([]gomidi.Message, 0)
	wr := midiwriter.NewMIDIWriter(func(msg gomidi.Message) error {
		sent = append(sent, msg)
		return nil
	})

	s := gamepad.State{Buttons: 0x00000001}
	s.Axes[gamepad.X] = 1.0

	err := wr.WriteReport(s)
	test.DemandSuccess(t, err)

	// the baseline carries the one pressed button and all six axes
	test.DemandEquality(t, len(sent), 7)

	var ch, key, vel uint8
	test.ExpectSuccess(t, sent[0].GetNoteOn(&ch, &key, &vel))
	test.ExpectEquality(t, key, uint8(midiwriter.BaseNote))
	test.ExpectEquality(t, vel, uint8(127))

	var cc, val uint8
	test.ExpectSuccess(t, sent[1].GetControlChange(&ch, &cc, &val))
	test.ExpectEquality(t, cc, uint8(midiwriter.BaseController))
	test.ExpectEquality(t, val, uint8(127))
}

func TestMIDIWriterDelta(t *testing.T) {
	sent := make([]gomidi.Message, 0)
	wr := midiwriter.NewMIDIWriter(func(msg gomidi.Message) error {
		sent = append(sent, msg)
		return nil
	})

	err := wr.WriteReport(gamepad.State{})
	test.DemandSuccess(t, err)
	baseline := len(sent)
	test.ExpectEquality(t, baseline, int(gamepad.NumAxes))

	// an unchanged report is silent
	err = wr.WriteReport(gamepad.State{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(sent), baseline)

	// button 3 down
	err = wr.WriteReport(gamepad.State{Buttons: 0x00000004})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(sent), baseline+1)

	var ch, key, vel uint8
	test.ExpectSuccess(t, sent[baseline].GetNoteOn(&ch, &key, &vel))
	test.ExpectEquality(t, key, uint8(midiwriter.BaseNote+2))

	// button 3 up again
	err = wr.WriteReport(gamepad.State{})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(sent), baseline+2)
	test.ExpectSuccess(t, sent[baseline+1].GetNoteOff(&ch, &key, &vel))
	test.ExpectEquality(t, key, uint8(midiwriter.BaseNote+2))
}

func TestMIDIWriterAxisDelta(t *testing.T) {
	sent := make([]gomidi.Message, 0)
	wr := midiwriter.NewMIDIWriter(func(msg gomidi.Message) error {
		sent = append(sent, msg)
		return nil
	})

	err := wr.WriteReport(gamepad.State{})
	test.DemandSuccess(t, err)
	baseline := len(sent)

	s := gamepad.State{}
	s.Axes[gamepad.RZ] = 0.5
	err = wr.WriteReport(s)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(sent), baseline+1)

	var ch, cc, val uint8
	test.ExpectSuccess(t, sent[baseline].GetControlChange(&ch, &cc, &val))
	test.ExpectEquality(t, cc, uint8(midiwriter.BaseController+int(gamepad.RZ)))
	test.ExpectEquality(t, val, uint8(63))
}
