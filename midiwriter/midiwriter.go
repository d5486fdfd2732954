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

// Package midiwriter delivers gamepad reports as MIDI messages, for driving
// music software or MIDI-mapped simulators from the panel. Buttons become
// note on/off events and axes become control change messages.
//
// The writer is stateful: only the difference between consecutive reports is
// sent, so an idle panel is silent on the wire.
package midiwriter

import (
	"github.com/candera/falconpanel/hardware/gamepad"
	"github.com/candera/falconpanel/logger"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// BaseNote is the note number for button 1. Button n maps to note
// BaseNote+n-1, placing all 32 buttons inside the 7-bit note range.
const BaseNote = 36

// BaseController is the control change number for the X axis. The remaining
// axes follow in gamepad.AxisID order.
const BaseController = 16

// Channel is the MIDI channel all messages are sent on.
const Channel = 0

// MIDIWriter implements the gamepad.Writer interface over a MIDI send
// function.
type MIDIWriter struct {
	send func(msg gomidi.Message) error

	last  gamepad.State
	first bool
}

// NewMIDIWriter is the preferred method of initialisation for the MIDIWriter
// type when the caller already has a send function. Useful for testing; most
// callers want NewPortWriter.
func NewMIDIWriter(send func(msg gomidi.Message) error) *MIDIWriter {
	return &MIDIWriter{
		send:  send,
		first: true,
	}
}

// NewPortWriter opens the specified MIDI output port and returns a MIDIWriter
// sending to it.
func NewPortWriter(out drivers.Out) (*MIDIWriter, error) {
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, err
	}

	logger.Logf("midi", "sending to %s", out.String())

	return NewMIDIWriter(send), nil
}

// WriteReport implements the gamepad.Writer interface. The first report
// establishes a baseline: every pressed button and every axis is sent. Later
// reports send only what changed.
func (wr *MIDIWriter) WriteReport(s gamepad.State) error {
	changed := s.Buttons ^ wr.last.Buttons

	for num := 1; num <= gamepad.NumButtons; num++ {
		mask := uint32(1) << (num - 1)
		if changed&mask == 0 && !wr.first {
			continue
		}

		note := uint8(BaseNote + num - 1)
		var msg gomidi.Message
		if s.Buttons&mask != 0 {
			msg = gomidi.NoteOn(Channel, note, 127)
		} else if !wr.first {
			msg = gomidi.NoteOff(Channel, note)
		} else {
			// no point announcing a released button in the baseline
			continue
		}

		if err := wr.send(msg); err != nil {
			return err
		}
	}

	for id := gamepad.AxisID(0); id < gamepad.NumAxes; id++ {
		if s.Axes[id] == wr.last.Axes[id] && !wr.first {
			continue
		}

		cc := uint8(BaseController + int(id))
		val := uint8(s.Axes[id] * 127)
		if err := wr.send(gomidi.ControlChange(Channel, cc, val)); err != nil {
			return err
		}
	}

	wr.last = s
	wr.first = false
	return nil
}
