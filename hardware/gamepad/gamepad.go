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

// Package gamepad accumulates the button and axis state written by panel
// components and delivers it, once per tick, to an attached Writer. It is
// the report side of the panel package's channel interfaces: Button() and
// Axis() hand out channels that address slots in the report.
//
// The report models a 32-button, 6-axis game controller. The X, Y, RX and
// RY axes carry 16 bits of precision and the Z and RZ axes 8 bits, a
// distinction that only matters to the packed encoding in report.go.
package gamepad

import (
	"fmt"
	"strings"

	"github.com/candera/falconpanel/curated"
	"github.com/candera/falconpanel/hardware/panel"
)

// Sentinel errors returned by the Button() and Axis() functions.
const (
	ButtonRangeError = "gamepad: button number not in range 1 to 32: %d"
	AxisRangeError   = "gamepad: no such axis: %d"
)

// NumButtons is the number of buttons in the report, numbered from 1.
const NumButtons = 32

// AxisID identifies one of the six axes in the report.
type AxisID int

// List of valid AxisID values.
const (
	X AxisID = iota
	Y
	Z
	RX
	RY
	RZ
	NumAxes
)

func (id AxisID) String() string {
	switch id {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case RX:
		return "RX"
	case RY:
		return "RY"
	case RZ:
		return "RZ"
	}
	return fmt.Sprintf("AxisID(%d)", int(id))
}

// State is a snapshot of the report: one bit per button, with button 1 in
// the least significant position, and one normalized value per axis.
type State struct {
	Buttons uint32
	Axes    [NumAxes]float32
}

// Writer implementations accept the flushed report state, once per tick.
// The writer is responsible for any final encoding.
type Writer interface {
	WriteReport(State) error
}

// Gamepad is the accumulated report state.
type Gamepad struct {
	state State
	out   Writer
}

// NewGamepad is the preferred method of initialisation for the Gamepad
// type. The Writer may be nil, in which case Flush() does nothing.
func NewGamepad(out Writer) *Gamepad {
	return &Gamepad{out: out}
}

func (pad *Gamepad) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("buttons=%08x", pad.state.Buttons))
	for id := AxisID(0); id < NumAxes; id++ {
		s.WriteString(fmt.Sprintf(" %s=%.3f", id, pad.state.Axes[id]))
	}
	return s.String()
}

// Snapshot returns a copy of the current report state.
func (pad *Gamepad) Snapshot() State {
	return pad.state
}

// Flush delivers the current report state to the attached Writer.
func (pad *Gamepad) Flush() error {
	if pad.out == nil {
		return nil
	}
	return pad.out.WriteReport(pad.state)
}

// Button returns the channel addressing the numbered button. Buttons are
// numbered from 1 to 32; anything else is a configuration error.
func (pad *Gamepad) Button(num int) (panel.Button, error) {
	if num < 1 || num > NumButtons {
		return nil, curated.Errorf(ButtonRangeError, num)
	}

	return &button{
		pad:  pad,
		mask: uint32(1) << (num - 1),
	}, nil
}

// Axis returns the channel addressing the identified axis.
func (pad *Gamepad) Axis(id AxisID) (panel.Axis, error) {
	if id < 0 || id >= NumAxes {
		return nil, curated.Errorf(AxisRangeError, int(id))
	}

	return &axis{
		pad: pad,
		id:  id,
	}, nil
}

// button addresses a single bit of the report's button state.
type button struct {
	pad  *Gamepad
	mask uint32
}

// Press implements the panel.Button interface.
func (b *button) Press() {
	b.pad.state.Buttons |= b.mask
}

// Release implements the panel.Button interface.
func (b *button) Release() {
	b.pad.state.Buttons &^= b.mask
}

// Update implements the panel.Button interface. An undecorated report
// button has no periodic work.
func (b *button) Update() {
}

// axis addresses a single axis value of the report.
type axis struct {
	pad *Gamepad
	id  AxisID
}

// Report implements the panel.Axis interface. Values outside the range 0.0
// to 1.0 are clamped, not rejected.
func (a *axis) Report(val float32) {
	if val < 0.0 {
		val = 0.0
	} else if val > 1.0 {
		val = 1.0
	}
	a.pad.state.Axes[a.id] = val
}
