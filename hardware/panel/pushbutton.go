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

package panel

import (
	"github.com/candera/falconpanel/hardware/pins"
)

// PushButton models a physical, on-off, momentary pushbutton. The output
// button is pressed and released as the physical one is.
//
// The input is active-low: a false sample means the button is held down.
// Unlike the switch components the output is driven every tick, not just on
// a change of state. The report deduplicates so the repeated presses are
// harmless.
type PushButton struct {
	in     pins.Digital
	button Button
}

// NewPushButton is the preferred method of initialisation for the PushButton
// type.
func NewPushButton(in pins.Digital, button Button) *PushButton {
	return &PushButton{
		in:     in,
		button: button,
	}
}

// Setup implements the Component interface.
func (pb *PushButton) Setup() {
	pb.in.Setup()
}

// Update implements the Component interface.
func (pb *PushButton) Update() {
	pb.button.Update()

	if pb.in.Read() {
		pb.button.Release()
	} else {
		pb.button.Press()
	}
}
