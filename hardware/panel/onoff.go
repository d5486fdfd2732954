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

// switch positions. none is the initial value of the last-position field,
// guaranteeing that the first tick always looks like a change of state.
type position int

const (
	up position = iota
	middle
	down
	none position = -1
)

// OnOffSwitch models a physical, non-momentary, two-position switch that
// generates presses of two different buttons.
//
// The input is active-low: a false sample means the switch is in the up
// position. Output is edge-triggered; an unchanged position produces no
// press or release calls, though both buttons still receive their periodic
// Update() so that a decorated button's countdown keeps running.
type OnOffSwitch struct {
	in         pins.Digital
	buttonUp   Button
	buttonDown Button
	last       position
}

// NewOnOffSwitch is the preferred method of initialisation for the
// OnOffSwitch type.
func NewOnOffSwitch(in pins.Digital, buttonUp, buttonDown Button) *OnOffSwitch {
	return &OnOffSwitch{
		in:         in,
		buttonUp:   buttonUp,
		buttonDown: buttonDown,
		last:       none,
	}
}

// Setup implements the Component interface.
func (sw *OnOffSwitch) Setup() {
	sw.in.Setup()
}

// Update implements the Component interface.
func (sw *OnOffSwitch) Update() {
	sw.buttonUp.Update()
	sw.buttonDown.Update()

	var current position
	if !sw.in.Read() {
		current = up
	} else {
		current = down
	}

	if current != sw.last {
		SetButton(sw.buttonUp, current == up)
		SetButton(sw.buttonDown, current == down)
		sw.last = current
	}
}
