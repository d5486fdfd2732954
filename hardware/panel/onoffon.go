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

// OnOffOnSwitch models a physical, non-momentary, three-position switch
// which generates presses of three buttons corresponding to each position.
//
// Both inputs are active-low. The up input takes priority: if both wires
// read active at once, which only happens with a wiring fault, the switch is
// reported as up. Neither active means middle.
type OnOffOnSwitch struct {
	inUp         pins.Digital
	inDown       pins.Digital
	buttonUp     Button
	buttonMiddle Button
	buttonDown   Button
	last         position
}

// NewOnOffOnSwitch is the preferred method of initialisation for the
// OnOffOnSwitch type.
func NewOnOffOnSwitch(inUp, inDown pins.Digital, buttonUp, buttonMiddle, buttonDown Button) *OnOffOnSwitch {
	return &OnOffOnSwitch{
		inUp:         inUp,
		inDown:       inDown,
		buttonUp:     buttonUp,
		buttonMiddle: buttonMiddle,
		buttonDown:   buttonDown,
		last:         none,
	}
}

// Setup implements the Component interface.
func (sw *OnOffOnSwitch) Setup() {
	sw.inUp.Setup()
	sw.inDown.Setup()
}

// Update implements the Component interface.
func (sw *OnOffOnSwitch) Update() {
	sw.buttonUp.Update()
	sw.buttonMiddle.Update()
	sw.buttonDown.Update()

	var current position
	if !sw.inUp.Read() {
		current = up
	} else if !sw.inDown.Read() {
		current = down
	} else {
		current = middle
	}

	if current != sw.last {
		SetButton(sw.buttonUp, current == up)
		SetButton(sw.buttonMiddle, current == middle)
		SetButton(sw.buttonDown, current == down)
		sw.last = current
	}
}
