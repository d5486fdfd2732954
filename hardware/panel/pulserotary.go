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
	"github.com/candera/falconpanel/curated"
	"github.com/candera/falconpanel/hardware/pins"
)

// Sentinel error returned by NewPulseRotary().
const DivisionsError = "pulse rotary: divisions must be greater than zero: %d"

// a window is an inclusive band of potentiometer readings. the contains
// test also works for the empty window: no reading in the valid 0.0 to 1.0
// range falls inside it.
type window struct {
	low  float32
	high float32
}

func (w window) contains(val float32) bool {
	return val >= w.low && val <= w.high
}

var noWindow = window{low: -1.0, high: -1.0}

// PulseRotary adapts a 360-degree potentiometer into two buttons that fire
// as the knob is turned, one pulsing for clockwise motion and one for
// counterclockwise.
//
// The potentiometer wraps from a reading of 1.0 back to 0.0 as the knob
// passes its starting orientation. Direction is therefore decided with
// windows rather than simple comparison: from the current home reading, a
// band of readings ahead of home means the knob moved clockwise and a band
// behind it means counterclockwise, with each band truncated at the reading
// diametrically opposite home. A band that would cross the 0.0/1.0 seam is
// split into two disjoint windows instead, so a single step over the seam is
// detected no matter where home sits on the circle.
//
// A reading inside a window becomes one pending pulse and the home reading
// moves to the new position. Pending pulses are expressed at one pulse per
// two ticks (see pulseQueue).
type PulseRotary struct {
	in         pins.Analog
	buttonUp   Button
	buttonDown Button

	stepSize float32
	last     float32

	nextUp   [2]window
	nextDown [2]window

	pulses pulseQueue
}

// NewPulseRotary is the preferred method of initialisation for the
// PulseRotary type. The divisions argument is the number of detents in a
// full rotation and must be greater than zero.
func NewPulseRotary(in pins.Analog, buttonUp, buttonDown Button, divisions int) (*PulseRotary, error) {
	if divisions <= 0 {
		return nil, curated.Errorf(DivisionsError, divisions)
	}

	rot := &PulseRotary{
		in:         in,
		buttonUp:   buttonUp,
		buttonDown: buttonDown,
		stepSize:   1.0 / float32(divisions),
	}
	rot.updateWindows()

	return rot, nil
}

// Setup implements the Component interface.
func (rot *PulseRotary) Setup() {
	rot.in.Setup()
}

// updateWindows recomputes the trigger windows around the current home
// reading. Positions near 0.0, near 1.0, and either side of the midpoint
// are special-cased so that no window ever crosses the 0.0/1.0 seam.
func (rot *PulseRotary) updateWindows() {
	last := rot.last
	step := rot.stepSize

	opposite := last + 0.5
	if opposite >= 1.0 {
		opposite -= 1.0
	}

	switch {
	case last <= step:
		// home just above the seam. one step back is reached by wrapping
		rot.nextUp[0] = window{low: last + step, high: opposite}
		rot.nextUp[1] = noWindow
		rot.nextDown[0] = window{low: opposite, high: last - step + 1.0}
		rot.nextDown[1] = noWindow

	case last >= 1.0-step:
		// home just below the seam. one step forward wraps
		rot.nextUp[0] = window{low: last + step - 1.0, high: opposite}
		rot.nextUp[1] = noWindow
		rot.nextDown[0] = window{low: opposite, high: last - step}
		rot.nextDown[1] = noWindow

	case last >= 0.5-step && last <= 0.5:
		// home just below the midpoint. the down band, which runs from
		// opposite back to one step behind home, crosses the seam and is
		// split in two
		rot.nextUp[0] = window{low: last + step, high: opposite}
		rot.nextUp[1] = noWindow
		rot.nextDown[0] = window{low: 0.0, high: last - step}
		rot.nextDown[1] = window{low: opposite, high: 1.0}

	case last >= 0.5 && last <= 0.5+step:
		// home just above the midpoint. the up band crosses the seam
		rot.nextUp[0] = window{low: last + step, high: 1.0}
		rot.nextUp[1] = window{low: 0.0, high: opposite}
		rot.nextDown[0] = window{low: opposite, high: last - step}
		rot.nextDown[1] = noWindow

	case last <= 0.5:
		// home in the first half of the rotation
		rot.nextUp[0] = window{low: last + step, high: opposite}
		rot.nextUp[1] = noWindow
		rot.nextDown[0] = window{low: 0.0, high: last - step}
		rot.nextDown[1] = window{low: opposite, high: 1.0}

	default:
		// home in the second half of the rotation
		rot.nextUp[0] = window{low: last + step, high: 1.0}
		rot.nextUp[1] = window{low: 0.0, high: opposite}
		rot.nextDown[0] = window{low: opposite, high: last - step}
		rot.nextDown[1] = noWindow
	}
}

// Update implements the Component interface.
func (rot *PulseRotary) Update() {
	rot.buttonUp.Update()
	rot.buttonDown.Update()

	val := rot.in.Read()

	if rot.nextDown[0].contains(val) || rot.nextDown[1].contains(val) {
		rot.pulses.enqueueDown()
		rot.last = val
		rot.updateWindows()
	} else if rot.nextUp[0].contains(val) || rot.nextUp[1].contains(val) {
		rot.pulses.enqueueUp()
		rot.last = val
		rot.updateWindows()
	}

	rot.pulses.step(rot.buttonUp, rot.buttonDown)
}
