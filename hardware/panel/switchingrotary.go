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

// SwitchingRotary adapts a simple potentiometer into an axis and two
// buttons. The buttons are pressed as the potentiometer passes through a
// configurable threshold, one in the on direction and one in the off
// direction.
//
// The crossing comparison is directional rather than banded. A sample
// exactly equal to the threshold counts as a crossing in whichever direction
// the previous sample approached from, and as no crossing at all when the
// previous sample was also at the threshold. Be aware of this when choosing
// a threshold that a dirty potentiometer can sit on.
//
// The axis reports the post-threshold range rescaled to 0.0 at the
// threshold and 1.0 at the maximum, and exactly 0.0 below the threshold.
type SwitchingRotary struct {
	in        pins.Analog
	axis      Axis
	buttonOn  Button
	buttonOff Button
	threshold float32
	last      float32
}

// NewSwitchingRotary is the preferred method of initialisation for the
// SwitchingRotary type. The threshold is clamped to the range 0.0 to 1.0.
func NewSwitchingRotary(in pins.Analog, axis Axis, buttonOn, buttonOff Button, threshold float32) *SwitchingRotary {
	if threshold < 0.0 {
		threshold = 0.0
	} else if threshold > 1.0 {
		threshold = 1.0
	}

	return &SwitchingRotary{
		in:        in,
		axis:      axis,
		buttonOn:  buttonOn,
		buttonOff: buttonOff,
		threshold: threshold,

		// a sentinel below any valid reading, forcing the first tick to
		// look like an approach from below
		last: -1.0,
	}
}

// Setup implements the Component interface.
func (rot *SwitchingRotary) Setup() {
	rot.in.Setup()
}

// Update implements the Component interface.
func (rot *SwitchingRotary) Update() {
	rot.buttonOn.Update()
	rot.buttonOff.Update()

	val := rot.in.Read()

	if val >= rot.threshold && rot.last < rot.threshold {
		rot.buttonOn.Press()
		rot.buttonOff.Release()
	} else if val <= rot.threshold && rot.last > rot.threshold {
		rot.buttonOn.Release()
		rot.buttonOff.Press()
	}

	if val >= rot.threshold {
		// scale the reported value from 0.0 at the threshold to 1.0 at
		// the maximum. a threshold of exactly 1.0 leaves no range to
		// scale over
		d := 1.0 - rot.threshold
		if d > 0 {
			rot.axis.Report((val - rot.threshold) / d)
		} else {
			rot.axis.Report(1.0)
		}
	} else {
		rot.axis.Report(0.0)
	}

	rot.last = val
}
