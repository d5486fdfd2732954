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

package panel_test

import (
	"testing"

	"github.com/candera/falconpanel/curated"
	"github.com/candera/falconpanel/hardware/panel"
	"github.com/candera/falconpanel/hardware/pins"
	"github.com/candera/falconpanel/test"
)

func TestPulseRotaryBadDivisions(t *testing.T) {
	in := &pins.MemoryAnalog{}
	buttonUp := &recordButton{}
	buttonDown := &recordButton{}

	_, err := panel.NewPulseRotary(in, buttonUp, buttonDown, 0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, panel.DivisionsError))

	_, err = panel.NewPulseRotary(in, buttonUp, buttonDown, -5)
	test.ExpectFailure(t, err)
}

func TestPulseRotaryStep(t *testing.T) {
	in := &pins.MemoryAnalog{}
	buttonUp := &recordButton{}
	buttonDown := &recordButton{}

	rot, err := panel.NewPulseRotary(in, buttonUp, buttonDown, 10)
	test.DemandSuccess(t, err)
	rot.Setup()

	// home starts at zero. a reading one and a half steps clockwise is
	// one pulse: pressed on this tick, released on the next
	in.Set(0.15)
	rot.Update()
	test.ExpectEquality(t, buttonUp.presses, 1)
	test.ExpectEquality(t, buttonUp.pressed, true)

	rot.Update()
	test.ExpectEquality(t, buttonUp.pressed, false)
	test.ExpectEquality(t, buttonUp.releases, 1)

	// the knob has not moved again. no further pulses
	rot.Update()
	rot.Update()
	test.ExpectEquality(t, buttonUp.presses, 1)
	test.ExpectEquality(t, buttonDown.presses, 0)
}

func TestPulseRotaryCounterclockwise(t *testing.T) {
	in := &pins.MemoryAnalog{}
	buttonUp := &recordButton{}
	buttonDown := &recordButton{}

	rot, err := panel.NewPulseRotary(in, buttonUp, buttonDown, 10)
	test.DemandSuccess(t, err)
	rot.Setup()

	// from home at zero, a reading most of the way around the circle is
	// a counterclockwise step
	in.Set(0.85)
	rot.Update()
	test.ExpectEquality(t, buttonDown.presses, 1)
	test.ExpectEquality(t, buttonUp.presses, 0)
}

func TestPulseRotaryWrap(t *testing.T) {
	in := &pins.MemoryAnalog{}
	buttonUp := &recordButton{}
	buttonDown := &recordButton{}

	rot, err := panel.NewPulseRotary(in, buttonUp, buttonDown, 10)
	test.DemandSuccess(t, err)
	rot.Setup()

	// move home into the second half of the rotation
	in.Set(0.85)
	rot.Update()
	test.DemandEquality(t, buttonDown.presses, 1)

	// a reading just past the 1.0/0.0 seam is clockwise motion, detected
	// through the wrapped window
	in.Set(0.02)
	rot.Update()
	test.ExpectEquality(t, buttonUp.presses, 1)
}

func TestPulseRotaryPacing(t *testing.T) {
	in := &pins.MemoryAnalog{}
	buttonUp := &recordButton{}
	buttonDown := &recordButton{}

	rot, err := panel.NewPulseRotary(in, buttonUp, buttonDown, 10)
	test.DemandSuccess(t, err)
	rot.Setup()

	// two clockwise steps on consecutive ticks
	in.Set(0.15)
	rot.Update()
	in.Set(0.30)
	rot.Update()

	// the first pulse pressed on tick one; tick two is its release even
	// though a second pulse is already pending
	test.ExpectEquality(t, buttonUp.presses, 1)
	test.ExpectEquality(t, buttonUp.releases, 1)

	// the second pulse is expressed over the next two ticks
	rot.Update()
	test.ExpectEquality(t, buttonUp.presses, 2)
	rot.Update()
	test.ExpectEquality(t, buttonUp.releases, 2)
}
