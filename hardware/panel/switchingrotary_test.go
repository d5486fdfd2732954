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

	"github.com/candera/falconpanel/hardware/panel"
	"github.com/candera/falconpanel/hardware/pins"
	"github.com/candera/falconpanel/test"
)

func TestSwitchingRotaryCrossing(t *testing.T) {
	in := &pins.MemoryAnalog{}
	axis := &recordAxis{}
	buttonOn := &recordButton{}
	buttonOff := &recordButton{}

	rot := panel.NewSwitchingRotary(in, axis, buttonOn, buttonOff, 0.2)
	rot.Setup()

	// below the threshold: no events, axis at zero
	in.Set(0.1)
	rot.Update()
	test.ExpectEquality(t, buttonOn.presses, 0)
	test.ExpectEquality(t, buttonOff.presses, 0)
	test.ExpectEquality(t, axis.val, 0.0)

	// crossing up fires the on button and rescales the axis
	in.Set(0.3)
	rot.Update()
	test.ExpectEquality(t, buttonOn.presses, 1)
	test.ExpectEquality(t, buttonOff.releases, 1)
	test.ExpectApproximate(t, axis.val, 0.125, 0.001)

	// crossing back down fires the off button
	in.Set(0.1)
	rot.Update()
	test.ExpectEquality(t, buttonOn.releases, 1)
	test.ExpectEquality(t, buttonOff.presses, 1)
	test.ExpectEquality(t, axis.val, 0.0)

	// one press each for the whole excursion
	test.ExpectEquality(t, buttonOn.presses, 1)
	test.ExpectEquality(t, buttonOff.presses, 1)
}

func TestSwitchingRotarySteadyState(t *testing.T) {
	in := &pins.MemoryAnalog{}
	axis := &recordAxis{}
	buttonOn := &recordButton{}
	buttonOff := &recordButton{}

	rot := panel.NewSwitchingRotary(in, axis, buttonOn, buttonOff, 0.2)
	rot.Setup()

	// a value holding above the threshold fires the crossing once
	in.Set(0.6)
	for i := 0; i < 10; i++ {
		rot.Update()
	}
	test.ExpectEquality(t, buttonOn.presses, 1)
	test.ExpectApproximate(t, axis.val, 0.5, 0.001)

	// the axis is reported every tick regardless
	test.ExpectEquality(t, axis.reports, 10)

	// button updates happen every tick too
	test.ExpectEquality(t, buttonOn.updates, 10)
	test.ExpectEquality(t, buttonOff.updates, 10)
}

func TestSwitchingRotaryThresholdClamp(t *testing.T) {
	in := &pins.MemoryAnalog{}
	axis := &recordAxis{}
	buttonOn := &recordButton{}
	buttonOff := &recordButton{}

	// an out-of-range threshold is clamped, not rejected
	rot := panel.NewSwitchingRotary(in, axis, buttonOn, buttonOff, 1.5)
	rot.Setup()

	// with the threshold clamped to 1.0 there is no range left to scale
	// over. a maximum reading reports a full axis
	in.Set(1.0)
	rot.Update()
	test.ExpectEquality(t, buttonOn.presses, 1)
	test.ExpectEquality(t, axis.val, 1.0)
}
