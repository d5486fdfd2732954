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

func TestOnOffSwitchFirstTick(t *testing.T) {
	in := pins.NewMemoryDigital()
	buttonUp := &recordButton{}
	buttonDown := &recordButton{}

	sw := panel.NewOnOffSwitch(in, buttonUp, buttonDown)
	sw.Setup()

	// the pin reads true (open, pulled-up) so the switch is down. even an
	// unmoved switch produces a state change on the very first tick
	sw.Update()
	test.ExpectEquality(t, buttonDown.pressed, true)
	test.ExpectEquality(t, buttonDown.presses, 1)
	test.ExpectEquality(t, buttonUp.releases, 1)
}

func TestOnOffSwitchDebounce(t *testing.T) {
	in := pins.NewMemoryDigital()
	buttonUp := &recordButton{}
	buttonDown := &recordButton{}

	sw := panel.NewOnOffSwitch(in, buttonUp, buttonDown)
	sw.Setup()

	// an unchanged pin produces exactly one activation, on the first tick
	for i := 0; i < 10; i++ {
		sw.Update()
	}
	test.ExpectEquality(t, buttonDown.presses, 1)
	test.ExpectEquality(t, buttonUp.presses, 0)
	test.ExpectEquality(t, buttonUp.releases, 1)

	// but both buttons still get their periodic update on every tick
	test.ExpectEquality(t, buttonUp.updates, 10)
	test.ExpectEquality(t, buttonDown.updates, 10)
}

func TestOnOffSwitchTransition(t *testing.T) {
	in := pins.NewMemoryDigital()
	buttonUp := &recordButton{}
	buttonDown := &recordButton{}

	sw := panel.NewOnOffSwitch(in, buttonUp, buttonDown)
	sw.Setup()
	sw.Update()
	test.DemandEquality(t, buttonDown.pressed, true)

	// closing the switch grounds the pin. active-low means up
	in.Set(false)
	sw.Update()
	test.ExpectEquality(t, buttonUp.pressed, true)
	test.ExpectEquality(t, buttonDown.pressed, false)
	test.ExpectEquality(t, buttonUp.presses, 1)
	test.ExpectEquality(t, buttonDown.releases, 1)

	// and back again
	in.Set(true)
	sw.Update()
	test.ExpectEquality(t, buttonUp.pressed, false)
	test.ExpectEquality(t, buttonDown.pressed, true)
	test.ExpectEquality(t, buttonDown.presses, 2)
}

func TestOnOffOnSwitchPositions(t *testing.T) {
	inUp := pins.NewMemoryDigital()
	inDown := pins.NewMemoryDigital()
	buttonUp := &recordButton{}
	buttonMiddle := &recordButton{}
	buttonDown := &recordButton{}

	sw := panel.NewOnOffOnSwitch(inUp, inDown, buttonUp, buttonMiddle, buttonDown)
	sw.Setup()

	// neither wire active: middle
	sw.Update()
	test.ExpectEquality(t, buttonMiddle.pressed, true)
	test.ExpectEquality(t, buttonUp.pressed, false)
	test.ExpectEquality(t, buttonDown.pressed, false)

	// up wire active
	inUp.Set(false)
	sw.Update()
	test.ExpectEquality(t, buttonUp.pressed, true)
	test.ExpectEquality(t, buttonMiddle.pressed, false)

	// down wire active
	inUp.Set(true)
	inDown.Set(false)
	sw.Update()
	test.ExpectEquality(t, buttonDown.pressed, true)
	test.ExpectEquality(t, buttonUp.pressed, false)
	test.ExpectEquality(t, buttonMiddle.pressed, false)
}

func TestOnOffOnSwitchPriority(t *testing.T) {
	inUp := pins.NewMemoryDigital()
	inDown := pins.NewMemoryDigital()
	buttonUp := &recordButton{}
	buttonMiddle := &recordButton{}
	buttonDown := &recordButton{}

	sw := panel.NewOnOffOnSwitch(inUp, inDown, buttonUp, buttonMiddle, buttonDown)
	sw.Setup()

	// both wires active at once is a wiring fault. up wins
	inUp.Set(false)
	inDown.Set(false)
	sw.Update()
	test.ExpectEquality(t, buttonUp.pressed, true)
	test.ExpectEquality(t, buttonDown.pressed, false)
}

func TestOnOffSwitchMomentaryAdvances(t *testing.T) {
	in := pins.NewMemoryDigital()
	inner := &recordButton{}
	buttonDown := panel.NewMomentary(inner, 2)
	buttonUp := &recordButton{}

	sw := panel.NewOnOffSwitch(in, buttonUp, buttonDown)
	sw.Setup()

	// first tick: down pressed through the decorator
	sw.Update()
	test.DemandEquality(t, inner.pressed, true)

	// no further switch motion, but the decorator countdown still runs
	// because the switch updates its buttons every tick
	sw.Update()
	sw.Update()
	test.ExpectEquality(t, inner.pressed, false)
	test.ExpectEquality(t, inner.releases, 1)
}
