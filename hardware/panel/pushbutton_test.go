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

func TestPushButton(t *testing.T) {
	in := pins.NewMemoryDigital()
	button := &recordButton{}

	pb := panel.NewPushButton(in, button)
	pb.Setup()

	// the line idles high so the button is released every tick, not just on
	// the change of state
	pb.Update()
	pb.Update()
	test.ExpectEquality(t, button.pressed, false)
	test.ExpectEquality(t, button.releases, 2)

	// held down
	in.Set(false)
	pb.Update()
	pb.Update()
	test.ExpectEquality(t, button.pressed, true)
	test.ExpectEquality(t, button.presses, 2)

	in.Set(true)
	pb.Update()
	test.ExpectEquality(t, button.pressed, false)
}

func TestPushButtonMomentary(t *testing.T) {
	in := pins.NewMemoryDigital()
	button := &recordButton{}

	// a pushbutton wrapped in a momentary would release early if the
	// repeated presses did not rearm the countdown. they do: a held
	// pushbutton stays pressed past the momentary duration
	pb := panel.NewPushButton(in, panel.NewMomentary(button, 2))
	pb.Setup()

	in.Set(false)
	for i := 0; i < 5; i++ {
		pb.Update()
	}
	test.ExpectEquality(t, button.pressed, true)
}
