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

package pins_test

import (
	"testing"

	"github.com/candera/falconpanel/hardware/pins"
	"github.com/candera/falconpanel/test"
)

func TestMemoryDigitalPullup(t *testing.T) {
	p := pins.NewMemoryDigital()
	test.ExpectEquality(t, p.Read(), true)

	p.Set(false)
	test.ExpectEquality(t, p.Read(), false)

	// Setup() returns the pin to its pullup value
	p.Setup()
	test.ExpectEquality(t, p.Read(), true)
}

func TestMemoryBank(t *testing.T) {
	bank := pins.NewMemoryBank()

	// the same name always resolves to the same pin
	a, err := bank.Digital("gear")
	test.DemandSuccess(t, err)
	b, err := bank.Digital("gear")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, a == b)

	// the driving side sees the same pin under its name
	bank.FindDigital("gear").Set(false)
	test.ExpectEquality(t, a.Read(), false)

	// unrequested pins don't exist
	test.ExpectSuccess(t, bank.FindDigital("flaps") == nil)
	test.ExpectSuccess(t, bank.FindAnalog("fuel") == nil)

	an, err := bank.Analog("fuel")
	test.DemandSuccess(t, err)
	bank.FindAnalog("fuel").Set(0.5)
	test.ExpectEquality(t, an.Read(), float32(0.5))

	test.ExpectEquality(t, len(bank.DigitalNames()), 1)
	test.ExpectEquality(t, len(bank.AnalogNames()), 1)
}
