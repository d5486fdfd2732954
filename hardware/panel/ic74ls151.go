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

// Sentinel error returned by IC74LS151.Input().
const MuxAddressError = "mux: address not in range 0 to 7: %d"

// IC74LS151 is support for the 74LS151 3-to-8 multiplexer, which lets eight
// physical inputs share a single input line. The three address outputs and
// the shared input line are owned exclusively by the multiplexer; other
// components see only the virtual inputs handed out by Input().
//
// A virtual input drives the address lines and then immediately samples the
// shared line, with no settling delay. Because all reads happen
// cooperatively on the one scheduler thread two virtual reads can never
// interleave their address-write/sample pairs.
type IC74LS151 struct {
	addr0 pins.Output
	addr1 pins.Output
	addr2 pins.Output
	in    pins.Digital
}

// NewIC74LS151 is the preferred method of initialisation for the IC74LS151
// type.
func NewIC74LS151(addr0, addr1, addr2 pins.Output, in pins.Digital) *IC74LS151 {
	return &IC74LS151{
		addr0: addr0,
		addr1: addr1,
		addr2: addr2,
		in:    in,
	}
}

// Setup implements the Component interface.
func (mux *IC74LS151) Setup() {
	mux.addr0.Setup()
	mux.addr1.Setup()
	mux.addr2.Setup()
	mux.in.Setup()
}

// Update implements the Component interface. The multiplexer has no
// periodic work of its own.
func (mux *IC74LS151) Update() {
}

func (mux *IC74LS151) read(addr0, addr1, addr2 bool) bool {
	mux.addr0.Write(addr0)
	mux.addr1.Write(addr1)
	mux.addr2.Write(addr2)
	return mux.in.Read()
}

// Input returns the virtual input line for the specified address. Addresses
// outside the range 0 to 7 are a configuration error.
func (mux *IC74LS151) Input(addr int) (pins.Digital, error) {
	if addr < 0 || addr > 7 {
		return nil, curated.Errorf(MuxAddressError, addr)
	}

	return &muxInput{
		mux:   mux,
		addr0: addr&0x01 == 0x01,
		addr1: addr&0x02 == 0x02,
		addr2: addr&0x04 == 0x04,
	}, nil
}

// muxInput adapts one multiplexer address to another component by satisfying
// the pins.Digital interface.
type muxInput struct {
	mux   *IC74LS151
	addr0 bool
	addr1 bool
	addr2 bool
}

// Setup implements the pins.Digital interface. The underlying lines are
// prepared by the multiplexer's own Setup().
func (in *muxInput) Setup() {
}

// Read implements the pins.Digital interface.
func (in *muxInput) Read() bool {
	return in.mux.read(in.addr0, in.addr1, in.addr2)
}
