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

// Package pins defines the capability interfaces between panel components
// and whatever is providing the physical signals. Components never touch
// hardware directly, they only ever see these three interfaces. That keeps
// every component testable with the in-memory implementations in this
// package.
//
// A Digital pin is conventionally wired active-low: a pullup resistor holds
// the line true and closing the switch pulls it false. Components that
// expect active-low wiring say so in their documentation.
package pins

// Digital is a source of boolean input. Might be an input pin with a pullup
// resistor, a joystick button, or a selection from a multiplexer.
type Digital interface {
	// one-time preparation of the underlying line
	Setup()

	Read() bool
}

// Analog is a source of analog input, normalized to the range 0.0 to 1.0
// inclusive.
type Analog interface {
	Setup()

	Read() float32
}

// Output is a place that can accept digital output. The multiplexer uses
// three of these for its address lines.
type Output interface {
	Setup()

	Write(val bool)
}
