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

// Package sdljoy backs pins with the controls of an SDL joystick, letting a
// desktop gamepad or USB button box stand in for panel wiring. Pin names
// take the forms "button:N" and "axis:N".
//
// A joystick button reads active-low, matching a switch on a pulled-up
// line: pressed is false. An axis reads normalized to the range 0.0 to 1.0.
//
// Output pins have nowhere to go on a joystick and resolve to in-memory
// pins, so layouts that declare a multiplexer still build; the address
// lines simply drive nothing.
package sdljoy

import (
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/candera/falconpanel/curated"
	"github.com/candera/falconpanel/hardware/pins"
	"github.com/candera/falconpanel/logger"
)

// Sentinel errors returned by the sdljoy package.
const (
	NoJoystickError = "sdljoy: no joystick at index %d"
	NoControlError  = "sdljoy: no such control: %s"
)

// Source hands out pins backed by one joystick. It implements the pin
// source interface of the layout package and also the panel Component
// interface: its Update() polls the joystick state once per tick, before
// the components holding its pins read them.
type Source struct {
	joy *sdl.Joystick
}

// NewSource opens the joystick at the specified SDL index.
func NewSource(index int) (*Source, error) {
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		return nil, curated.Errorf("sdljoy: %v", err)
	}

	if index < 0 || index >= sdl.NumJoysticks() {
		return nil, curated.Errorf(NoJoystickError, index)
	}

	joy := sdl.JoystickOpen(index)
	if joy == nil || !joy.Attached() {
		return nil, curated.Errorf(NoJoystickError, index)
	}

	logger.Logf("sdl", "joystick: %s", joy.Name())
	logger.Logf("sdl", "%d axes, %d buttons", joy.NumAxes(), joy.NumButtons())

	return &Source{joy: joy}, nil
}

// Close the joystick.
func (src *Source) Close() error {
	src.joy.Close()
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
	return nil
}

// Setup implements the panel Component interface.
func (src *Source) Setup() {
	sdl.JoystickUpdate()
}

// Update implements the panel Component interface.
func (src *Source) Update() {
	sdl.JoystickUpdate()
}

func control(name string, kind string, limit int) (int, error) {
	rest, ok := strings.CutPrefix(name, kind+":")
	if !ok {
		return 0, curated.Errorf(NoControlError, name)
	}

	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 0 || idx >= limit {
		return 0, curated.Errorf(NoControlError, name)
	}

	return idx, nil
}

// Digital returns the pin for the named button.
func (src *Source) Digital(name string) (pins.Digital, error) {
	idx, err := control(name, "button", src.joy.NumButtons())
	if err != nil {
		return nil, err
	}
	return &buttonPin{joy: src.joy, idx: idx}, nil
}

// Analog returns the pin for the named axis.
func (src *Source) Analog(name string) (pins.Analog, error) {
	idx, err := control(name, "axis", src.joy.NumAxes())
	if err != nil {
		return nil, err
	}
	return &axisPin{joy: src.joy, idx: idx}, nil
}

// Output returns an in-memory stand-in for the named output.
func (src *Source) Output(name string) (pins.Output, error) {
	return &pins.MemoryOutput{}, nil
}

type buttonPin struct {
	joy *sdl.Joystick
	idx int
}

func (p *buttonPin) Setup() {
}

// Read implements the pins.Digital interface. Pressed is false.
func (p *buttonPin) Read() bool {
	return p.joy.Button(p.idx) == 0
}

type axisPin struct {
	joy *sdl.Joystick
	idx int
}

func (p *axisPin) Setup() {
}

// Read implements the pins.Analog interface.
func (p *axisPin) Read() float32 {
	return (float32(p.joy.Axis(p.idx)) + 32768.0) / 65535.0
}
