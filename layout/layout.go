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

// Package layout turns a YAML description of a physical panel into a wired
// Panel. The description names the pins each component is connected to and
// the report buttons and axes it drives; pin names are resolved through a
// PinSource supplied by the caller, so the same layout file works with
// memory pins in the simulator and joystick pins on real hardware.
//
// A digital pin reference of the form "mux:addr" addresses a virtual input
// of a multiplexer declared in the muxes section.
package layout

import (
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/candera/falconpanel/curated"
	"github.com/candera/falconpanel/hardware/gamepad"
	"github.com/candera/falconpanel/hardware/panel"
	"github.com/candera/falconpanel/hardware/pins"
	"github.com/candera/falconpanel/logger"
)

// Sentinel errors returned by the Load() and Build() functions.
const (
	DecodeError        = "layout: %v"
	UnknownTypeError   = "layout: unknown component type: %s"
	UnknownAxisError   = "layout: unknown axis: %s"
	UnknownMuxError    = "layout: unknown mux: %s"
	DuplicateMuxError  = "layout: duplicate mux: %s"
	BadMuxAddressError = "layout: bad mux address: %s"
)

// Mux declares one 74LS151 multiplexer: three named output pins for the
// address lines and one named digital pin for the shared input line.
type Mux struct {
	Name  string `yaml:"name"`
	Addr0 string `yaml:"addr0"`
	Addr1 string `yaml:"addr1"`
	Addr2 string `yaml:"addr2"`
	Input string `yaml:"input"`
}

// Component declares one panel component. Which fields are meaningful
// depends on Type; unused fields are ignored.
type Component struct {
	Type string `yaml:"type"`

	// pin names, resolved through the PinSource
	Pin     string `yaml:"pin"`
	Pin1    string `yaml:"pin1"`
	Pin2    string `yaml:"pin2"`
	UpPin   string `yaml:"up-pin"`
	DownPin string `yaml:"down-pin"`

	// report button numbers (1 to 32)
	Button int `yaml:"button"`
	Up     int `yaml:"up"`
	Middle int `yaml:"middle"`
	Down   int `yaml:"down"`
	On     int `yaml:"on"`
	Off    int `yaml:"off"`

	// report axis name (X, Y, Z, RX, RY, RZ)
	Axis string `yaml:"axis"`

	// per-type scalars
	Threshold  float32 `yaml:"threshold"`
	Divisions  int     `yaml:"divisions"`
	QueueLimit int     `yaml:"queue-limit"`

	// if greater than zero, every button of this component is wrapped in a
	// Momentary with this duration
	Momentary int `yaml:"momentary"`
}

// Layout is the description of a complete panel.
type Layout struct {
	Muxes      []Mux       `yaml:"muxes"`
	Components []Component `yaml:"components"`
}

// PinSource resolves the pin names used in a layout. Implementations decide
// what a name means: a key on the simulator keyboard, a joystick control, a
// GPIO line.
type PinSource interface {
	Digital(name string) (pins.Digital, error)
	Analog(name string) (pins.Analog, error)
	Output(name string) (pins.Output, error)
}

// Load a layout description. The YAML is decoded strictly: unknown fields
// are an error, catching typos in component declarations.
func Load(r io.Reader) (*Layout, error) {
	lay := &Layout{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(lay); err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}

	return lay, nil
}

// builder accumulates resolution state during a single Build() call.
type builder struct {
	src   PinSource
	pad   *gamepad.Gamepad
	muxes map[string]*panel.IC74LS151
}

// Build wires the layout into a runnable Panel flushing to the specified
// gamepad. All configuration errors surface here, before the first tick.
func (lay *Layout) Build(pad *gamepad.Gamepad, src PinSource) (*panel.Panel, error) {
	b := &builder{
		src:   src,
		pad:   pad,
		muxes: make(map[string]*panel.IC74LS151),
	}

	pan := panel.NewPanel(pad)

	// pin sources with per-tick work of their own (polling a joystick, say)
	// update before everything that reads their pins
	if c, ok := src.(panel.Component); ok {
		pan.Add(c)
	}

	for _, m := range lay.Muxes {
		if _, ok := b.muxes[m.Name]; ok {
			return nil, curated.Errorf(DuplicateMuxError, m.Name)
		}

		mux, err := b.buildMux(m)
		if err != nil {
			return nil, err
		}

		b.muxes[m.Name] = mux
		pan.Add(mux)
	}

	for _, c := range lay.Components {
		comp, err := b.buildComponent(c)
		if err != nil {
			return nil, err
		}
		pan.Add(comp)
	}

	logger.Logf("layout", "%d muxes, %d components", len(lay.Muxes), len(lay.Components))

	return pan, nil
}

func (b *builder) buildMux(m Mux) (*panel.IC74LS151, error) {
	addr0, err := b.src.Output(m.Addr0)
	if err != nil {
		return nil, err
	}
	addr1, err := b.src.Output(m.Addr1)
	if err != nil {
		return nil, err
	}
	addr2, err := b.src.Output(m.Addr2)
	if err != nil {
		return nil, err
	}
	in, err := b.src.Digital(m.Input)
	if err != nil {
		return nil, err
	}

	return panel.NewIC74LS151(addr0, addr1, addr2, in), nil
}

// digital resolves a digital pin reference, indirecting through a mux for
// references of the form "mux:addr".
func (b *builder) digital(name string) (pins.Digital, error) {
	muxName, addrField, ok := strings.Cut(name, ":")
	if !ok {
		return b.src.Digital(name)
	}

	mux, ok := b.muxes[muxName]
	if !ok {
		return nil, curated.Errorf(UnknownMuxError, muxName)
	}

	addr, err := strconv.Atoi(addrField)
	if err != nil {
		return nil, curated.Errorf(BadMuxAddressError, name)
	}

	return mux.Input(addr)
}

// button resolves a report button number, wrapping it in a Momentary when
// the component asks for one.
func (b *builder) button(num int, momentary int) (panel.Button, error) {
	button, err := b.pad.Button(num)
	if err != nil {
		return nil, err
	}

	if momentary > 0 {
		return panel.NewMomentary(button, momentary), nil
	}

	return button, nil
}

func (b *builder) axis(name string) (panel.Axis, error) {
	var id gamepad.AxisID

	switch name {
	case "X":
		id = gamepad.X
	case "Y":
		id = gamepad.Y
	case "Z":
		id = gamepad.Z
	case "RX":
		id = gamepad.RX
	case "RY":
		id = gamepad.RY
	case "RZ":
		id = gamepad.RZ
	default:
		return nil, curated.Errorf(UnknownAxisError, name)
	}

	return b.pad.Axis(id)
}

func (b *builder) buildComponent(c Component) (panel.Component, error) {
	switch c.Type {
	case "pushbutton":
		in, err := b.digital(c.Pin)
		if err != nil {
			return nil, err
		}
		button, err := b.button(c.Button, c.Momentary)
		if err != nil {
			return nil, err
		}
		return panel.NewPushButton(in, button), nil

	case "onoff":
		in, err := b.digital(c.Pin)
		if err != nil {
			return nil, err
		}
		up, err := b.button(c.Up, c.Momentary)
		if err != nil {
			return nil, err
		}
		down, err := b.button(c.Down, c.Momentary)
		if err != nil {
			return nil, err
		}
		return panel.NewOnOffSwitch(in, up, down), nil

	case "onoffon":
		inUp, err := b.digital(c.UpPin)
		if err != nil {
			return nil, err
		}
		inDown, err := b.digital(c.DownPin)
		if err != nil {
			return nil, err
		}
		up, err := b.button(c.Up, c.Momentary)
		if err != nil {
			return nil, err
		}
		middle, err := b.button(c.Middle, c.Momentary)
		if err != nil {
			return nil, err
		}
		down, err := b.button(c.Down, c.Momentary)
		if err != nil {
			return nil, err
		}
		return panel.NewOnOffOnSwitch(inUp, inDown, up, middle, down), nil

	case "switchingrotary":
		in, err := b.src.Analog(c.Pin)
		if err != nil {
			return nil, err
		}
		axis, err := b.axis(c.Axis)
		if err != nil {
			return nil, err
		}
		on, err := b.button(c.On, c.Momentary)
		if err != nil {
			return nil, err
		}
		off, err := b.button(c.Off, c.Momentary)
		if err != nil {
			return nil, err
		}
		return panel.NewSwitchingRotary(in, axis, on, off, c.Threshold), nil

	case "pulserotary":
		in, err := b.src.Analog(c.Pin)
		if err != nil {
			return nil, err
		}
		up, err := b.button(c.Up, c.Momentary)
		if err != nil {
			return nil, err
		}
		down, err := b.button(c.Down, c.Momentary)
		if err != nil {
			return nil, err
		}
		return panel.NewPulseRotary(in, up, down, c.Divisions)

	case "encoder":
		in1, err := b.digital(c.Pin1)
		if err != nil {
			return nil, err
		}
		in2, err := b.digital(c.Pin2)
		if err != nil {
			return nil, err
		}
		up, err := b.button(c.Up, c.Momentary)
		if err != nil {
			return nil, err
		}
		down, err := b.button(c.Down, c.Momentary)
		if err != nil {
			return nil, err
		}
		return panel.NewRotaryEncoder(in1, in2, up, down, c.QueueLimit)
	}

	return nil, curated.Errorf(UnknownTypeError, c.Type)
}
