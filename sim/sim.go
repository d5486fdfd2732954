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

// Package sim runs a panel layout against memory-backed pins, with the
// keyboard standing in for the physical controls. Each digital pin named by
// the layout is assigned a key that toggles it; analog pins are nudged up
// and down with , and . keys after selecting one with the ; key. The
// accumulated report state is echoed once per tick.
//
// The simulator exists to try out a layout file before the panel hardware is
// wired, and to poke at component behavior interactively.
package sim

import (
	"os"
	"sort"
	"time"

	"github.com/candera/falconpanel/hardware/gamepad"
	"github.com/candera/falconpanel/hardware/panel"
	"github.com/candera/falconpanel/hardware/pins"
	"github.com/candera/falconpanel/logger"
	"github.com/candera/falconpanel/sim/easyterm"
)

// the keys handed out to digital pins, in assignment order
const digitalKeys = "1234567890abcdefghijklmnoprstuvwxyz"

// AnalogStep is how far one keypress nudges the selected analog pin.
const AnalogStep = 0.05

// Simulator couples a built panel to a terminal.
type Simulator struct {
	term easyterm.Terminal

	pan  *panel.Panel
	pad  *gamepad.Gamepad
	bank *pins.MemoryBank

	// key to digital pin name
	digitals map[byte]string

	// analog pin names in selection order, and the current selection
	analogs  []string
	selected int
}

// NewSimulator is the preferred method of initialisation for the Simulator
// type. The panel must have been built against the specified bank.
func NewSimulator(pan *panel.Panel, pad *gamepad.Gamepad, bank *pins.MemoryBank) (*Simulator, error) {
	sim := &Simulator{
		pan:      pan,
		pad:      pad,
		bank:     bank,
		digitals: make(map[byte]string),
	}

	if err := sim.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}

	names := bank.DigitalNames()
	sort.Strings(names)
	for i, n := range names {
		if i >= len(digitalKeys) {
			logger.Logf("sim", "no key left for digital pin %s", n)
			break
		}
		sim.digitals[digitalKeys[i]] = n
	}

	sim.analogs = bank.AnalogNames()
	sort.Strings(sim.analogs)

	return sim, nil
}

// legend prints the key assignments.
func (sim *Simulator) legend() {
	sim.term.Print("q to quit\r\n")

	keys := make([]string, 0, len(sim.digitals))
	for k := range sim.digitals {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		sim.term.Print("%s toggles %s\r\n", k, sim.digitals[k[0]])
	}

	if len(sim.analogs) > 0 {
		sim.term.Print("; selects next analog pin, , and . nudge it\r\n")
	}
}

func (sim *Simulator) key(k byte) {
	if name, ok := sim.digitals[k]; ok {
		p := sim.bank.FindDigital(name)
		p.Set(!p.Read())
		return
	}

	if len(sim.analogs) == 0 {
		return
	}

	p := sim.bank.FindAnalog(sim.analogs[sim.selected])
	switch k {
	case ';':
		sim.selected = (sim.selected + 1) % len(sim.analogs)
	case ',':
		v := p.Read() - AnalogStep
		if v < 0.0 {
			v = 0.0
		}
		p.Set(v)
	case '.':
		v := p.Read() + AnalogStep
		if v > 1.0 {
			v = 1.0
		}
		p.Set(v)
	}
}

// Run the simulator with the specified tick period, until the q key is
// pressed or the panel errors.
func (sim *Simulator) Run(period time.Duration) error {
	sim.term.CBreakMode()
	defer sim.term.CleanUp()

	sim.legend()

	keyChan := make(chan byte)
	go func() {
		for {
			k, err := sim.term.ReadKey()
			if err != nil {
				close(keyChan)
				return
			}
			keyChan <- k
		}
	}()

	sim.pan.Setup()

	tick := time.NewTicker(period)
	defer tick.Stop()

	for {
		select {
		case k, ok := <-keyChan:
			if !ok || k == 'q' {
				sim.term.Print("\r\n")
				return nil
			}
			sim.key(k)
		case <-tick.C:
			if err := sim.pan.Step(); err != nil {
				return err
			}
			sim.term.Print("\r%s", sim.pad)
		}
	}
}
