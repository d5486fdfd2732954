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

package pins

// MemoryBank hands out named in-memory pins, creating each pin on first
// use. The simulator and tests use a bank as their pin source: components
// resolve pins by name while the driving side pokes values in through
// FindDigital() and FindAnalog().
type MemoryBank struct {
	digitals map[string]*MemoryDigital
	analogs  map[string]*MemoryAnalog
	outputs  map[string]*MemoryOutput
}

// NewMemoryBank is the preferred method of initialisation for the MemoryBank
// type.
func NewMemoryBank() *MemoryBank {
	return &MemoryBank{
		digitals: make(map[string]*MemoryDigital),
		analogs:  make(map[string]*MemoryAnalog),
		outputs:  make(map[string]*MemoryOutput),
	}
}

// Digital returns the named digital pin. The error return is always nil and
// exists to satisfy the pin source interface of the layout package.
func (bank *MemoryBank) Digital(name string) (Digital, error) {
	p, ok := bank.digitals[name]
	if !ok {
		p = NewMemoryDigital()
		bank.digitals[name] = p
	}
	return p, nil
}

// Analog returns the named analog pin. The error return is always nil.
func (bank *MemoryBank) Analog(name string) (Analog, error) {
	p, ok := bank.analogs[name]
	if !ok {
		p = &MemoryAnalog{}
		bank.analogs[name] = p
	}
	return p, nil
}

// Output returns the named output pin. The error return is always nil.
func (bank *MemoryBank) Output(name string) (Output, error) {
	p, ok := bank.outputs[name]
	if !ok {
		p = &MemoryOutput{}
		bank.outputs[name] = p
	}
	return p, nil
}

// FindDigital returns the named digital pin if it has been handed out, or
// nil.
func (bank *MemoryBank) FindDigital(name string) *MemoryDigital {
	return bank.digitals[name]
}

// FindAnalog returns the named analog pin if it has been handed out, or nil.
func (bank *MemoryBank) FindAnalog(name string) *MemoryAnalog {
	return bank.analogs[name]
}

// DigitalNames returns the names of every digital pin handed out so far.
func (bank *MemoryBank) DigitalNames() []string {
	names := make([]string, 0, len(bank.digitals))
	for n := range bank.digitals {
		names = append(names, n)
	}
	return names
}

// AnalogNames returns the names of every analog pin handed out so far.
func (bank *MemoryBank) AnalogNames() []string {
	names := make([]string, 0, len(bank.analogs))
	for n := range bank.analogs {
		names = append(names, n)
	}
	return names
}
