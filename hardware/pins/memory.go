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

// MemoryDigital is an in-memory implementation of the Digital interface.
// Used by the simulator and by tests.
//
// The zero value reads true, matching an open switch on a pulled-up line.
type MemoryDigital struct {
	// Pullup is the value the pin reverts to on Setup()
	Pullup bool

	value bool
}

// NewMemoryDigital returns a MemoryDigital that reads true until told
// otherwise.
func NewMemoryDigital() *MemoryDigital {
	return &MemoryDigital{Pullup: true, value: true}
}

// Setup implements the Digital interface.
func (p *MemoryDigital) Setup() {
	p.value = p.Pullup
}

// Read implements the Digital interface.
func (p *MemoryDigital) Read() bool {
	return p.value
}

// Set the value returned by subsequent calls to Read().
func (p *MemoryDigital) Set(val bool) {
	p.value = val
}

// MemoryAnalog is an in-memory implementation of the Analog interface.
type MemoryAnalog struct {
	value float32
}

// Setup implements the Analog interface.
func (p *MemoryAnalog) Setup() {
}

// Read implements the Analog interface.
func (p *MemoryAnalog) Read() float32 {
	return p.value
}

// Set the value returned by subsequent calls to Read().
func (p *MemoryAnalog) Set(val float32) {
	p.value = val
}

// MemoryOutput is an in-memory implementation of the Output interface. The
// most recent write can be inspected with Value().
type MemoryOutput struct {
	value bool
}

// Setup implements the Output interface.
func (p *MemoryOutput) Setup() {
}

// Write implements the Output interface.
func (p *MemoryOutput) Write(val bool) {
	p.value = val
}

// Value returns the most recently written value.
func (p *MemoryOutput) Value() bool {
	return p.value
}
