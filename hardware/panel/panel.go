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

// Package panel is the translation layer between raw physical controls and
// the clean button/axis state expected by a game controller report. The
// physical side of the boundary is the pins package; the report side is any
// implementation of the Button and Axis interfaces, usually supplied by the
// gamepad package.
//
// Each physical control is modelled by a Component. The Panel type drives
// every Component once per tick, in the order they were added, and then
// flushes the accumulated report state. Everything is single-threaded and
// cooperative: no component blocks, suspends, or reads pins outside of its
// own Update() function.
//
// The tick is the only unit of time in this package. How long a tick lasts
// is decided by whoever calls Step(), or by the period given to Run().
package panel

import (
	"time"
)

// Component is a physical control (or support chip) on the panel. Setup() is
// called once before the first tick. Update() is called once per tick and is
// the only place a Component may read its pins or emit channel events.
type Component interface {
	Setup()
	Update()
}

// Flusher is the output side of the panel. Flush() is called exactly once
// per tick, after every Component has updated.
type Flusher interface {
	Flush() error
}

// Panel owns the ordered list of Components and drives them.
type Panel struct {
	components []Component
	out        Flusher
}

// NewPanel is the preferred method of initialisation for the Panel type. The
// Flusher may be nil, in which case nothing is flushed at the end of a tick.
func NewPanel(out Flusher) *Panel {
	return &Panel{
		components: make([]Component, 0),
		out:        out,
	}
}

// Add components to the panel. Components are updated in the order they were
// added. Order has no effect on runtime semantics, only on setup order.
func (pan *Panel) Add(components ...Component) {
	pan.components = append(pan.components, components...)
}

// Setup every component, in order. Call once before the first Step().
func (pan *Panel) Setup() {
	for _, c := range pan.components {
		c.Setup()
	}
}

// Step the panel forward one tick: update every component in order, then
// flush the report.
func (pan *Panel) Step() error {
	for _, c := range pan.components {
		c.Update()
	}

	if pan.out == nil {
		return nil
	}

	return pan.out.Flush()
}

// Run the panel with the specified tick period until the done channel is
// closed or an error occurs. Setup() is called before the first tick.
func (pan *Panel) Run(period time.Duration, done <-chan struct{}) error {
	pan.Setup()

	tick := time.NewTicker(period)
	defer tick.Stop()

	for {
		select {
		case <-done:
			return nil
		case <-tick.C:
			if err := pan.Step(); err != nil {
				return err
			}
		}
	}
}
