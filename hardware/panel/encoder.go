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

// Sentinel error returned by NewRotaryEncoder().
const QueueLimitError = "rotary encoder: queue limit must be at least one: %d"

// edge events on the two encoder phases, encoded as small signed tags.
// edgeNone marks an empty event slot.
type edge int

const (
	edgeNone edge = 0
	rising1  edge = 1
	falling1 edge = -1
	rising2  edge = 2
	falling2 edge = -2
)

// RotaryEncoder decodes the quadrature signal of a standard two-phase
// rotary encoder into two buttons, one pulsing per detent of clockwise
// rotation and one for counterclockwise.
//
// The decoder watches for rising and falling transitions on each phase and
// remembers the two most recent. A falling edge on phase two followed by a
// falling edge on phase one is one clockwise step; the mirrored pair is one
// counterclockwise step. Any other combination of the last two transitions
// is contact noise and is ignored. A matched pair is consumed, so the same
// transitions can never count twice.
//
// Each decoded step becomes a pending pulse, up to queueLimit pulses per
// direction; steps decoded beyond the limit are dropped silently. Pulses
// are expressed at one per two ticks (see pulseQueue).
type RotaryEncoder struct {
	in1 pins.Digital
	in2 pins.Digital

	buttonUp   Button
	buttonDown Button

	last1 bool
	last2 bool

	lastEvent        edge
	penultimateEvent edge

	pulses pulseQueue
}

// NewRotaryEncoder is the preferred method of initialisation for the
// RotaryEncoder type. The queueLimit argument must be at least one.
func NewRotaryEncoder(in1, in2 pins.Digital, buttonUp, buttonDown Button, queueLimit int) (*RotaryEncoder, error) {
	if queueLimit < 1 {
		return nil, curated.Errorf(QueueLimitError, queueLimit)
	}

	return &RotaryEncoder{
		in1:        in1,
		in2:        in2,
		buttonUp:   buttonUp,
		buttonDown: buttonDown,
		pulses:     pulseQueue{limit: queueLimit},
	}, nil
}

// Setup implements the Component interface. The phase lines are sampled so
// that the first tick sees transitions only if the knob has actually moved.
func (enc *RotaryEncoder) Setup() {
	enc.in1.Setup()
	enc.in2.Setup()

	enc.last1 = enc.in1.Read()
	enc.last2 = enc.in2.Read()
}

func (enc *RotaryEncoder) record(ev edge) {
	enc.penultimateEvent = enc.lastEvent
	enc.lastEvent = ev
}

// Update implements the Component interface.
func (enc *RotaryEncoder) Update() {
	enc.buttonUp.Update()
	enc.buttonDown.Update()

	val1 := enc.in1.Read()
	val2 := enc.in2.Read()

	if val1 != enc.last1 {
		if val1 {
			enc.record(rising1)
		} else {
			enc.record(falling1)
		}
		enc.last1 = val1
	}

	if val2 != enc.last2 {
		if val2 {
			enc.record(rising2)
		} else {
			enc.record(falling2)
		}
		enc.last2 = val2
	}

	if enc.penultimateEvent == falling2 && enc.lastEvent == falling1 {
		enc.pulses.enqueueUp()
		enc.lastEvent = edgeNone
		enc.penultimateEvent = edgeNone
	} else if enc.penultimateEvent == falling1 && enc.lastEvent == falling2 {
		enc.pulses.enqueueDown()
		enc.lastEvent = edgeNone
		enc.penultimateEvent = edgeNone
	}

	enc.pulses.step(enc.buttonUp, enc.buttonDown)
}
