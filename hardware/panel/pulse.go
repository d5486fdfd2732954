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

// pulseQueue paces pending rotary pulses onto a pair of buttons. A pulse is
// expressed as one tick of press followed by one tick of release before the
// next pending pulse begins, capping throughput at one pulse per two ticks
// however fast the knob is turned. The reading side of the rotary keeps up
// with the knob; it is only the expression of pulses that is paced.
type pulseQueue struct {
	// maximum number of pending pulses per direction. zero means unbounded
	limit int

	up   int
	down int

	// the button pressed in the previous step and not yet released
	active Button
}

func (q *pulseQueue) enqueueUp() {
	if q.limit == 0 || q.up < q.limit {
		q.up++
	}
}

func (q *pulseQueue) enqueueDown() {
	if q.limit == 0 || q.down < q.limit {
		q.down++
	}
}

// step performs half a pulse: the release of the pulse in flight if there is
// one, otherwise the press of the next pending pulse. Up pulses are
// expressed before down pulses.
func (q *pulseQueue) step(buttonUp, buttonDown Button) {
	if q.active != nil {
		q.active.Release()
		q.active = nil
		return
	}

	if q.up > 0 {
		q.up--
		buttonUp.Press()
		q.active = buttonUp
	} else if q.down > 0 {
		q.down--
		buttonDown.Press()
		q.active = buttonDown
	}
}
