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

// Button is the output channel for discrete events. Press() and Release()
// take effect immediately, meaning the new state is visible to the report on
// the next flush. Update() is called once per tick whether or not the state
// changed; only decorated buttons do anything with it.
type Button interface {
	Press()
	Release()
	Update()
}

// SetButton presses or releases the button according to state.
func SetButton(button Button, state bool) {
	if state {
		button.Press()
	} else {
		button.Release()
	}
}

// Axis is the output channel for continuous values. Report() accepts a value
// normalized to the range 0.0 to 1.0; implementations clamp values outside
// that range rather than rejecting them, since transient spikes are expected
// from analog hardware.
type Axis interface {
	Report(val float32)
}

// DefaultMomentaryDuration is the auto-release countdown used when no other
// duration is specified. Three ticks is around 450ms at the usual 150ms tick
// period.
const DefaultMomentaryDuration = 3

// Momentary decorates a Button so that a press is automatically released
// after a fixed number of ticks. An explicit Release() always wins: it
// releases the inner button immediately and discards any pending
// auto-release.
//
// A duration of less than one means a press is never auto-released and the
// decorator behaves like the undecorated button.
type Momentary struct {
	inner     Button
	duration  int
	countdown int
}

// NewMomentary is the preferred method of initialisation for the Momentary
// type.
func NewMomentary(inner Button, duration int) *Momentary {
	return &Momentary{
		inner:    inner,
		duration: duration,
	}
}

// Press implements the Button interface. The auto-release countdown is
// (re)armed.
func (mom *Momentary) Press() {
	mom.inner.Press()
	mom.countdown = mom.duration
}

// Release implements the Button interface. Any pending auto-release is
// discarded.
func (mom *Momentary) Release() {
	mom.inner.Release()
	mom.countdown = 0
}

// Update implements the Button interface. Decrements a running countdown
// and, on reaching zero, issues exactly one release of the inner button.
func (mom *Momentary) Update() {
	mom.inner.Update()

	if mom.countdown > 0 {
		mom.countdown--
		if mom.countdown == 0 {
			mom.inner.Release()
		}
	}
}
