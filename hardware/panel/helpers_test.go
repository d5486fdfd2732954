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

package panel_test

// recordButton implements panel.Button and records every call made to it.
type recordButton struct {
	pressed  bool
	presses  int
	releases int
	updates  int
}

func (b *recordButton) Press() {
	b.pressed = true
	b.presses++
}

func (b *recordButton) Release() {
	b.pressed = false
	b.releases++
}

func (b *recordButton) Update() {
	b.updates++
}

// recordAxis implements panel.Axis and records the most recent report.
type recordAxis struct {
	val     float32
	reports int
}

func (a *recordAxis) Report(val float32) {
	a.val = val
	a.reports++
}
