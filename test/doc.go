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

// Package test contains helper functions that remove common boilerplate from
// test code.
//
// The Expect functions test a condition and mark the test as failed if the
// condition does not hold, continuing with the remainder of the test. The
// Demand functions are the same except that failure ends the test
// immediately.
//
// ExpectSuccess and ExpectFailure interpret their argument according to its
// type: a bool succeeds when true and an error succeeds when nil. The
// untyped nil is counted as a success, which is the only sensible
// interpretation when the value being passed is an error return.
package test
