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

package test

import (
	"testing"
)

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T) bool {
	t.Helper()
	if v == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", v, v, expectedValue)
		return false
	}
	return true
}

// Approximate constraint used by the ExpectApproximate() function.
type Approximate interface {
	~int | ~float32 | ~float64
}

// ExpectApproximate tests that a value is within tolerance percent of the
// expected value. For example, a tolerance of 0.5 means that the value must
// be within 50% and 150% of the expected value.
func ExpectApproximate[T Approximate](t *testing.T, v T, expectedValue T, tolerance float64) bool {
	t.Helper()

	top := float64(expectedValue) * (1 + tolerance)
	bot := float64(expectedValue) * (1 - tolerance)
	if bot > top {
		top, bot = bot, top
	}

	if float64(v) < bot || float64(v) > top {
		t.Errorf("approximation test of type %T failed: '%v' is outside the range '%v' to '%v'", v, v, bot, top)
		return false
	}

	return true
}

// expect is the underlying success/failure test. success values are true for
// bool and nil for error. a nil interface value is counted as a success,
// matching the common interpretation of a nil error.
func expect(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}

	return false
}

// ExpectSuccess tests the argument for a success value appropriate to its
// type: true for bool, nil for error. Unsupported types are a test fatality.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("expected success (%T)", v)
		return false
	}
	return true
}

// ExpectFailure tests the argument for a failure value appropriate to its
// type: false for bool, non-nil for error.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("expected failure (%T)", v)
		return false
	}
	return true
}
