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

// Package curated is the error mechanism used throughout the project. A
// curated error is created with Errorf(), which looks and feels like
// fmt.Errorf() with one difference: the format pattern is retained and can
// later be matched against with the Is() and Has() functions.
//
// Patterns are declared as string constants near the code that creates them.
// For example:
//
//	const AddressError = "mux: address not in range: %d"
//
//	return curated.Errorf(AddressError, addr)
//
// Code that wants to react to that specific error tests for it with:
//
//	if curated.Is(err, mux.AddressError) {
//		...
//	}
//
// Is() matches the outermost error only. Has() walks the chain of wrapped
// curated errors looking for the pattern at any depth. IsAny() simply reports
// whether the error originates from this package at all.
//
// A useful feature of curated errors is message de-duplication. When curated
// errors wrap other curated errors the same message part can appear twice at
// the boundary. The Error() function removes such duplicates, keeping log
// output readable without any effort at the error site.
package curated
