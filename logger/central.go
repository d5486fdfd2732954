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

// Package logger is the central log for the project. Log entries are made
// with the Log() and Logf() functions, tagged with the name of the
// sub-system making the entry.
//
// The log is in-memory only. It is written out on demand with the Write()
// and Tail() functions, or echoed as it happens to an io.Writer specified
// with SetEcho().
//
// Consecutive identical entries are folded into a single entry with a repeat
// count. Polled hardware is noisy and without folding a stuck switch would
// flood the log.
package logger

import (
	"io"
)

// only one central log for the entire application. there's no need for more
// than one.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to the io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho instructs the central logger to write new entries to the io.Writer
// as they arrive. A nil argument turns echoing off.
func SetEcho(output io.Writer) {
	central.echo = output
}
