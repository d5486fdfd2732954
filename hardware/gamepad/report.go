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

package gamepad

import (
	"encoding/binary"
	"io"
)

// ReportLength is the length in bytes of a packed report.
const ReportLength = 14

// Scale16 maps a normalized value to the full signed 16-bit range.
func Scale16(val float32) int16 {
	return int16(int32(val*65535) - 32768)
}

// Scale8 maps a normalized value to the full signed 8-bit range.
func Scale8(val float32) int8 {
	return int8(int16(val*255) - 128)
}

// Report packs the state into the fixed binary layout used by the stream
// writer.
//
// Bytes:
//
//	 0-3: button bitfield (LE uint32, button 1 in bit 0)
//	 4-5: X (LE int16)
//	 6-7: Y (LE int16)
//	 8-9: RX (LE int16)
//	10-11: RY (LE int16)
//	   12: Z (int8)
//	   13: RZ (int8)
func (s State) Report() []byte {
	b := make([]byte, ReportLength)
	binary.LittleEndian.PutUint32(b[0:4], s.Buttons)
	binary.LittleEndian.PutUint16(b[4:6], uint16(Scale16(s.Axes[X])))
	binary.LittleEndian.PutUint16(b[6:8], uint16(Scale16(s.Axes[Y])))
	binary.LittleEndian.PutUint16(b[8:10], uint16(Scale16(s.Axes[RX])))
	binary.LittleEndian.PutUint16(b[10:12], uint16(Scale16(s.Axes[RY])))
	b[12] = byte(Scale8(s.Axes[Z]))
	b[13] = byte(Scale8(s.Axes[RZ]))
	return b
}

// StreamWriter is a Writer that writes the packed form of every report to an
// io.Writer.
type StreamWriter struct {
	output io.Writer
}

// NewStreamWriter is the preferred method of initialisation for the
// StreamWriter type.
func NewStreamWriter(output io.Writer) *StreamWriter {
	return &StreamWriter{output: output}
}

// WriteReport implements the Writer interface.
func (wr *StreamWriter) WriteReport(s State) error {
	_, err := wr.output.Write(s.Report())
	return err
}
