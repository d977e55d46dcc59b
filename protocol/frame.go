// This file is part of kxomon.
//
// kxomon is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kxomon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with kxomon.  If not, see <https://www.gnu.org/licenses/>.

package protocol

import (
	"encoding/binary"

	"github.com/kxomon/kxomon/curated"
)

// ShortRead is the error pattern returned when the number of bytes given to
// Decode() is not exactly FrameSize.
const ShortRead = "short read: %d bytes (wanted %d)"

// TimingFields is the number of timing values following the board.
const TimingFields = 1

// Indexes into the Timing field of the Frame type.
const (
	// time taken by the AI to make its move, in milliseconds.
	MoveTime = 0
)

// FrameSize is the exact length of a frame in bytes.
const FrameSize = BoardSize + TimingFields*4

// Frame is a single record read from the device.
type Frame struct {
	Board  Board
	Timing [TimingFields]uint32
}

// Decode a frame. The data must be exactly FrameSize bytes long.
func Decode(data []byte) (Frame, error) {
	if len(data) != FrameSize {
		return Frame{}, curated.Errorf(ShortRead, len(data), FrameSize)
	}

	var f Frame
	f.Board = UnpackBoard(data[:BoardSize])
	for i := range f.Timing {
		o := BoardSize + i*4
		f.Timing[i] = binary.LittleEndian.Uint32(data[o : o+4])
	}

	return f, nil
}

// Encode is the inverse of Decode().
func Encode(f Frame) []byte {
	data := make([]byte, FrameSize)
	p := f.Board.Pack()
	copy(data, p[:])
	for i, t := range f.Timing {
		o := BoardSize + i*4
		binary.LittleEndian.PutUint32(data[o:o+4], t)
	}
	return data
}
