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

import "strings"

// Cell is the content of a single square of the board.
type Cell uint8

// List of valid Cell values. The numeric values are the two bit codes used in
// the packed board.
const (
	Empty Cell = iota
	PlayerO
	PlayerX
)

// the two bit code that is reserved by the device
const reservedCell = 3

func (c Cell) String() string {
	switch c {
	case PlayerO:
		return "O"
	case PlayerX:
		return "X"
	}
	return " "
}

// Geometry of the board.
const (
	RowWidth  = 4
	NumCells  = RowWidth * RowWidth
	BoardSize = NumCells * 2 / 8
)

// Board is a snapshot of the game. Board is a value type and is never
// modified once decoded.
type Board [NumCells]Cell

// UnpackBoard extracts the cells from a packed board. The slice must be at
// least BoardSize bytes long.
func UnpackBoard(packed []byte) Board {
	var b Board
	for i := range b {
		v := Cell(packed[i/4]>>((i%4)*2)) & 0x03
		if v == reservedCell {
			v = Empty
		}
		b[i] = v
	}
	return b
}

// Pack the board into the two bits per cell format used by the device.
func (b Board) Pack() [BoardSize]byte {
	var p [BoardSize]byte
	for i, c := range b {
		p[i/4] |= byte(c&0x03) << ((i % 4) * 2)
	}
	return p
}

// Occupied returns the number of cells that are not Empty.
func (b Board) Occupied() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}

// String returns the board as a grid with cells separated by the pipe
// character. Each row is terminated with a newline.
func (b Board) String() string {
	s := strings.Builder{}
	for i, c := range b {
		s.WriteString(c.String())
		if i%RowWidth != RowWidth-1 {
			s.WriteString("|")
		} else {
			s.WriteString("\n")
		}
	}
	return s.String()
}
