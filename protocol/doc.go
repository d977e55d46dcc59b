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

// Package protocol decodes the fixed size binary frames read from the kxo
// device. A frame is a packed board followed by timing fields:
//
//	offset  size  content
//	0       4     board, 2 bits per cell, cell 0 in the low bits of byte 0
//	4       4     AI move time in milliseconds, unsigned little-endian
//
// Decoding is a pure function. A frame of the wrong length is rejected with a
// ShortRead error. A cell holding the reserved value 3 decodes as Empty rather
// than failing the frame.
package protocol
