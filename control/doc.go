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

// Package control sends commands to the kxo engine through its control
// attribute file. The record is at least RecordSize bytes:
//
//	offset  content
//	0       display flag, '1' the engine publishes frames, '0' it does not
//	4       terminate flag, '1' asks the engine to stop
//
// All other bytes belong to the engine and are written back unchanged. Every
// command opens the file, reads the whole record, changes one byte, writes
// the whole record back with a single write and closes the file.
//
// The Flags type is the process-local view of the same state. Only the Client
// writes to it.
package control
