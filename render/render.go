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

// Package render draws frames from the kxo device on a text terminal.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/kxomon/kxomon/movelog"
	"github.com/kxomon/kxomon/protocol"
)

// ClearScreen moves the cursor to the top left of the terminal and erases
// everything below it.
const ClearScreen = ansi.CursorHomePosition + ansi.EraseScreenBelow

// Frame clears the screen and draws the frame's timing information followed
// by the board.
func Frame(w io.Writer, f protocol.Frame) error {
	_, err := fmt.Fprintf(w, "%sAI move took %d ms\n%s", ClearScreen, f.Timing[protocol.MoveTime], f.Board)
	return err
}

// MoveLog writes the move log as a single line.
func MoveLog(w io.Writer, l *movelog.Log) error {
	_, err := fmt.Fprintf(w, "Moves: %s\n", l)
	return err
}
