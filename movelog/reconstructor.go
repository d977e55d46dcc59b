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

package movelog

import (
	"fmt"

	"github.com/kxomon/kxomon/protocol"
)

// Entry is a single item in the move log. It is either a move or the start of
// a new game.
type Entry struct {
	// Start is true if the entry marks the beginning of a game. Only the Game
	// field is meaningful in that case.
	Start bool
	Game  int

	// column label 'A' to 'D' and row number counting from 1
	Column byte
	Row    int
}

// entryForCell returns the move entry for the cell at index i.
func entryForCell(i int) Entry {
	return Entry{
		Column: byte('A' + i%protocol.RowWidth),
		Row:    i/protocol.RowWidth + 1,
	}
}

func (e Entry) String() string {
	if e.Start {
		return fmt.Sprintf("Game %d:", e.Game)
	}
	return fmt.Sprintf("%c%d", e.Column, e.Row)
}

// Reconstructor compares boards as they arrive and maintains the log of
// moves.
type Reconstructor struct {
	// the board from the previous call to Observe(). all cells are Empty to
	// begin with
	previous protocol.Board

	// counter for game-start entries
	games int

	log Log
}

// Observe the next board. Returns the new log entry and true, or false if
// nothing has changed.
func (r *Reconstructor) Observe(board protocol.Board) (Entry, bool) {
	defer func() {
		r.previous = board
	}()

	if board.Occupied() == 1 {
		e := Entry{Start: true, Game: r.games}
		r.games++
		r.log.append(e)
		return e, true
	}

	for i := range board {
		if board[i] != r.previous[i] {
			e := entryForCell(i)
			r.log.append(e)
			return e, true
		}
	}

	return Entry{}, false
}

// Log returns the move log. The log should not be modified.
func (r *Reconstructor) Log() *Log {
	return &r.log
}
