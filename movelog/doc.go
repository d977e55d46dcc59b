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

// Package movelog reconstructs the history of a game from successive board
// snapshots.
//
// The device only ever reports whole boards so moves have to be found by
// comparing each board with the one before it. Two rules keep this simple:
//
// A board with exactly one occupied cell is the first move of a new game. A
// game-start entry is logged instead of a move.
//
// Otherwise the first cell, in index order, that differs from the previous
// board is the move. If more than one cell has changed only the lowest index
// is logged.
package movelog
