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

package movelog_test

import (
	"strings"
	"testing"

	"github.com/kxomon/kxomon/movelog"
	"github.com/kxomon/kxomon/protocol"
	"github.com/kxomon/kxomon/test"
)

func board(cells map[int]protocol.Cell) protocol.Board {
	var b protocol.Board
	for i, c := range cells {
		b[i] = c
	}
	return b
}

func TestGameStart(t *testing.T) {
	var r movelog.Reconstructor

	e, ok := r.Observe(board(map[int]protocol.Cell{6: protocol.PlayerX}))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e, movelog.Entry{Start: true, Game: 0})

	e, ok = r.Observe(board(map[int]protocol.Cell{6: protocol.PlayerX, 0: protocol.PlayerO}))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "A1")

	// a new game begins
	e, ok = r.Observe(board(map[int]protocol.Cell{15: protocol.PlayerO}))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e, movelog.Entry{Start: true, Game: 1})

	test.ExpectEquality(t, r.Log().Len(), 3)
	test.ExpectEquality(t, r.Log().String(), "Game 0: A1 | Game 1:")
}

func TestLogString(t *testing.T) {
	var r movelog.Reconstructor

	// two moves in the first game and one in the second
	r.Observe(board(map[int]protocol.Cell{0: protocol.PlayerO}))
	r.Observe(board(map[int]protocol.Cell{0: protocol.PlayerO, 5: protocol.PlayerX}))
	r.Observe(board(map[int]protocol.Cell{0: protocol.PlayerO, 5: protocol.PlayerX, 15: protocol.PlayerO}))
	r.Observe(board(map[int]protocol.Cell{3: protocol.PlayerX}))
	r.Observe(board(map[int]protocol.Cell{3: protocol.PlayerX, 12: protocol.PlayerO}))

	test.ExpectEquality(t, r.Log().String(), "Game 0: B2 -> D4 | Game 1: A4")
}

func TestSingleMove(t *testing.T) {
	var r movelog.Reconstructor

	a := board(map[int]protocol.Cell{0: protocol.PlayerO, 1: protocol.PlayerX})
	r.Observe(a)

	// index 5 is the second column of the second row
	b := a
	b[5] = protocol.PlayerO
	e, ok := r.Observe(b)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "B2")
	test.ExpectEquality(t, e.Column, byte('B'))
	test.ExpectEquality(t, e.Row, 2)
}

func TestLowestIndexWins(t *testing.T) {
	var r movelog.Reconstructor

	a := board(map[int]protocol.Cell{0: protocol.PlayerO, 15: protocol.PlayerX})
	r.Observe(a)

	b := a
	b[9] = protocol.PlayerO
	b[2] = protocol.PlayerX
	e, ok := r.Observe(b)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "C1")

	// the change at index 9 has been absorbed into the previous board
	_, ok = r.Observe(b)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r.Log().String(), "A1 -> C1")
}

func TestNoChange(t *testing.T) {
	var r movelog.Reconstructor

	_, ok := r.Observe(protocol.Board{})
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r.Log().Len(), 0)
	test.ExpectEquality(t, r.Log().String(), "")
}

func TestClearedCell(t *testing.T) {
	var r movelog.Reconstructor

	a := board(map[int]protocol.Cell{0: protocol.PlayerO, 3: protocol.PlayerX})
	r.Observe(a)

	// a cell returning to empty is still a difference
	b := board(map[int]protocol.Cell{0: protocol.PlayerO, 3: protocol.PlayerX, 12: protocol.PlayerO})
	b[0] = protocol.Empty
	e, ok := r.Observe(b)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "A1")
}

func TestWriteYAML(t *testing.T) {
	var r movelog.Reconstructor

	// moves before the start of the first game
	r.Observe(board(map[int]protocol.Cell{0: protocol.PlayerO, 1: protocol.PlayerX}))
	r.Observe(board(map[int]protocol.Cell{4: protocol.PlayerO}))
	r.Observe(board(map[int]protocol.Cell{4: protocol.PlayerO, 10: protocol.PlayerX}))

	w := &strings.Builder{}
	test.DemandSuccess(t, r.Log().WriteYAML(w))

	expected := "games:\n" +
		"  - moves:\n" +
		"      - A1\n" +
		"  - game: 0\n" +
		"    moves:\n" +
		"      - C3\n"
	test.ExpectEquality(t, w.String(), expected)
}
